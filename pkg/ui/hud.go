package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/dispatcher/pkg/sim"
)

var (
	orange = color.RGBA{255, 161, 0, 255}
	yellow = color.RGBA{253, 249, 0, 255}
)

// MissionBanner is the headline and colour for a mission kind, or false when
// there is nothing to show.
func MissionBanner(kind string) (string, color.RGBA, bool) {
	switch kind {
	case sim.CallAmbulance.String():
		return "MISSION: CALL AMBULANCE (E)!", red, true
	case sim.CallTow.String():
		return "MISSION: CALL TOW TRUCK (D)!", orange, true
	case sim.CallBus.String():
		return "MISSION: SEND SCHOOL BUS (S)!", yellow, true
	}
	return "", color.RGBA{}, false
}

// DrawHUD overlays lives, the mission banner and the ambulance alert.
func DrawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if snap.Alert {
		alert := color.RGBA{230, 41, 55, 178}
		FillRect(screen, 0, 0, 20, height, alert)
		FillRect(screen, width-20, 0, 20, height, alert)
	}

	DrawText(screen, "LIVES:", 30, 80, 30, gold)
	for i := 0; i < snap.Lives; i++ {
		DrawStar(screen, 160+float64(i)*45, 95, 15, 7, gold)
	}

	if msg, c, ok := MissionBanner(snap.Mission.Kind); ok {
		FillRect(screen, width/2-250, 10, 500, 60, color.RGBA{0, 0, 0, 178})
		DrawTextCentered(screen, msg, width/2, 35, 22, c)
		FillRect(screen, width/2-240, 55, 480*snap.Mission.RemainingRatio, 10, c)
	}

	if snap.Accident.State == sim.AccidentActive.String() {
		DrawTextCentered(screen, "ACCIDENT ACTIVE!", width/2, 90, 20, red)
	}

	DrawText(screen, "Use MOUSE WHEEL to Zoom", 30, 20, 18, white)
	DrawText(screen, "Use ARROW KEYS to Pan", 30, 45, 18, white)
}
