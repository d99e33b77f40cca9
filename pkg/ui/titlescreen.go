package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Rule is one line of the intro screen's rules box.
type Rule struct {
	Text  string
	Color color.RGBA
}

var (
	gold  = color.RGBA{255, 203, 0, 255}
	red   = color.RGBA{230, 41, 55, 255}
	white = color.RGBA{255, 255, 255, 255}

	// Rules explain the missions and their keys.
	Rules = []Rule{
		{"- Complete MISSIONS to keep your STARS.", gold},
		{"- Press 'E' when an accident occurs (red mission).", white},
		{"- Press 'D' once the ambulance leaves (orange mission).", white},
		{"- Press 'S' for the school run (yellow mission).", white},
		{"- Press 'A' to stage an accident yourself.", white},
		{"- If the timer runs out, you lose a STAR.", red},
	}
)

// TitleScreen is drawn over the idle road before the first shift starts.
type TitleScreen struct {
	startTime      time.Time
	start          Button
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(width, height int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		start:          Button{X: float64(width)/2 - 110, Y: float64(height) - 110, W: 220, H: 60, Label: "START GAME"},
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && ts.start.Hovered()
	if clicked ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	FillRect(screen, 0, 0, float64(width), float64(height), color.RGBA{0, 0, 0, 217})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2

	// pulsing title
	size := 40 * (1 + 0.05*sinWave(elapsed*2.0))
	brightness := math.Min(1.0, 0.85+0.2*sinWave(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(203 * brightness),
		0,
		255,
	}
	DrawTextCentered(screen, "TRAFFIC & EMERGENCY DISPATCH", centerX, 110, size, titleColor)

	boxW, boxH := 760.0, 330.0
	boxX, boxY := centerX-boxW/2, 190.0
	FillRect(screen, boxX, boxY, boxW, boxH, color.RGBA{0, 82, 172, 128})
	StrokeRect(screen, boxX, boxY, boxW, boxH, 1, color.RGBA{200, 200, 200, 255})

	DrawText(screen, "CONTROLS & RULES:", boxX+20, boxY+20, 28, white)
	for i, r := range Rules {
		DrawText(screen, r.Text, boxX+40, boxY+70+float64(i)*38, 20, r.Color)
	}
	DrawText(screen, "Mouse wheel zooms, arrow keys or right-drag pan.", boxX+40, boxY+boxH-36, 16, color.RGBA{180, 180, 200, 255})

	ts.start.Draw(screen, color.RGBA{0, 117, 44, 255}, color.RGBA{0, 228, 48, 255})

	drawDecorativeElements(screen, width, height)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

// drawDecorativeElements frames the screen with two thin rules.
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	FillRect(screen, 0, float64(height)/12, float64(width), 2, lineColor)
	FillRect(screen, 0, float64(height)*11/12, float64(width), 2, lineColor)
}
