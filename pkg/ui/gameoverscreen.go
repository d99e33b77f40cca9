package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen covers the frozen road once every star is gone.
type GameOverScreen struct {
	restart   Button
	onRestart func()
}

func NewGameOverScreen(width, height int, onRestart func()) *GameOverScreen {
	return &GameOverScreen{
		restart:   Button{X: float64(width)/2 - 100, Y: float64(height)/2 + 80, W: 200, H: 60, Label: "RESTART"},
		onRestart: onRestart,
	}
}

// Update restarts on R, Enter or a click on the button.
func (gs *GameOverScreen) Update() error {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && gs.restart.Hovered()
	if clicked ||
		inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if gs.onRestart != nil {
			gs.onRestart()
		}
	}
	return nil
}

func (gs *GameOverScreen) Draw(screen *ebiten.Image) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	FillRect(screen, 0, 0, width, height, color.RGBA{0, 0, 0, 204})

	DrawTextCentered(screen, "GAME OVER", width/2, height/2-100, 80, red)
	DrawTextCentered(screen, "Mission failed! No stars left.", width/2, height/2, 30, white)
	gs.restart.Draw(screen, color.RGBA{0, 228, 48, 255}, color.RGBA{0, 117, 44, 255})
}
