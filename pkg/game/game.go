// Package game wires the simulation to ebiten: keyboard dispatch, the camera,
// and rendering of each frame's snapshot.
package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/dispatcher/pkg/config"
	"github.com/golangdaddy/dispatcher/pkg/sim"
	"github.com/golangdaddy/dispatcher/pkg/ui"
)

const (
	ScreenWidth  = 1600
	ScreenHeight = 700
)

// Command is a dispatcher action bound to a key.
type Command struct {
	Key  ebiten.Key
	Name string
	Run  func(*sim.Simulation)
}

// Commands lists the dispatch keys.
var Commands = []Command{
	{ebiten.KeyE, "dispatch ambulance", (*sim.Simulation).DispatchAmbulance},
	{ebiten.KeyD, "dispatch tow truck", (*sim.Simulation).DispatchTow},
	{ebiten.KeyA, "trigger accident", (*sim.Simulation).TriggerAccidentNow},
	{ebiten.KeyS, "dispatch school bus", (*sim.Simulation).DispatchSchoolBus},
}

// GameState represents the current state of the game
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	sim     *sim.Simulation
	logger  *log.Logger
	state   GameState
	title   *ui.TitleScreen
	over    *ui.GameOverScreen
	camera  Camera
	scenery *scenery
	dt      float64
	snap    sim.Snapshot
	start   time.Time

	// lastCursorX tracks right-drag panning.
	lastCursorX int
}

// NewGame builds the simulation from cfg and opens on the title screen.
func NewGame(cfg *config.Tuning, logger *log.Logger, opts ...sim.Option) *Game {
	g := &Game{
		sim:     sim.New(cfg, append([]sim.Option{sim.WithLogger(logger)}, opts...)...),
		logger:  logger,
		state:   StateTitle,
		camera:  NewCamera(ScreenWidth, ScreenHeight),
		scenery: newScenery(cfg.GetSeed()),
		dt:      1 / float64(cfg.GetTicksPerSecond()),
		start:   time.Now(),
	}
	g.title = ui.NewTitleScreen(ScreenWidth, ScreenHeight, func() {
		g.state = StatePlaying
		g.logger.Info("shift started")
	})
	g.over = ui.NewGameOverScreen(ScreenWidth, ScreenHeight, g.restart)
	g.snap = g.sim.Snapshot()
	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	g.updateCamera()

	switch g.state {
	case StateTitle:
		return g.title.Update()
	case StatePlaying:
		if g.sim.GameOver() {
			if err := g.over.Update(); err != nil {
				return err
			}
		} else {
			for _, c := range Commands {
				if inpututil.IsKeyJustPressed(c.Key) {
					g.logger.Debug("key pressed", "command", c.Name)
					c.Run(g.sim)
				}
			}
			g.sim.Advance(g.dt)
		}
	}
	g.snap = g.sim.Snapshot()
	return nil
}

func (g *Game) restart() {
	g.sim.Reset()
	g.camera.Reset()
	g.logger.Info("shift restarted")
}

func (g *Game) updateCamera() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomBy(wy)
	}

	cx, _ := ebiten.CursorPosition()
	dragDX := 0
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		dragDX = cx - g.lastCursorX
	}
	g.lastCursorX = cx

	// dragging moves the world with the mouse, so the view pans the other way
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || dragDX < 0 {
		g.camera.Pan(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || dragDX > 0 {
		g.camera.Pan(-1)
	}
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen, g.snap, time.Since(g.start).Seconds())

	switch {
	case g.state == StateTitle:
		g.title.Draw(screen)
	case g.snap.GameOver:
		g.over.Draw(screen)
	default:
		ui.DrawHUD(screen, g.snap)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}
