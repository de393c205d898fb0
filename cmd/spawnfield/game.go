package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spawnfield/ecs/debugui"
	debugui_ebiten "github.com/plus3/spawnfield/ecs/debugui/ebiten"
	"github.com/plus3/spawnfield/internal/clock"
	"github.com/plus3/spawnfield/internal/config"
	"github.com/plus3/spawnfield/internal/render"
	"github.com/plus3/spawnfield/internal/world"
)

// stepMs is the world time advanced by one debug Step
const stepMs = 1000.0 / ebiten.DefaultTPS

// PauseState lets the debug overlay freeze the world or advance it frame by frame
type PauseState struct {
	Paused     bool
	StepFrames int
}

// Game implements ebiten.Game. Update feeds the clock's delta to the world, Draw
// paints the world and, with -debug, the overlay on top.
type Game struct {
	world  *world.World
	clock  *clock.Clock
	window config.WindowConfig
	start  time.Time
	now    func() time.Time
	pause  PauseState

	lastDelta float64
	surface   *render.Screen

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func newGame(w *world.World, c *clock.Clock, window config.WindowConfig) *Game {
	return &Game{
		world:  w,
		clock:  c,
		window: window,
		start:  time.Now(),
		now:    time.Now,
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.advance()

	if g.overlay != nil {
		g.backend.BeginFrame()
		g.overlay.Update()
		g.backend.EndFrame()
	}
	return nil
}

// advance ticks the clock and moves the world unless paused. A queued step runs
// one fixed frame even while paused.
func (g *Game) advance() {
	elapsed := float64(g.now().Sub(g.start)) / float64(time.Millisecond)
	dt := g.clock.Tick(elapsed)
	g.lastDelta = dt

	switch {
	case g.pause.StepFrames > 0:
		g.pause.StepFrames--
		g.world.Update(stepMs)
	case !g.pause.Paused:
		g.world.Update(dt)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = render.NewScreen(screen)
	} else {
		g.surface.SetTarget(screen)
	}
	g.world.Draw(g.surface)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.window.Width, g.window.Height
}
