package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/spawnfield/ecs"
	"github.com/plus3/spawnfield/ecs/debugui"
	debugui_ebiten "github.com/plus3/spawnfield/ecs/debugui/ebiten"
)

type Position struct {
	X, Y float64
}

// Game implements ebiten.Game and draws the overlay on top of the game world.
type Game struct {
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	g.overlay.Update()
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.New("ECS ImGui Example", 1280, 720)

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	storage := ecs.NewStorage(registry)
	storage.Spawn(Position{X: 1, Y: 2})

	overlay := debugui.NewOverlay(storage, nil)
	overlay.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from ECS!")
		imgui.End()
	})

	if err := ebiten.RunGame(&Game{backend: backend, overlay: overlay}); err != nil {
		panic(err)
	}
}
