package debugui

import "github.com/plus3/spawnfield/ecs"

// Overlay is a separate ECS world that renders debug windows for a target world.
// Update must be called between the backend's BeginFrame and EndFrame.
type Overlay struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	input     *ecs.Singleton[ImguiInputState]
	timer     *FrameTimer
}

// NewOverlay builds an overlay with the entity browser, component inspector and
// performance windows wired to target. targetScheduler may be nil.
func NewOverlay(target *ecs.Storage, targetScheduler *ecs.Scheduler) *Overlay {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ImguiSystem{})

	o := &Overlay{
		storage:   storage,
		scheduler: scheduler,
		input:     ecs.NewSingleton(storage, ImguiInputState{}),
		timer:     NewFrameTimer(),
	}

	browser := NewEntityBrowser(100)
	inspector := &ComponentInspector{}
	perf := NewPerformanceStats(120)

	o.Add(func() {
		browser.Render(target)
		id, ok := browser.Selected()
		inspector.Render(target, id, ok)
	})
	o.Add(func() {
		perf.Render(target, targetScheduler, o.timer.DeltaMs())
	})
	return o
}

// Add spawns a window render function into the overlay world
func (o *Overlay) Add(render func()) {
	o.storage.Spawn(ImguiItem{Render: render})
}

// Update queues and runs every window for this frame
func (o *Overlay) Update() {
	o.scheduler.Once(0)
}

// WantCaptureMouse reports whether ImGui consumed the mouse last frame
func (o *Overlay) WantCaptureMouse() bool {
	return o.input.Get().WantCaptureMouse
}
