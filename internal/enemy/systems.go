package enemy

import "github.com/plus3/spawnfield/ecs"

// DriftSystem is the shared horizontal motion: move left, mark once fully off screen.
type DriftSystem struct {
	Enemies ecs.Query[struct {
		*Body
		*Drift
		*Cull
	}]
}

func (s *DriftSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Enemies.Values() {
		e.X -= e.VX * frame.DeltaTime
		if e.OffLeft() {
			e.Marked = true
		}
	}
}

// AnimationSystem advances every sprite strip
type AnimationSystem struct {
	Enemies ecs.Query[struct{ *Animation }]
}

func (s *AnimationSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Enemies.Values() {
		e.Advance(frame.DeltaTime)
	}
}

// WaveSystem applies the ghost's sine drift after the shared motion
type WaveSystem struct {
	Enemies ecs.Query[struct {
		*Body
		*Wave
	}]
}

func (s *WaveSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Enemies.Values() {
		e.Wave.Step(e.Body)
	}
}

// DangleSystem runs the spider's thread: cull once it has climbed two heights
// above the top edge, then move and bounce.
type DangleSystem struct {
	Enemies ecs.Query[struct {
		*Body
		*Dangle
		*Cull
	}]
}

func (s *DangleSystem) Execute(frame *ecs.UpdateFrame) {
	for e := range s.Enemies.Values() {
		if e.Y < -2*e.Height {
			e.Marked = true
		}
		e.Dangle.Step(e.Body, frame.DeltaTime)
	}
}

// Systems returns a fresh set of enemy systems in execution order. Shared motion and
// animation run before the variant-specific adjustments.
func Systems() []ecs.System {
	return []ecs.System{
		&DriftSystem{},
		&AnimationSystem{},
		&WaveSystem{},
		&DangleSystem{},
	}
}
