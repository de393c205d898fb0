// Package enemy holds the components, spawn templates and per-frame systems of the
// Worm, Ghost and Spider variants.
package enemy

import (
	"math"

	"github.com/plus3/spawnfield/ecs"
	"github.com/plus3/spawnfield/internal/sprite"
)

// Bounds is the read-only view of the world's size that templates spawn against
type Bounds struct {
	Width, Height float64
}

// Body is position and on-screen size
type Body struct {
	X, Y          float64
	Width, Height float64
}

// OffLeft reports whether the body has fully left the left edge
func (b *Body) OffLeft() bool {
	return b.X < -b.Width
}

// Drift is leftward speed in pixels per millisecond
type Drift struct {
	VX float64
}

// Animation walks a sprite strip on a fixed timer
type Animation struct {
	Frame    int
	MaxFrame int
	Timer    float64
	Interval float64
}

// Advance either steps to the next frame (wrapping after MaxFrame) once the timer
// has passed Interval, or accumulates dt.
func (a *Animation) Advance(dt float64) {
	if a.Timer > a.Interval {
		if a.Frame < a.MaxFrame {
			a.Frame++
		} else {
			a.Frame = 0
		}
		a.Timer = 0
	} else {
		a.Timer += dt
	}
}

// Cull flags an entity for removal at the next cleanup
type Cull struct {
	Marked bool
}

// Sprite is the strip an entity is drawn from
type Sprite struct {
	Sheet *sprite.Sheet
}

// Wave is the ghost's sinusoidal vertical drift
type Wave struct {
	Angle float64
	Curve float64
}

// Step moves body along the wave and advances the angle by waveStep
func (w *Wave) Step(b *Body) {
	b.Y += math.Sin(w.Angle) * w.Curve
	w.Angle += waveStep
}

// Dangle is the spider's bounded vertical travel on its thread
type Dangle struct {
	VY        float64
	MaxLength float64
}

// Step moves body by VY*dt and reverses once the body passes MaxLength
func (d *Dangle) Step(b *Body, dt float64) {
	b.Y += d.VY * dt
	if b.Y > d.MaxLength {
		d.VY = -d.VY
	}
}

// Fade draws the entity translucently
type Fade struct {
	Alpha float64
}

// Thread draws a line from the top edge down to the entity
type Thread struct{}

// Register adds every enemy component to registry
func Register(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Kind](registry)
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Drift](registry)
	ecs.RegisterComponent[Animation](registry)
	ecs.RegisterComponent[Cull](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Wave](registry)
	ecs.RegisterComponent[Dangle](registry)
	ecs.RegisterComponent[Fade](registry)
	ecs.RegisterComponent[Thread](registry)
}
