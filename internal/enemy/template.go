package enemy

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/spawnfield/internal/sprite"
)

const (
	// DefaultFrameInterval is the time in ms each animation frame is held
	DefaultFrameInterval = 100.0

	sizeScale   = 0.5
	waveStep    = 0.1
	ghostAlpha  = 0.7
	threadDrop  = 10.0
	ghostBand   = 0.6
	wormMinVX   = 0.1
	wormSpanVX  = 0.1
	ghostMinVX  = 0.1
	ghostSpanVX = 0.2
	ghostCurve  = 3.0
	spiderMinVY = 0.1
	spiderSpan  = 0.1
)

// Template builds the component set for one variant
type Template struct {
	Kind          Kind
	Sheet         *sprite.Sheet
	FrameInterval float64
}

// Validate checks that the template can produce a drawable entity
func (t Template) Validate() error {
	if t.Sheet == nil {
		return fmt.Errorf("%s: missing sprite sheet", t.Kind)
	}
	if t.Sheet.FrameWidth <= 0 || t.Sheet.FrameHeight <= 0 || t.Sheet.Frames <= 0 {
		return fmt.Errorf("%s: sheet %q has empty frame geometry", t.Kind, t.Sheet.Name)
	}
	if t.FrameInterval < 0 {
		return fmt.Errorf("%s: negative frame interval", t.Kind)
	}
	if int(t.Kind) >= len(kindNames) {
		return fmt.Errorf("%w: %s", ErrUnknownKind, t.Kind)
	}
	return nil
}

// Build rolls a fresh entity of the template's kind placed against b.
// Worms and ghosts enter from the right edge, spiders from above the top edge.
func (t Template) Build(b Bounds, rng *rand.Rand) []any {
	w := float64(t.Sheet.FrameWidth) * sizeScale
	h := float64(t.Sheet.FrameHeight) * sizeScale

	components := []any{
		t.Kind,
		Animation{MaxFrame: t.Sheet.MaxFrame(), Interval: t.FrameInterval},
		Cull{},
		Sprite{Sheet: t.Sheet},
	}

	switch t.Kind {
	case Worm:
		components = append(components,
			Body{X: b.Width, Y: b.Height - h, Width: w, Height: h},
			Drift{VX: rng.Float64()*wormSpanVX + wormMinVX},
		)
	case Ghost:
		components = append(components,
			Body{X: b.Width, Y: rng.Float64() * b.Height * ghostBand, Width: w, Height: h},
			Drift{VX: rng.Float64()*ghostSpanVX + ghostMinVX},
			Wave{Curve: rng.Float64() * ghostCurve},
			Fade{Alpha: ghostAlpha},
		)
	case Spider:
		components = append(components,
			Body{X: rng.Float64() * b.Width, Y: -h, Width: w, Height: h},
			Drift{},
			Dangle{
				VY:        rng.Float64()*spiderSpan + spiderMinVY,
				MaxLength: rng.Float64() * b.Height,
			},
			Thread{},
		)
	}
	return components
}
