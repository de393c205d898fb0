// Package sprite describes horizontal sprite-sheet strips and paints procedural ones.
package sprite

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a single-row strip of equally sized animation frames.
// Image may be nil for headless runs; only the geometry is needed to simulate.
type Sheet struct {
	Name        string
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	Frames      int
}

// Frame returns the source rectangle of frame i (column i * FrameWidth)
func (s *Sheet) Frame(i int) image.Rectangle {
	x := i * s.FrameWidth
	return image.Rect(x, 0, x+s.FrameWidth, s.FrameHeight)
}

// MaxFrame is the index of the last frame
func (s *Sheet) MaxFrame() int {
	return s.Frames - 1
}

// Blank returns a sheet with geometry only
func Blank(name string, frameWidth, frameHeight, frames int) *Sheet {
	return &Sheet{
		Name:        name,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Frames:      frames,
	}
}

// Painter draws one frame into bounds. phase runs from 0 up to (but excluding) 2π
// across the strip so looping animations close seamlessly.
type Painter func(dst *ebiten.Image, bounds image.Rectangle, phase float64)

// Generate allocates a strip image and paints every frame with paint
func Generate(name string, frameWidth, frameHeight, frames int, paint Painter) *Sheet {
	sheet := Blank(name, frameWidth, frameHeight, frames)
	sheet.Image = ebiten.NewImage(frameWidth*frames, frameHeight)
	for i := 0; i < frames; i++ {
		phase := 2 * math.Pi * float64(i) / float64(frames)
		paint(sheet.Image, sheet.Frame(i), phase)
	}
	return sheet
}
