// Package render defines the drawing surface the world paints onto, with an ebiten
// implementation for the window and a recording one for headless runs and tests.
package render

import (
	"image/color"

	"github.com/plus3/spawnfield/internal/sprite"
)

// Surface is the subset of a 2D drawing context the world needs.
// Alpha set with SetAlpha applies to every later paint call until Restore.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c color.Color)
	// FillGradient paints a vertical gradient from top to bottom
	FillGradient(x, y, w, h float64, top, bottom color.Color)
	// DrawFrame blits frame of sheet scaled into the destination rectangle
	DrawFrame(sheet *sprite.Sheet, frame int, x, y, w, h float64)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	Save()
	Restore()
	SetAlpha(alpha float64)
}

// paintState is the save/restore stack shared by surfaces
type paintState struct {
	alpha float64
	saved []float64
}

func newPaintState() paintState {
	return paintState{alpha: 1}
}

// Alpha returns the current global alpha
func (p *paintState) Alpha() float64 {
	return p.alpha
}

func (p *paintState) Save() {
	p.saved = append(p.saved, p.alpha)
}

// Restore pops the last Save; an unbalanced Restore is ignored like a canvas would
func (p *paintState) Restore() {
	if n := len(p.saved); n > 0 {
		p.alpha = p.saved[n-1]
		p.saved = p.saved[:n-1]
	}
}

func (p *paintState) SetAlpha(alpha float64) {
	p.alpha = min(max(alpha, 0), 1)
}

// Mix linearly interpolates between a and b, t in [0,1]
func Mix(a, b color.Color, t float64) color.RGBA {
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{
		R: lerp(ca.R, cb.R),
		G: lerp(ca.G, cb.G),
		B: lerp(ca.B, cb.B),
		A: lerp(ca.A, cb.A),
	}
}

// Fade scales a premultiplied colour by alpha
func Fade(c color.Color, alpha float64) color.RGBA {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if alpha >= 1 {
		return rgba
	}
	scale := func(v uint8) uint8 {
		return uint8(float64(v)*alpha + 0.5)
	}
	return color.RGBA{R: scale(rgba.R), G: scale(rgba.G), B: scale(rgba.B), A: scale(rgba.A)}
}
