package world

import (
	"image/color"

	"github.com/plus3/spawnfield/internal/enemy"
	"github.com/plus3/spawnfield/internal/render"
)

var (
	skyTop    = color.RGBA{0x1b, 0x26, 0x3b, 0xff}
	skyBottom = color.RGBA{0x8f, 0xb3, 0x9a, 0xff}
)

// Draw paints the background, then every enemy in the stored order.
// The order is only refreshed when an enemy is added.
func (w *World) Draw(s render.Surface) {
	s.ClearRect(0, 0, w.bounds.Width, w.bounds.Height)
	s.FillGradient(0, 0, w.bounds.Width, w.bounds.Height, skyTop, skyBottom)

	var d enemy.Drawable
	for _, id := range w.entities {
		if w.drawables.Fill(id, &d) {
			enemy.Draw(s, d)
		}
	}
}
