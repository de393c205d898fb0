package enemy

import (
	"image/color"

	"github.com/plus3/spawnfield/internal/render"
)

var threadColor = color.RGBA{20, 20, 20, 255}

// Drawable is everything Draw needs from an entity
type Drawable struct {
	*Body
	*Animation
	*Sprite
	Fade   *Fade   `ecs:"optional"`
	Thread *Thread `ecs:"optional"`
}

// Draw paints one entity: the spider thread first, then the current frame,
// translucent for faded entities.
func Draw(s render.Surface, d Drawable) {
	if d.Thread != nil {
		cx := d.X + d.Width/2
		s.StrokeLine(cx, 0, cx, d.Y+threadDrop, 1, threadColor)
	}
	if d.Fade != nil {
		s.Save()
		s.SetAlpha(d.Fade.Alpha)
		defer s.Restore()
	}
	s.DrawFrame(d.Sheet, d.Frame, d.X, d.Y, d.Width, d.Height)
}
