package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spawnfield/internal/sprite"
)

// maxGradients bounds the gradient cache; the world paints a single background
const maxGradients = 8

type gradientKey struct {
	w, h        int
	top, bottom color.RGBA
}

// Screen paints onto an ebiten image, normally the frame passed to Game.Draw.
// Keep one Screen across frames and retarget it so cached gradients survive.
type Screen struct {
	paintState
	dst       *ebiten.Image
	gradients map[gradientKey]*ebiten.Image
}

// NewScreen wraps dst
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{
		paintState: newPaintState(),
		dst:        dst,
		gradients:  make(map[gradientKey]*ebiten.Image),
	}
}

// SetTarget points the screen at a new frame and resets the paint state
func (s *Screen) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	s.paintState = newPaintState()
}

func (s *Screen) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), Fade(c, s.alpha), false)
}

// FillGradient blits a gradient image painted on first use and cached by size and colours
func (s *Screen) FillGradient(x, y, w, h float64, top, bottom color.Color) {
	img := s.gradient(int(math.Ceil(w)), int(math.Ceil(h)), top, bottom)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	s.dst.DrawImage(img, op)
}

func (s *Screen) gradient(w, h int, top, bottom color.Color) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	key := gradientKey{
		w:      w,
		h:      h,
		top:    color.RGBAModel.Convert(top).(color.RGBA),
		bottom: color.RGBAModel.Convert(bottom).(color.RGBA),
	}
	if img, ok := s.gradients[key]; ok {
		return img
	}

	if len(s.gradients) >= maxGradients {
		for k, img := range s.gradients {
			img.Deallocate()
			delete(s.gradients, k)
		}
	}

	img := ebiten.NewImage(w, h)
	for i := 0; i < h; i++ {
		t := (float64(i) + 0.5) / float64(h)
		vector.DrawFilledRect(img, 0, float32(i), float32(w), 1, Mix(key.top, key.bottom, t), false)
	}
	s.gradients[key] = img
	return img
}

func (s *Screen) DrawFrame(sheet *sprite.Sheet, frame int, x, y, w, h float64) {
	if sheet == nil || sheet.Image == nil {
		return
	}
	src := sheet.Image.SubImage(sheet.Frame(frame)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(sheet.FrameWidth), h/float64(sheet.FrameHeight))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(src, op)
}

func (s *Screen) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), Fade(c, s.alpha), true)
}
