package sprite

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	wormSkin   = color.RGBA{196, 120, 132, 255}
	wormBelly  = color.RGBA{232, 170, 168, 255}
	ghostBody  = color.RGBA{226, 232, 244, 255}
	spiderBody = color.RGBA{46, 38, 52, 255}
	spiderLeg  = color.RGBA{30, 24, 36, 255}
	eyeWhite   = color.RGBA{250, 250, 250, 255}
	eyeDark    = color.RGBA{20, 20, 28, 255}
)

// PaintWorm draws a segmented worm crawling left, the segments rippling with phase
func PaintWorm(dst *ebiten.Image, r image.Rectangle, phase float64) {
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	const segments = 6
	radius := h * 0.16
	var headX, headY float32
	for i := segments - 1; i >= 0; i-- {
		t := float64(i) / (segments - 1)
		cx := ox + w*(0.18+0.64*float32(t))
		cy := oy + h*0.62 + float32(math.Sin(phase+t*2*math.Pi))*h*0.08
		vector.DrawFilledCircle(dst, cx, cy, radius, wormSkin, true)
		vector.DrawFilledCircle(dst, cx, cy+radius*0.35, radius*0.55, wormBelly, true)
		headX, headY = cx, cy
	}
	vector.DrawFilledCircle(dst, headX-radius*0.35, headY-radius*0.3, radius*0.28, eyeWhite, true)
	vector.DrawFilledCircle(dst, headX-radius*0.45, headY-radius*0.3, radius*0.13, eyeDark, true)
}

// PaintGhost draws a sheet-ghost whose hem waves with phase
func PaintGhost(dst *ebiten.Image, r image.Rectangle, phase float64) {
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	bob := float32(math.Sin(phase)) * h * 0.04
	cx, cy := ox+w*0.5, oy+h*0.4+bob
	radius := w * 0.3

	vector.DrawFilledCircle(dst, cx, cy, radius, ghostBody, true)
	vector.DrawFilledRect(dst, cx-radius, cy, radius*2, h*0.3, ghostBody, true)

	const folds = 4
	fold := radius * 2 / folds
	for i := 0; i < folds; i++ {
		dip := float32(math.Sin(phase+float64(i)*math.Pi/2)) * h * 0.03
		fx := cx - radius + fold*(float32(i)+0.5)
		vector.DrawFilledCircle(dst, fx, cy+h*0.3+dip, fold/2, ghostBody, true)
	}

	vector.DrawFilledCircle(dst, cx-radius*0.35, cy-radius*0.1, radius*0.14, eyeDark, true)
	vector.DrawFilledCircle(dst, cx+radius*0.35, cy-radius*0.1, radius*0.14, eyeDark, true)
}

// PaintSpider draws a round spider whose legs scissor with phase
func PaintSpider(dst *ebiten.Image, r image.Rectangle, phase float64) {
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	cx, cy := ox+w*0.5, oy+h*0.45
	radius := h * 0.22
	reach := w * 0.34

	for i := 0; i < 4; i++ {
		swing := math.Sin(phase+float64(i)*math.Pi/2) * 0.18
		angle := -0.7 + float64(i)*0.45 + swing
		dx := float32(math.Cos(angle)) * reach
		dy := float32(math.Sin(angle)) * reach * 0.6
		kneeY := cy - radius*0.8
		vector.StrokeLine(dst, cx, cy, cx+dx*0.6, kneeY, 4, spiderLeg, true)
		vector.StrokeLine(dst, cx+dx*0.6, kneeY, cx+dx, cy+dy+radius, 4, spiderLeg, true)
		vector.StrokeLine(dst, cx, cy, cx-dx*0.6, kneeY, 4, spiderLeg, true)
		vector.StrokeLine(dst, cx-dx*0.6, kneeY, cx-dx, cy+dy+radius, 4, spiderLeg, true)
	}

	vector.DrawFilledCircle(dst, cx, cy, radius, spiderBody, true)
	vector.DrawFilledCircle(dst, cx-radius*0.3, cy+radius*0.2, radius*0.16, eyeWhite, true)
	vector.DrawFilledCircle(dst, cx+radius*0.3, cy+radius*0.2, radius*0.16, eyeWhite, true)
}
