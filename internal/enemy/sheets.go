package enemy

import (
	"image"

	"github.com/plus3/spawnfield/internal/sprite"
)

// SheetFrames is the strip length of every variant
const SheetFrames = 6

var frameSizes = map[Kind]image.Point{
	Worm:   {X: 229, Y: 171},
	Ghost:  {X: 261, Y: 209},
	Spider: {X: 310, Y: 175},
}

var painters = map[Kind]sprite.Painter{
	Worm:   sprite.PaintWorm,
	Ghost:  sprite.PaintGhost,
	Spider: sprite.PaintSpider,
}

// FrameSize returns the source frame size of kind's strip
func FrameSize(kind Kind) image.Point {
	return frameSizes[kind]
}

// Sheets paints a procedural strip for every kind. It allocates ebiten images.
func Sheets() map[Kind]*sprite.Sheet {
	sheets := make(map[Kind]*sprite.Sheet, len(frameSizes))
	for _, kind := range Kinds() {
		size := frameSizes[kind]
		sheets[kind] = sprite.Generate(kind.String(), size.X, size.Y, SheetFrames, painters[kind])
	}
	return sheets
}

// BlankSheets returns geometry-only strips for headless simulation
func BlankSheets() map[Kind]*sprite.Sheet {
	sheets := make(map[Kind]*sprite.Sheet, len(frameSizes))
	for _, kind := range Kinds() {
		size := frameSizes[kind]
		sheets[kind] = sprite.Blank(kind.String(), size.X, size.Y, SheetFrames)
	}
	return sheets
}
