package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// hudFace is the bitmap face used for all shell text. A fixed 7x13
// face keeps the retro look and needs no font assets.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

var hudTextColor = color.RGBA{R: 222, G: 210, B: 200, A: 255}

func drawText(dst *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(dst, s, hudFace, op)
}

func drawCenteredText(dst *ebiten.Image, s string, cx, y int) {
	w := text.Advance(s, hudFace)
	drawText(dst, s, cx-int(w/2), y)
}

// drawTitleText renders s at double scale, centered on cx.
func drawTitleText(dst *ebiten.Image, s string, cx, y int) {
	w := text.Advance(s, hudFace) * 2
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(cx)-w/2, float64(y))
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(dst, s, hudFace, op)
}
