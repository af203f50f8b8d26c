// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Общие помощники отрисовки для виджетов. Прямоугольники и круги рисуются
// хелперами ebiten/vector, треугольники собираются из path вручную.

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

func fillTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, clr color.RGBA) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokeTriangle(dst *ebiten.Image, x1, y1, x2, y2, x3, y3, width float32, clr color.RGBA) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func applyColor(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}

// drawTextCentered выводит строку с центром в (cx, cy).
func drawTextCentered(dst *ebiten.Image, face font.Face, s string, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2
	y := cy + bounds.Dy()/2
	text.Draw(dst, s, face, x, y, clr)
}

// drawTextOutlined выводит строку с пиксельной обводкой вокруг основного
// цвета. Толщина задаётся в пикселях смещения.
func drawTextOutlined(dst *ebiten.Image, face font.Face, s string, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, clr)
}
