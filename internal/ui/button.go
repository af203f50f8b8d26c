// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    color.RGBA{45, 55, 70, 255},
		HoverColor: color.RGBA{65, 80, 100, 255},
		Font:       face,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bgColor := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bgColor = b.HoverColor
	}

	vector.DrawFilledRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()), 2, color.RGBA{70, 130, 180, 255}, true)

	cx := b.Rect.Min.X + b.Rect.Dx()/2
	cy := b.Rect.Min.Y + b.Rect.Dy()/2
	drawTextCentered(screen, b.Font, b.Text, cx, cy, b.TextColor)
}
