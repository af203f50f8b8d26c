// internal/ui/powerup_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// PowerUpButton — круглая кнопка усиления с горячей клавишей внутри и
// ценой в гемах под кнопкой. Недоступная кнопка перечёркивается.
type PowerUpButton struct {
	X, Y          float32
	Radius        float32
	Key           string
	GemCost       int
	BaseColor     color.RGBA
	LastClickTime time.Time
	Font          font.Face
}

func NewPowerUpButton(x, y, radius float32, key string, gemCost int, baseColor color.RGBA, face font.Face) *PowerUpButton {
	return &PowerUpButton{
		X:         x,
		Y:         y,
		Radius:    radius,
		Key:       key,
		GemCost:   gemCost,
		BaseColor: baseColor,
		Font:      face,
	}
}

// Draw рисует кнопку. remaining > 0 означает, что усиление уже активно,
// тогда вместо цены показывается остаток времени.
func (b *PowerUpButton) Draw(screen *ebiten.Image, affordable bool, remaining float64) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := b.Radius * float32(scale)

	white := color.RGBA{255, 255, 255, 255}
	clr := b.BaseColor
	if !affordable && remaining <= 0 {
		clr = color.RGBA{uint8(float64(clr.R) * 0.4), uint8(float64(clr.G) * 0.4), uint8(float64(clr.B) * 0.4), clr.A}
	}

	vector.DrawFilledCircle(screen, b.X, b.Y, radius, clr, true)
	vector.StrokeCircle(screen, b.X, b.Y, radius, 1.5, white, true)
	drawTextCentered(screen, b.Font, b.Key, int(b.X), int(b.Y), white)

	if remaining > 0 {
		drawTextCentered(screen, b.Font, fmt.Sprintf("%.0fs", remaining), int(b.X), int(b.Y+b.Radius)+12, white)
	} else {
		drawTextCentered(screen, b.Font, fmt.Sprintf("%dg", b.GemCost), int(b.X), int(b.Y+b.Radius)+12, white)
	}

	// Недоступную кнопку перечёркиваем
	if !affordable && remaining <= 0 {
		offset := radius * 0.9
		vector.StrokeLine(screen, b.X-offset, b.Y+offset, b.X+offset, b.Y-offset, 2,
			color.RGBA{220, 60, 60, 255}, true)
	}
}

func (b *PowerUpButton) IsClicked(mouseX, mouseY int) bool {
	dx := float64(float32(mouseX) - b.X)
	dy := float64(float32(mouseY) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Radius)*1.3
}

func (b *PowerUpButton) HandleClick() {
	b.LastClickTime = time.Now()
}
