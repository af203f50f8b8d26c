// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PhaseIndicator — круглая лампа фазы уровня. Во время передышки клик по
// ней запускает следующую волну досрочно.
type PhaseIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewPhaseIndicator(x, y, radius float32) *PhaseIndicator {
	return &PhaseIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phaseColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, phaseColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.RGBA{255, 255, 255, 255}, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *PhaseIndicator) IsClicked(mouseX, mouseY int) bool {
	dx := float64(float32(mouseX) - i.X)
	dy := float64(float32(mouseY) - i.Y)
	return math.Hypot(dx, dy) <= float64(i.Radius)*1.5
}

// HandleClick обрабатывает клик
func (i *PhaseIndicator) HandleClick() {
	i.LastClickTime = time.Now()
	// Реакция на фазу остаётся за game_state
}
