// internal/ui/meters_panel.go
package ui

import (
	"fmt"
	"image/color"

	"merge-defense/internal/config"
	"merge-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	meterBarWidth  = 150.0
	meterBarHeight = 12.0
	meterSpacing   = 34.0
)

// MetersPanel рисует шкалы фивера и ульты вместе со счётчиками комбо и
// серии убийств.
type MetersPanel struct {
	X, Y float32
	Font font.Face
}

func NewMetersPanel(x, y float32, face font.Face) *MetersPanel {
	return &MetersPanel{X: x, Y: y, Font: face}
}

func (p *MetersPanel) Draw(screen *ebiten.Image, view interfaces.GameView) {
	y := p.Y

	fever, feverActive := view.FeverState()
	label := "FEVER"
	if feverActive {
		label = "FEVER!"
	}
	p.drawBar(screen, y, label, fever/100, config.FeverBarColor, feverActive)
	y += meterSpacing

	ult, ultReady := view.UltimateState()
	ultColor := config.UltChargeColor
	label = "ULT"
	if ultReady {
		ultColor = config.UltReadyColor
		label = "ULT READY (U)"
	}
	p.drawBar(screen, y, label, ult/100, ultColor, ultReady)
	y += meterSpacing

	if combo := view.ComboCount(); combo >= 2 {
		text.Draw(screen, fmt.Sprintf("COMBO x%d", combo), p.Font, int(p.X), int(y)+10, config.RewardTextColor)
	}
	y += 20

	if streak := view.StreakCount(); streak >= config.StreakThresholds[0].Count {
		label := fmt.Sprintf("STREAK %d", streak)
		// Подпись последнего достигнутого порога
		for _, threshold := range config.StreakThresholds {
			if streak >= threshold.Count {
				label = fmt.Sprintf("%s (%d)", threshold.Label, streak)
			}
		}
		text.Draw(screen, label, p.Font, int(p.X), int(y)+10, config.StreakTextColor)
	}
}

// drawBar рисует одну шкалу с подписью слева от заполнения.
func (p *MetersPanel) drawBar(screen *ebiten.Image, y float32, label string, fraction float64, clr color.RGBA, highlight bool) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	back := color.RGBA{30, 32, 44, 255}
	border := color.RGBA{255, 255, 255, 255}
	if !highlight {
		border = color.RGBA{120, 120, 130, 255}
	}

	text.Draw(screen, label, p.Font, int(p.X), int(y)-4, config.TextLightColor)
	vector.DrawFilledRect(screen, p.X, y, meterBarWidth, meterBarHeight, back, true)
	if fraction > 0 {
		vector.DrawFilledRect(screen, p.X, y, meterBarWidth*float32(fraction), meterBarHeight, clr, true)
	}
	vector.StrokeRect(screen, p.X, y, meterBarWidth, meterBarHeight, 1, border, true)
}
