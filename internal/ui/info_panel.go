// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 150
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 200
	titleFontSize  = 18
)

// InfoPanel displays information about a selected defender.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		IsVisible: false,
		fontFace:  face,
		currentY:  config.ScreenHeight,
		targetY:   config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	// Цель могла слиться или быть продана
	if p.TargetEntity != 0 {
		if _, ok := ecs.Defenders[p.TargetEntity]; !ok {
			p.Hide()
		}
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == 0 {
		return
	}

	p.drawDefenderInfo(screen, ecs, panelRect.Min.X+15, panelRect.Min.Y+15)
}

func (p *InfoPanel) drawDefenderInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	defender, ok := ecs.Defenders[p.TargetEntity]
	if !ok {
		return
	}
	def, ok := defs.DefenderTiers[defender.Tier]
	if !ok {
		return
	}

	yPos := startY + titleFontSize
	title := fmt.Sprintf("%s (Tier %d)", def.Name, def.Tier)
	text.Draw(screen, title, p.fontFace, startX, yPos, config.TierColors[def.Tier])

	col1X := startX
	col2X := startX + columnSpacing
	y := yPos + lineHeight

	text.Draw(screen, fmt.Sprintf("Damage: %d", def.Damage), p.fontFace, col1X, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Crit: %.0f%%", config.CritChanceForTier(def.Tier)*100), p.fontFace, col2X, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", def.FireRate), p.fontFace, col1X, y, config.TextLightColor)

	hint := fmt.Sprintf("Merge with another tier %d to upgrade", def.Tier)
	if def.Tier >= config.MaxTier {
		hint = "Max tier"
	}
	text.Draw(screen, hint, p.fontFace, col2X, y, config.RewardTextColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Range: %.0f", def.Range), p.fontFace, col1X, y, config.TextLightColor)
}
