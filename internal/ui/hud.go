// internal/ui/hud.go
package ui

import (
	"fmt"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD — верхняя строка игрового экрана: уровень, волна, кошелёк и счёт.
type HUD struct {
	Font font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{Font: face}
}

func (h *HUD) Draw(screen *ebiten.Image, view interfaces.GameView) {
	text.Draw(screen, fmt.Sprintf("%s  [Level %d]", view.LevelName(), view.Level()),
		h.Font, 20, 24, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("Wave %d/%d", view.CurrentWave(), view.LevelWaves()),
		h.Font, 20, 44, config.TextLightColor)

	text.Draw(screen, fmt.Sprintf("Coins: %d", view.CoinBalance()),
		h.Font, 20, 72, config.RewardTextColor)
	text.Draw(screen, fmt.Sprintf("Gems: %d", view.GemBalance()),
		h.Font, 20, 92, config.UltReadyColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", view.Score()),
		h.Font, 20, 112, config.TextLightColor)

	if view.Phase() == component.PhaseIntermission {
		label := fmt.Sprintf("Next wave in %.1fs", view.IntermissionRemaining())
		drawTextCentered(screen, h.Font, label, config.ScreenWidth/2, 70, config.TextLightColor)
		drawTextCentered(screen, h.Font, "click the lamp or press N to start early", config.ScreenWidth/2, 90, config.WaveTextColor)
	}
}
