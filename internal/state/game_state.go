// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"merge-defense/internal/app"
	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/interfaces"
	"merge-defense/internal/meta"
	"merge-defense/internal/types"
	"merge-defense/internal/ui"
	"merge-defense/pkg/grid"
	"merge-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Виджеты читают игру через этот срез
var _ interfaces.GameView = (*app.Game)(nil)

const voucherItemID = "DEFENDER_VOUCHER"

// GameState — игровой экран: поле, виджеты и обработка кликов.
type GameState struct {
	sm      *StateMachine
	game    *app.Game
	tracker *meta.Tracker
	font    font.Face

	renderer *render.BoardRenderer

	hud            *ui.HUD
	waveIndicator  *ui.WaveIndicator
	livesIndicator *ui.LivesIndicator
	metersPanel    *ui.MetersPanel
	infoPanel      *ui.InfoPanel
	pauseButton    *ui.PauseButton
	speedButton    *ui.SpeedButton
	phaseIndicator *ui.PhaseIndicator
	freezeButton   *ui.PowerUpButton
	doubleButton   *ui.PowerUpButton
	voucherButton  *ui.PowerUpButton

	// Первая выбранная клетка в жесте слияния
	selectedCell  *grid.Cell
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, gameLogic *app.Game, tracker *meta.Tracker, face font.Face) *GameState {
	colors := render.BoardColors{
		Background:  config.BackgroundColor,
		Cell:        config.BoardCellColor,
		CellLine:    config.BoardLineColor,
		Lane:        config.LaneColor,
		LaneEdge:    config.LaneEdgeColor,
		StrokeWidth: 1,
	}
	renderer := render.NewBoardRenderer(gameLogic.Grid, gameLogic.Path,
		config.ScreenWidth, config.ScreenHeight, colors)
	renderer.SetFontFace(face)

	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		tracker:  tracker,
		font:     face,
		renderer: renderer,

		hud:            ui.NewHUD(face),
		waveIndicator:  ui.NewWaveIndicator(config.ScreenWidth/2, 40, face),
		livesIndicator: ui.NewLivesIndicator(20, 160, face),
		metersPanel:    ui.NewMetersPanel(20, 320, face),
		infoPanel:      ui.NewInfoPanel(face),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-3*config.IndicatorOffsetX-60), float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize), config.LaneEdgeColor, config.PhasePlayColor),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-2*config.IndicatorOffsetX-30), float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize), config.SpeedButtonColors),
		phaseIndicator: ui.NewPhaseIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX), float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius)),
		freezeButton: ui.NewPowerUpButton(60, 700, 26, "F",
			defs.PowerUpLibrary[defs.PowerUpFreeze].GemCost, config.UltChargeColor, face),
		doubleButton: ui.NewPowerUpButton(140, 700, 26, "C",
			defs.PowerUpLibrary[defs.PowerUpDoubleCoins].GemCost, config.RewardTextColor, face),
		voucherButton: ui.NewPowerUpButton(220, 700, 26, "V", 0, config.PhasePlayColor, face),

		lastClickTime: time.Now(),
	}
	return gs
}

func (g *GameState) Enter() {
	// Дорожка меняется от уровня к уровню
	g.renderer.SetPath(g.game.Path)
	g.pauseButton.SetPaused(false)
	g.selectedCell = nil
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update(g.game.ECS)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.enterPause()
		return
	}

	g.handleKeys()
	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.handleBoardClick(x, y)
		}
		g.lastClickTime = time.Now()
	}

	// Правый клик снимает выбор
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.clearSelection()
	}
}

func (g *GameState) handleKeys() {
	phase := g.game.Phase()

	if phase == component.PhaseGameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.RestartLevel()
			g.Enter()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.sm.SetState(NewMenuState(g.sm, g.game, g.tracker, g.font))
		}
		return
	}

	if phase == component.PhaseLevelComplete {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.game.AdvanceLevel(); err != nil {
				g.sm.SetState(NewMenuState(g.sm, g.game, g.tracker, g.font))
				return
			}
			g.Enter()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.sm.SetState(NewMenuState(g.sm, g.game, g.tracker, g.font))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.SpawnDefender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.game.UseUltimate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.tryPowerUp(defs.PowerUpFreeze, g.freezeButton)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tryPowerUp(defs.PowerUpDoubleCoins, g.doubleButton)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.redeemVoucher()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.phaseIndicator.HandleClick()
		g.game.SkipIntermission()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sm.SetState(NewMenuState(g.sm, g.game, g.tracker, g.font))
	}
}

// tryPowerUp сначала тратит заряд из инвентаря, потом кристаллы.
func (g *GameState) tryPowerUp(id string, button *ui.PowerUpButton) {
	button.HandleClick()
	chargeID := defs.ChargeItemID(id)
	if chargeID != "" && g.tracker.ConsumeItem(chargeID) {
		if !g.game.ActivatePowerUpFree(id) {
			// Усиление уже активно, заряд возвращается
			_ = g.tracker.Profile().AddItem(chargeID, 1)
		}
		return
	}
	g.game.ActivatePowerUp(id)
}

// redeemVoucher обменивает ваучер из гачи на бесплатного защитника.
func (g *GameState) redeemVoucher() {
	g.voucherButton.HandleClick()
	if g.tracker.Profile().ItemCount(voucherItemID) <= 0 {
		return
	}
	if len(g.game.Grid.FreeCells()) == 0 {
		return
	}
	if !g.tracker.ConsumeItem(voucherItemID) {
		return
	}
	if _, ok := g.game.SpawnDefenderFree(); !ok {
		_ = g.tracker.Profile().AddItem(voucherItemID, 1)
	}
}

func (g *GameState) enterPause() {
	g.pauseButton.TogglePause()
	g.game.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	if g.speedButton.IsClicked(x, y) || g.pauseButton.IsClicked(x, y) || g.phaseIndicator.IsClicked(x, y) {
		return true
	}
	if g.freezeButton.IsClicked(x, y) || g.doubleButton.IsClicked(x, y) {
		return true
	}
	if g.voucherVisible() && g.voucherButton.IsClicked(x, y) {
		return true
	}
	// Выдвинутая инфо-панель перекрывает низ экрана
	if g.infoPanel.IsVisible && y > config.ScreenHeight-150 {
		return true
	}
	return false
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	cooldown := time.Duration(config.ClickCooldown) * time.Millisecond

	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= cooldown {
			g.speedButton.ToggleState()
			g.game.CycleSpeed()
		}
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= cooldown {
			g.enterPause()
		}
	case g.phaseIndicator.IsClicked(x, y):
		if time.Since(g.phaseIndicator.LastClickTime) >= cooldown {
			g.phaseIndicator.HandleClick()
			g.game.SkipIntermission()
		}
	case g.freezeButton.IsClicked(x, y):
		g.tryPowerUp(defs.PowerUpFreeze, g.freezeButton)
	case g.doubleButton.IsClicked(x, y):
		g.tryPowerUp(defs.PowerUpDoubleCoins, g.doubleButton)
	case g.voucherVisible() && g.voucherButton.IsClicked(x, y):
		g.redeemVoucher()
	}
}

// handleBoardClick — выбор защитника и жест слияния в два клика.
// Выживает второй выбранный, на его клетке остаётся выбор.
func (g *GameState) handleBoardClick(x, y int) {
	cell, ok := g.game.Grid.CellAt(float64(x), float64(y))
	if !ok {
		g.clearSelection()
		return
	}

	id, _, occupied := g.game.DefenderAt(cell)
	if !occupied {
		g.clearSelection()
		return
	}

	if g.selectedCell == nil {
		g.selectCell(cell, id)
		return
	}
	if *g.selectedCell == cell {
		g.clearSelection()
		return
	}

	if _, result := g.game.TryMerge(*g.selectedCell, cell); result == app.MergeOK {
		if mergedID, _, ok := g.game.DefenderAt(cell); ok {
			g.selectCell(cell, mergedID)
		} else {
			g.clearSelection()
		}
		return
	}
	// Слияние не удалось, выбор переезжает на второй защитник
	g.selectCell(cell, id)
}

func (g *GameState) selectCell(cell grid.Cell, id types.EntityID) {
	c := cell
	g.selectedCell = &c
	g.infoPanel.SetTarget(id)
}

func (g *GameState) clearSelection() {
	g.selectedCell = nil
	g.infoPanel.Hide()
}

func (g *GameState) voucherVisible() bool {
	return g.tracker.Profile().ItemCount(voucherItemID) > 0
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS, g.selectedCell)

	g.hud.Draw(screen, g.game)
	g.waveIndicator.Draw(screen, g.game.CurrentWave())
	g.livesIndicator.Draw(screen, g.game.Lives(), g.game.LevelLives())
	g.metersPanel.Draw(screen, g.game)

	var phaseColor color.RGBA
	switch g.game.Phase() {
	case component.PhasePlaying:
		phaseColor = config.PhasePlayColor
	case component.PhaseIntermission:
		phaseColor = config.PhaseWaitColor
	case component.PhaseLevelComplete:
		phaseColor = config.UltReadyColor
	case component.PhaseGameOver:
		phaseColor = config.BossWaveColor
	default:
		phaseColor = color.RGBA{120, 120, 130, 255}
	}
	g.phaseIndicator.Draw(screen, phaseColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	g.freezeButton.Draw(screen, g.canAffordPowerUp(defs.PowerUpFreeze),
		g.game.PowerUpRemaining(defs.PowerUpFreeze))
	g.doubleButton.Draw(screen, g.canAffordPowerUp(defs.PowerUpDoubleCoins),
		g.game.PowerUpRemaining(defs.PowerUpDoubleCoins))
	if g.voucherVisible() {
		g.voucherButton.Draw(screen, true, 0)
		count := fmt.Sprintf("x%d", g.tracker.Profile().ItemCount(voucherItemID))
		text.Draw(screen, count, g.font, 240, 680, config.TextLightColor)
	}

	text.Draw(screen, "Space buy (20)  click+click merge  U ult  F freeze  C gold rush  V voucher  N next wave",
		g.font, 20, config.ScreenHeight-12, color.RGBA{150, 150, 160, 255})

	g.infoPanel.Draw(screen, g.game.ECS)
	g.drawEndBanner(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()))
}

// drawEndBanner рисует плашку конца уровня поверх поля.
func (g *GameState) drawEndBanner(screen *ebiten.Image) {
	phase := g.game.Phase()
	if phase != component.PhaseGameOver && phase != component.PhaseLevelComplete {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PausedDimColor, false)

	centerX := config.ScreenWidth / 2
	centerY := config.ScreenHeight / 2

	if phase == component.PhaseGameOver {
		g.drawBannerLine(screen, "GAME OVER", centerX, centerY-40, config.BossWaveColor)
		g.drawBannerLine(screen, fmt.Sprintf("Score: %d", g.game.Score()), centerX, centerY, config.TextLightColor)
		g.drawBannerLine(screen, "R retry    M menu", centerX, centerY+40, config.TextLightColor)
		return
	}

	stars := defs.Stars(g.game.Lives(), g.game.LevelLives())
	g.drawBannerLine(screen, "LEVEL COMPLETE", centerX, centerY-60, config.UltReadyColor)
	g.drawBannerLine(screen, strings.Repeat("* ", stars), centerX, centerY-20, config.RewardTextColor)
	g.drawBannerLine(screen, fmt.Sprintf("Score: %d", g.game.Score()), centerX, centerY+10, config.TextLightColor)
	g.drawBannerLine(screen, "Enter next level    M menu", centerX, centerY+50, config.TextLightColor)
}

func (g *GameState) drawBannerLine(screen *ebiten.Image, s string, cx, cy int, clr color.RGBA) {
	bounds := text.BoundString(g.font, s)
	text.Draw(screen, s, g.font, cx-bounds.Dx()/2, cy, clr)
}

func (g *GameState) canAffordPowerUp(id string) bool {
	if chargeID := defs.ChargeItemID(id); chargeID != "" && g.tracker.Profile().ItemCount(chargeID) > 0 {
		return true
	}
	return g.game.GemBalance() >= defs.PowerUpLibrary[id].GemCost
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
