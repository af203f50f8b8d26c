// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"
	"time"

	"merge-defense/internal/app"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/meta"
	"merge-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	menuButtonWidth  = 360
	menuButtonHeight = 56
	menuButtonGap    = 16
	noticeDuration   = 4.0
)

// MenuState — экран меты: выбор уровня, ежедневная награда, гача и
// список заданий.
type MenuState struct {
	sm      *StateMachine
	game    *app.Game
	tracker *meta.Tracker
	font    font.Face

	levelNumbers []int
	levelButtons []*ui.Button
	dailyButton  *ui.Button
	gachaButton  *ui.Button

	lastClickTime time.Time
	notice        string
	noticeTimer   float64

	// Кликабельные зоны готовых заданий, заполняются при отрисовке
	questZones map[string]image.Rectangle
}

func NewMenuState(sm *StateMachine, game *app.Game, tracker *meta.Tracker, face font.Face) *MenuState {
	m := &MenuState{
		sm:         sm,
		game:       game,
		tracker:    tracker,
		font:       face,
		questZones: map[string]image.Rectangle{},
	}

	for number := range defs.LevelLibrary {
		m.levelNumbers = append(m.levelNumbers, number)
	}
	sort.Ints(m.levelNumbers)

	x := (config.ScreenWidth - menuButtonWidth) / 2
	y := 220
	for range m.levelNumbers {
		rect := image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight)
		m.levelButtons = append(m.levelButtons, ui.NewButton(rect, "", face))
		y += menuButtonHeight + menuButtonGap
	}

	y += menuButtonGap
	m.dailyButton = ui.NewButton(image.Rect(x, y, x+menuButtonWidth/2-8, y+menuButtonHeight), "Daily reward (D)", face)
	m.gachaButton = ui.NewButton(image.Rect(x+menuButtonWidth/2+8, y, x+menuButtonWidth, y+menuButtonHeight),
		fmt.Sprintf("Gacha %dg (G)", defs.GachaPullCost), face)

	return m
}

func (m *MenuState) Enter() {
	// Автосейв на каждом возврате в меню
	m.tracker.Autosave()
}

func (m *MenuState) Update(deltaTime float64) {
	if m.noticeTimer > 0 {
		m.noticeTimer -= deltaTime
		if m.noticeTimer <= 0 {
			m.notice = ""
		}
	}

	for i, number := range m.levelNumbers {
		key := ebiten.Key(int(ebiten.Key1) + i)
		if inpututil.IsKeyJustPressed(key) {
			m.startLevel(number)
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		m.claimDaily()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		m.pullGacha()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if time.Since(m.lastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
			return
		}
		x, y := ebiten.CursorPosition()
		m.lastClickTime = time.Now()

		for i, button := range m.levelButtons {
			if button.Contains(x, y) {
				m.startLevel(m.levelNumbers[i])
				return
			}
		}
		if m.dailyButton.Contains(x, y) {
			m.claimDaily()
			return
		}
		if m.gachaButton.Contains(x, y) {
			m.pullGacha()
			return
		}
		for id, zone := range m.questZones {
			if image.Pt(x, y).In(zone) {
				if def, ok := m.tracker.ClaimQuest(id); ok {
					m.showNotice(fmt.Sprintf("Quest reward: %d coins, %d gems", def.RewardCoins, def.RewardGems))
				}
				return
			}
		}
	}
}

// unlocked — уровень доступен, когда пройден предыдущий.
func (m *MenuState) unlocked(level int) bool {
	return level <= m.tracker.Profile().HighestLevel+1
}

func (m *MenuState) startLevel(level int) {
	if !m.unlocked(level) {
		m.showNotice(fmt.Sprintf("Level %d is locked, beat level %d first", level, level-1))
		return
	}
	if err := m.game.StartLevel(level); err != nil {
		m.showNotice("Failed to start level")
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.game, m.tracker, m.font))
}

func (m *MenuState) claimDaily() {
	reward, ok := m.tracker.ClaimDaily()
	if !ok {
		m.showNotice("Daily reward already claimed, come back tomorrow")
		return
	}
	if reward.Gems > 0 {
		m.showNotice(fmt.Sprintf("Daily reward: %d coins, %d gems", reward.Coins, reward.Gems))
	} else {
		m.showNotice(fmt.Sprintf("Daily reward: %d coins", reward.Coins))
	}
}

func (m *MenuState) pullGacha() {
	item, ok := m.tracker.PullGacha()
	if !ok {
		m.showNotice(fmt.Sprintf("Not enough gems, gacha costs %d", defs.GachaPullCost))
		return
	}
	m.showNotice("Gacha: " + item.Name)
}

func (m *MenuState) showNotice(s string) {
	m.notice = s
	m.noticeTimer = noticeDuration
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cursorX, cursorY := ebiten.CursorPosition()
	profile := m.tracker.Profile()

	title := "MERGE DEFENSE"
	titleBounds := text.BoundString(m.font, title)
	text.Draw(screen, title, m.font, (config.ScreenWidth-titleBounds.Dx())/2, 90, config.TextLightColor)

	wallet := fmt.Sprintf("Coins: %d    Gems: %d", m.game.CoinBalance(), m.game.GemBalance())
	walletBounds := text.BoundString(m.font, wallet)
	text.Draw(screen, wallet, m.font, (config.ScreenWidth-walletBounds.Dx())/2, 130, config.RewardTextColor)

	if profile.BestScore > 0 {
		best := fmt.Sprintf("Best score: %d", profile.BestScore)
		bestBounds := text.BoundString(m.font, best)
		text.Draw(screen, best, m.font, (config.ScreenWidth-bestBounds.Dx())/2, 160, config.TextLightColor)
	}

	stars, err := profile.StarsByLevel()
	if err != nil {
		stars = map[int]int{}
	}
	for i, button := range m.levelButtons {
		number := m.levelNumbers[i]
		def := defs.LevelLibrary[number]
		label := fmt.Sprintf("%d. %s  (%d waves)", number, def.Name, def.Waves)
		if got := stars[number]; got > 0 {
			label += "  " + strings.Repeat("*", got)
		}
		if !m.unlocked(number) {
			label = fmt.Sprintf("%d. LOCKED", number)
		}
		button.Text = label
		button.Draw(screen, cursorX, cursorY)
	}

	m.dailyButton.Text = "Daily reward (D)"
	if !m.tracker.CanClaimDaily() {
		m.dailyButton.Text = "Daily claimed"
	}
	m.dailyButton.Draw(screen, cursorX, cursorY)
	m.gachaButton.Draw(screen, cursorX, cursorY)

	m.drawQuests(screen)

	if m.notice != "" {
		noticeBounds := text.BoundString(m.font, m.notice)
		text.Draw(screen, m.notice, m.font, (config.ScreenWidth-noticeBounds.Dx())/2,
			config.ScreenHeight-80, config.UltReadyColor)
	}
}

// drawQuests выводит сегодняшние задания в правой колонке. Зоны клика
// готовых заданий запоминаются для Update.
func (m *MenuState) drawQuests(screen *ebiten.Image) {
	x := config.ScreenWidth - 330
	y := 220
	cursorX, cursorY := ebiten.CursorPosition()
	m.questZones = map[string]image.Rectangle{}

	text.Draw(screen, "Daily quests:", m.font, x, y, config.TextLightColor)
	y += 26

	board := m.tracker.QuestBoard()
	ids := make([]string, 0, len(board))
	for id := range board {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		def := defs.QuestLibrary[id]
		qs := board[id]
		line := fmt.Sprintf("%s %d/%d", def.Name, qs.Progress, def.Target)
		clr := color.RGBA{170, 170, 180, 255}
		if qs.Claimed {
			line += " [claimed]"
			clr = color.RGBA{100, 100, 110, 255}
		} else if qs.Done {
			line += " [click to claim]"
			clr = config.RewardTextColor
			zone := image.Rect(x-4, y-16, x+310, y+6)
			m.questZones[id] = zone
			if image.Pt(cursorX, cursorY).In(zone) {
				vector.StrokeRect(screen, float32(zone.Min.X), float32(zone.Min.Y),
					float32(zone.Dx()), float32(zone.Dy()), 1, config.RewardTextColor, true)
			}
		}
		text.Draw(screen, line, m.font, x, y, clr)
		y += 22
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
