// internal/system/economy.go
package system

import (
	"image/color"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/economy"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
)

// EconomySystem начисляет награды за убийства и ведёт боевые шкалы:
// комбо, фивер, заряд ульты, серию убийств, счёт. Подписана на EnemyKilled.
type EconomySystem struct {
	ecs             *entity.ECS
	wallet          economy.Wallet
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewEconomySystem(ecs *entity.ECS, wallet economy.Wallet, eventDispatcher *event.Dispatcher, log zerolog.Logger) *EconomySystem {
	es := &EconomySystem{
		ecs:             ecs,
		wallet:          wallet,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, es)
	return es
}

// OnEvent — конвейер убийства. Комбо инкрементится первым, награда и
// прирост фивера считаются уже от нового значения.
func (s *EconomySystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	payload, ok := e.Data.(event.EnemyKilledPayload)
	if !ok {
		return
	}

	m := s.ecs.Meters

	// 1. Комбо
	m.Combo++
	m.ComboTimer = config.ComboWindow

	// 2. Награда: base * fever * doubleCoins * (1 + 0.01*combo)
	mult := 1.0 + config.ComboCoinStep*float64(m.Combo)
	if m.FeverActive {
		mult *= config.FeverCoinMult
	}
	if m.DoubleCoinsTimer > 0 {
		mult *= config.DoubleCoinsMult
	}
	reward := int64(math.Round(float64(payload.Reward) * mult))
	s.wallet.AddCoins(reward)

	// 3. Фивер наполняется только пока не активен
	if !m.FeverActive {
		m.Fever += config.FeverFillBase + float64(m.Combo)
		if m.Fever >= config.FeverMax {
			m.Fever = config.FeverMax
			m.FeverActive = true
			s.log.Debug().Int("combo", m.Combo).Msg("Fever started")
			s.eventDispatcher.Emit(event.FeverStarted, nil)
		}
	}

	// 4. Заряд ульты
	if !m.UltimateReady {
		m.UltimateCharge += config.UltimateChargePerKill
		if m.UltimateCharge >= config.UltimateMax {
			m.UltimateCharge = config.UltimateMax
			m.UltimateReady = true
			s.log.Debug().Msg("Ultimate ready")
			s.eventDispatcher.Emit(event.UltimateReady, nil)
		}
	}

	// 5. Серия убийств
	m.Streak++
	m.StreakTimer = config.StreakWindow
	for _, th := range config.StreakThresholds {
		if m.Streak == th.Count {
			s.eventDispatcher.Emit(event.StreakMessage, event.StreakMessagePayload{
				Count: th.Count,
				Label: th.Label,
			})
			s.spawnFloatingText(payload.X, payload.Y-30, th.Label, config.StreakTextColor)
			break
		}
	}

	// 6. Счёт и кристаллы
	s.ecs.Session.Score += payload.ScoreValue
	if payload.GemBonus > 0 {
		s.wallet.AddGems(payload.GemBonus)
	}

	s.spawnFloatingText(payload.X, payload.Y, "+"+strconv.FormatInt(reward, 10), config.RewardTextColor)
}

// Update тикает таймеры шкал: окно комбо, слив фивера, окно серии.
func (s *EconomySystem) Update(deltaTime float64) {
	m := s.ecs.Meters

	if m.Combo > 0 {
		m.ComboTimer -= deltaTime
		if m.ComboTimer <= 0 {
			m.Combo = 0
			m.ComboTimer = 0
		}
	}

	if m.FeverActive {
		m.Fever -= deltaTime * config.FeverMax / config.FeverDuration
		if m.Fever <= 0 {
			m.Fever = 0
			m.FeverActive = false
			s.eventDispatcher.Emit(event.FeverEnded, nil)
		}
	}

	if m.Streak > 0 {
		m.StreakTimer -= deltaTime
		if m.StreakTimer <= 0 {
			m.Streak = 0
			m.StreakTimer = 0
		}
	}
}

func (s *EconomySystem) spawnFloatingText(x, y float64, value string, clr color.RGBA) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.FloatingTexts[id] = &component.FloatingText{
		Value:     value,
		Color:     clr,
		Duration:  config.FloatingTextDuration,
		RiseSpeed: config.FloatingTextRiseSpeed,
	}
}
