// internal/app/powerups.go
package app

import (
	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/event"
	"merge-defense/internal/system"
)

// UseUltimate выжигает всех живых врагов на поле. Срабатывает только
// при полной шкале; смерти разбирает обычный проход очистки.
func (g *Game) UseUltimate() bool {
	m := g.ECS.Meters
	if !m.UltimateReady {
		g.log.Debug().Float64("charge", m.UltimateCharge).Msg("Ultimate rejected: not ready")
		return false
	}

	hit := 0
	for id, enemy := range g.ECS.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		system.ApplyDamage(g.ECS, id, config.UltimateDamage)
		hit++
	}

	m.UltimateCharge = 0
	m.UltimateReady = false
	g.spawnShockwave()
	g.log.Info().Int("enemies", hit).Msg("Ultimate used")
	g.EventDispatcher.Emit(event.UltimateUsed, nil)
	return true
}

// spawnShockwave запускает кольцо взрыва из центра экрана. Сущность
// живёт ShockwaveDuration и гасится системой визуальных эффектов.
func (g *Game) spawnShockwave() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{
		X: float64(config.ScreenWidth) / 2,
		Y: float64(config.ScreenHeight) / 2,
	}
	g.ECS.Shockwaves[id] = &component.Shockwave{
		MaxRadius: config.ShockwaveRadius,
		Duration:  config.ShockwaveDuration,
	}
}

// ActivatePowerUp покупает и включает усиление за кристаллы.
// Повторная активация во время действия отклоняется.
func (g *Game) ActivatePowerUp(id string) bool {
	def, ok := g.checkPowerUp(id)
	if !ok {
		return false
	}

	if !g.Wallet.SpendGems(def.GemCost) {
		g.log.Debug().Str("powerup", id).Int("gems", g.Wallet.Gems()).Msg("Power-up rejected: not enough gems")
		return false
	}

	g.applyPowerUp(def)
	return true
}

// ActivatePowerUpFree включает усиление без оплаты. Путь для зарядов,
// выпавших из гачи.
func (g *Game) ActivatePowerUpFree(id string) bool {
	def, ok := g.checkPowerUp(id)
	if !ok {
		return false
	}
	g.applyPowerUp(def)
	return true
}

func (g *Game) checkPowerUp(id string) (defs.PowerUpDefinition, bool) {
	def, ok := defs.PowerUpLibrary[id]
	if !ok {
		g.log.Warn().Str("powerup", id).Msg("Power-up rejected: unknown id")
		return defs.PowerUpDefinition{}, false
	}

	m := g.ECS.Meters
	switch id {
	case defs.PowerUpFreeze:
		if m.FreezeTimer > 0 {
			g.log.Debug().Msg("Power-up rejected: freeze already active")
			return defs.PowerUpDefinition{}, false
		}
	case defs.PowerUpDoubleCoins:
		if m.DoubleCoinsTimer > 0 {
			g.log.Debug().Msg("Power-up rejected: double coins already active")
			return defs.PowerUpDefinition{}, false
		}
	}
	return def, true
}

func (g *Game) applyPowerUp(def defs.PowerUpDefinition) {
	m := g.ECS.Meters
	switch def.ID {
	case defs.PowerUpFreeze:
		m.FreezeTimer = def.Duration
		// Замораживаем всех, кто уже на поле; новые спавны подморозит
		// глобальный таймер
		for enemyID, enemy := range g.ECS.Enemies {
			if enemy.ReachedEnd {
				continue
			}
			g.ECS.FrozenEffects[enemyID] = &component.FrozenEffect{Timer: def.Duration}
		}
	case defs.PowerUpDoubleCoins:
		m.DoubleCoinsTimer = def.Duration
	}

	g.log.Info().Str("powerup", def.ID).Float64("duration", def.Duration).Msg("Power-up activated")
	g.EventDispatcher.Emit(event.PowerUpActivated, event.PowerUpPayload{ID: def.ID})
}

// PowerUpRemaining — остаток действия усиления в секундах, 0 если оно
// не активно.
func (g *Game) PowerUpRemaining(id string) float64 {
	m := g.ECS.Meters
	switch id {
	case defs.PowerUpFreeze:
		return m.FreezeTimer
	case defs.PowerUpDoubleCoins:
		return m.DoubleCoinsTimer
	}
	return 0
}
