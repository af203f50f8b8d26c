// internal/system/status_effect.go
package system

import (
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
)

// StatusEffectSystem управляет жизненным циклом эффектов: заморозкой
// отдельных врагов и глобальными таймерами усилений.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	// Заморозка отдельных врагов
	for id, effect := range s.ecs.FrozenEffects {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.FrozenEffects, id)
		}
	}

	// Глобальные таймеры усилений
	m := s.ecs.Meters
	if m.FreezeTimer > 0 {
		m.FreezeTimer -= deltaTime
		if m.FreezeTimer <= 0 {
			m.FreezeTimer = 0
			s.eventDispatcher.Emit(event.PowerUpExpired, event.PowerUpPayload{ID: defs.PowerUpFreeze})
		}
	}
	if m.DoubleCoinsTimer > 0 {
		m.DoubleCoinsTimer -= deltaTime
		if m.DoubleCoinsTimer <= 0 {
			m.DoubleCoinsTimer = 0
			s.eventDispatcher.Emit(event.PowerUpExpired, event.PowerUpPayload{ID: defs.PowerUpDoubleCoins})
		}
	}
}
