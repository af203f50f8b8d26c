// internal/system/visual_effect.go
package system

import (
	"merge-defense/internal/entity"
)

// VisualEffectSystem гасит короткоживущие эффекты вроде вспышек урона
// и всплывающих чисел. Работает и в headless-прогоне, иначе сущности
// эффектов копятся без отрисовки.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	for id, text := range s.ecs.FloatingTexts {
		text.Timer += deltaTime
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y -= text.RiseSpeed * deltaTime
		}
		if text.Timer >= text.Duration {
			delete(s.ecs.FloatingTexts, id)
			delete(s.ecs.Positions, id)
		}
	}

	for id, wave := range s.ecs.Shockwaves {
		wave.Timer += deltaTime
		if wave.Timer >= wave.Duration {
			delete(s.ecs.Shockwaves, id)
			delete(s.ecs.Positions, id)
		}
	}
}
