// internal/system/damage.go
package system

import (
	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
)

// ApplyDamage наносит урон сущности. Здоровье не уходит ниже нуля;
// смерть разбирает проход очистки в конце кадра.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	// Вспышка урона только для врагов
	if _, isEnemy := ecs.Enemies[entityID]; isEnemy {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    0,
			Duration: config.DamageFlashDuration,
		}
	}
}
