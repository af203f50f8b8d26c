// internal/system/projectile.go
package system

import (
	"math"
	"strconv"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряды самонаводящиеся: каждый тик летят на живую позицию цели,
// попадание засчитывается по порогу дистанции. Снаряд одноразовый.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Цель пропала (убита или утекла в этом же кадре) — снаряд исчезает
		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if !targetExists || targetPos == nil {
			s.removeProjectile(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Hypot(dx, dy)

		step := proj.Speed * deltaTime
		if dist <= step || dist <= config.ProjectileHitRadius {
			s.hitTarget(id, proj, targetPos)
		} else {
			pos.X += dx / dist * step
			pos.Y += dy / dist * step
		}
	}
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, targetPos *component.Position) {
	ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
	s.removeProjectile(projectileID)

	// Крит подсвечиваем всплывающим уроном
	if proj.Crit {
		textID := s.ecs.NewEntity()
		s.ecs.Positions[textID] = &component.Position{X: targetPos.X, Y: targetPos.Y - 14}
		s.ecs.FloatingTexts[textID] = &component.FloatingText{
			Value:     strconv.Itoa(proj.Damage) + "!",
			Color:     config.CritTextColor,
			Duration:  config.FloatingTextDuration,
			RiseSpeed: config.FloatingTextRiseSpeed,
		}
	}
}
