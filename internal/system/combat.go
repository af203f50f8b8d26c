package system

import (
	"math"

	"github.com/rs/zerolog"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
	"merge-defense/internal/utils"
)

// CombatSystem управляет стрельбой защитников: перезарядка, выбор
// ближайшей цели в радиусе, бросок крита, создание снаряда.
type CombatSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
	log zerolog.Logger
}

func NewCombatSystem(ecs *entity.ECS, rng *utils.PRNGService, log zerolog.Logger) *CombatSystem {
	return &CombatSystem{ecs: ecs, rng: rng, log: log}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for id, combat := range s.ecs.Combats {
		defender, hasDefender := s.ecs.Defenders[id]
		if !hasDefender {
			continue
		}

		def, ok := defs.DefenderTiers[defender.Tier]
		if !ok {
			s.log.Error().Int("tier", defender.Tier).Msg("Defender definition not found")
			continue
		}

		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			continue
		}

		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		enemyID := s.findNearestEnemyInRange(pos, def.Range)
		if enemyID == 0 {
			continue
		}
		if turret, ok := s.ecs.Turrets[id]; ok {
			turret.TargetID = enemyID
		}

		damage := def.Damage
		crit := s.rng.Chance(config.CritChanceForTier(defender.Tier))
		if crit {
			damage = int(math.Round(float64(damage) * config.CritMultiplier))
		}

		s.createProjectile(id, enemyID, damage, crit)
		combat.FireCooldown = 1.0 / def.FireRate
	}
}

// findNearestEnemyInRange возвращает ближайшего живого врага в радиусе.
// Побеждает строго меньшая дистанция; при точном равенстве — меньший ID,
// чтобы выбор не зависел от порядка обхода карты.
func (s *CombatSystem) findNearestEnemyInRange(from *component.Position, rangeRadius float64) types.EntityID {
	var nearestEnemy types.EntityID
	minDistance := math.MaxFloat64
	for enemyID, enemy := range s.ecs.Enemies {
		if enemy.ReachedEnd {
			continue
		}
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos {
			continue
		}
		if health, hasHealth := s.ecs.Healths[enemyID]; !hasHealth || health.Value <= 0 {
			continue
		}
		distance := math.Hypot(enemyPos.X-from.X, enemyPos.Y-from.Y)
		if distance > rangeRadius {
			continue
		}
		if distance < minDistance || (distance == minDistance && enemyID < nearestEnemy) {
			minDistance = distance
			nearestEnemy = enemyID
		}
	}
	return nearestEnemy
}

func (s *CombatSystem) createProjectile(defenderID, enemyID types.EntityID, damage int, crit bool) {
	projID := s.ecs.NewEntity()
	defenderPos := s.ecs.Positions[defenderID]

	projColor := config.TextLightColor
	if crit {
		projColor = config.CritTextColor
	}

	s.ecs.Positions[projID] = &component.Position{X: defenderPos.X, Y: defenderPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: enemyID,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
		Crit:     crit,
		Color:    projColor,
	}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color:     projColor,
		Radius:    config.ProjectileRadius,
		HasStroke: false,
	}
}
