// internal/system/aim.go
package system

import (
	"math"

	"merge-defense/internal/entity"
)

// AimSystem доворачивает стволы защитников к их целям. Цель назначает
// CombatSystem при выстреле, здесь она только сопровождается, пока жива.
type AimSystem struct {
	ecs *entity.ECS
}

func NewAimSystem(ecs *entity.ECS) *AimSystem {
	return &AimSystem{ecs: ecs}
}

func (s *AimSystem) Update(deltaTime float64) {
	for id, turret := range s.ecs.Turrets {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}

		if turret.TargetID != 0 {
			enemy, alive := s.ecs.Enemies[turret.TargetID]
			targetPos, hasTarget := s.ecs.Positions[turret.TargetID]
			if !alive || !hasTarget || enemy.ReachedEnd {
				// Цель пропала, ствол остаётся в последнем положении
				turret.TargetID = 0
			} else {
				turret.TargetAngle = math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
			}
		}

		diff := normalizeAngle(turret.TargetAngle - turret.CurrentAngle)
		maxStep := turret.TurnSpeed * deltaTime
		if math.Abs(diff) <= maxStep {
			turret.CurrentAngle = turret.TargetAngle
			continue
		}
		turret.CurrentAngle = normalizeAngle(turret.CurrentAngle + math.Copysign(maxStep, diff))
	}
}

// normalizeAngle приводит угол к диапазону (-pi, pi], чтобы поворот
// всегда шёл по короткой дуге.
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
