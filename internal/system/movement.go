// internal/system/movement.go
package system

import (
	"merge-defense/internal/entity"
	"merge-defense/pkg/grid"
)

// MovementSystem двигает врагов вдоль дорожки по пройденной дистанции.
// Замороженные стоят на месте; дошедший до конца помечается ReachedEnd,
// списание жизни делает проход очистки.
type MovementSystem struct {
	ecs  *entity.ECS
	path *grid.Path
}

func NewMovementSystem(ecs *entity.ECS, path *grid.Path) *MovementSystem {
	return &MovementSystem{ecs: ecs, path: path}
}

// SetPath подменяет дорожку (смена уровня).
func (s *MovementSystem) SetPath(path *grid.Path) {
	s.path = path
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, progress := range s.ecs.PathProgress {
		enemy, isEnemy := s.ecs.Enemies[id]
		if !isEnemy || enemy.ReachedEnd {
			continue
		}
		vel, hasVel := s.ecs.Velocities[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasVel || !hasPos {
			continue
		}
		if _, frozen := s.ecs.FrozenEffects[id]; frozen {
			continue
		}

		progress.Dist += vel.Speed * deltaTime
		if progress.Dist >= s.path.Length() {
			progress.Dist = s.path.Length()
			enemy.ReachedEnd = true
		}

		p := s.path.PointAt(progress.Dist)
		pos.X = p.X
		pos.Y = p.Y
	}
}
