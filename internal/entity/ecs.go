// internal/entity/ecs.go
package entity

import (
	"merge-defense/internal/component"
	"merge-defense/internal/types"
)

type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	PathProgress  map[types.EntityID]*component.PathProgress
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Defenders     map[types.EntityID]*component.Defender
	Combats       map[types.EntityID]*component.Combat
	Turrets       map[types.EntityID]*component.Turret
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	FrozenEffects map[types.EntityID]*component.FrozenEffect
	DamageFlashes map[types.EntityID]*component.DamageFlash
	FloatingTexts map[types.EntityID]*component.FloatingText
	Shockwaves    map[types.EntityID]*component.Shockwave
	Wave          *component.Wave
	Session       *component.Session
	Meters        *component.Meters
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		PathProgress:  make(map[types.EntityID]*component.PathProgress),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Defenders:     make(map[types.EntityID]*component.Defender),
		Combats:       make(map[types.EntityID]*component.Combat),
		Turrets:       make(map[types.EntityID]*component.Turret),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		FrozenEffects: make(map[types.EntityID]*component.FrozenEffect),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		FloatingTexts: make(map[types.EntityID]*component.FloatingText),
		Shockwaves:    make(map[types.EntityID]*component.Shockwave),
		Wave:          nil,
		Session:       &component.Session{Phase: component.PhaseIdle},
		Meters:        &component.Meters{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}
