// internal/system/projectile_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
)

func addProjectile(ecs *entity.ECS, x, y float64, target types.EntityID, damage int, crit bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Projectiles[id] = &component.Projectile{
		TargetID: target,
		Speed:    config.ProjectileSpeed,
		Damage:   damage,
		Crit:     crit,
	}
	return id
}

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 400, 0, 100)
	projID := addProjectile(ecs, 0, 0, target, 10, false)

	ps.Update(0.1) // шаг 42 вправо
	assert.InDelta(t, 42.0, ecs.Positions[projID].X, 1e-9)
	assert.InDelta(t, 0.0, ecs.Positions[projID].Y, 1e-9)

	// Цель ушла вбок: снаряд доворачивает, а не летит по старому вектору
	ecs.Positions[target].X = 42
	ecs.Positions[target].Y = 300
	ps.Update(0.1)
	assert.InDelta(t, 42.0, ecs.Positions[projID].X, 1e-9)
	assert.InDelta(t, 42.0, ecs.Positions[projID].Y, 1e-9)
}

func TestProjectileHitsWithinStep(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 30, 0, 100)
	addProjectile(ecs, 0, 0, target, 25, false)

	ps.Update(0.1) // шаг 42 >= дистанции 30

	assert.Empty(t, ecs.Projectiles, "снаряд одноразовый")
	assert.Equal(t, 75, ecs.Healths[target].Value)
}

func TestProjectileHitsWithinHitRadius(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 10, 0, 100)
	addProjectile(ecs, 0, 0, target, 25, false)

	// Шаг крошечный, но дистанция 10 <= порога попадания
	ps.Update(0.001)

	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 75, ecs.Healths[target].Value)
}

func TestProjectileExpiresWhenTargetGone(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 400, 0, 100)
	projID := addProjectile(ecs, 0, 0, target, 10, false)

	delete(ecs.Positions, target)
	ps.Update(0.1)

	assert.NotContains(t, ecs.Projectiles, projID)
	assert.NotContains(t, ecs.Positions, projID)
}

func TestProjectileDamageClampsAtZero(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 5, 0, 10)
	addProjectile(ecs, 0, 0, target, 9999, false)

	ps.Update(0.1)
	assert.Equal(t, 0, ecs.Healths[target].Value)
}

func TestProjectileCritSpawnsFloatingDamage(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 5, 0, 100)
	addProjectile(ecs, 0, 0, target, 16, true)

	ps.Update(0.1)

	require.Len(t, ecs.FloatingTexts, 1)
	for _, text := range ecs.FloatingTexts {
		assert.Equal(t, "16!", text.Value)
	}
}

func TestEnemyDamageFlashOnHit(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs)

	target := addEnemy(ecs, 5, 0, 100)
	addProjectile(ecs, 0, 0, target, 10, false)

	ps.Update(0.1)

	flash, ok := ecs.DamageFlashes[target]
	require.True(t, ok)
	assert.Equal(t, config.DamageFlashDuration, flash.Duration)
}
