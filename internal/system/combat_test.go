// internal/system/combat_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
)

func firstProjectile(ecs *entity.ECS) (types.EntityID, *component.Projectile) {
	for id, proj := range ecs.Projectiles {
		return id, proj
	}
	return 0, nil
}

func TestCombatTargetsNearestEnemy(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	addDefender(ecs, 0, 0, 1)
	far := addEnemy(ecs, 200, 0, 30)
	near := addEnemy(ecs, 50, 0, 30)

	cs.Update(0.016)

	require.Len(t, ecs.Projectiles, 1)
	_, proj := firstProjectile(ecs)
	assert.Equal(t, near, proj.TargetID)
	assert.NotEqual(t, far, proj.TargetID)
}

func TestCombatTieBreaksByLowerID(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	addDefender(ecs, 0, 0, 1)
	a := addEnemy(ecs, 100, 0, 30)
	b := addEnemy(ecs, 0, 100, 30) // та же дистанция

	cs.Update(0.016)

	require.Len(t, ecs.Projectiles, 1)
	_, proj := firstProjectile(ecs)
	assert.Equal(t, a, proj.TargetID)
	assert.Less(t, a, b)
}

func TestCombatIgnoresEnemiesOutOfRange(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	addDefender(ecs, 0, 0, 1)
	addEnemy(ecs, defs.DefenderTiers[1].Range+1, 0, 30)

	cs.Update(0.016)
	assert.Empty(t, ecs.Projectiles)
}

func TestCombatIgnoresDeadAndLeaked(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	addDefender(ecs, 0, 0, 1)
	dead := addEnemy(ecs, 40, 0, 30)
	ecs.Healths[dead].Value = 0
	leaked := addEnemy(ecs, 60, 0, 30)
	ecs.Enemies[leaked].ReachedEnd = true
	alive := addEnemy(ecs, 150, 0, 30)

	cs.Update(0.016)

	require.Len(t, ecs.Projectiles, 1)
	_, proj := firstProjectile(ecs)
	assert.Equal(t, alive, proj.TargetID)
}

func TestCombatFireCooldown(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	defID := addDefender(ecs, 0, 0, 1)
	addEnemy(ecs, 50, 0, 1000)

	cs.Update(0.016)
	require.Len(t, ecs.Projectiles, 1)

	fireRate := defs.DefenderTiers[1].FireRate
	assert.InDelta(t, 1.0/fireRate, ecs.Combats[defID].FireCooldown, 1e-9)

	// Кулдаун ещё не вышел: второго выстрела нет
	cs.Update(0.016)
	assert.Len(t, ecs.Projectiles, 1)

	// Выждали полный цикл: выстрел повторяется
	for i := 0; i < 70; i++ {
		cs.Update(0.016)
	}
	assert.Len(t, ecs.Projectiles, 2)
}

func TestCombatDamageMatchesTier(t *testing.T) {
	for tier := 1; tier <= 5; tier++ {
		ecs := entity.NewECS()
		cs := NewCombatSystem(ecs, testRng(), nopLogger())

		addDefender(ecs, 0, 0, tier)
		addEnemy(ecs, 50, 0, 100000)

		cs.Update(0.016)

		require.Len(t, ecs.Projectiles, 1, "tier %d", tier)
		_, proj := firstProjectile(ecs)

		base := defs.DefenderTiers[tier].Damage
		if proj.Crit {
			assert.Equal(t, base*2, proj.Damage, "tier %d crit", tier)
		} else {
			assert.Equal(t, base, proj.Damage, "tier %d", tier)
		}
	}
}

func TestCombatCritRate(t *testing.T) {
	// Тир 5: шанс крита 0.10 + 0.05*5 = 0.35
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	defID := addDefender(ecs, 0, 0, 5)
	addEnemy(ecs, 50, 0, 1<<30)

	const shots = 10000
	crits := 0
	for i := 0; i < shots; i++ {
		ecs.Combats[defID].FireCooldown = 0
		cs.Update(0.001)
		_, proj := firstProjectile(ecs)
		require.NotNil(t, proj)
		if proj.Crit {
			crits++
		}
		for id := range ecs.Projectiles {
			delete(ecs.Projectiles, id)
			delete(ecs.Positions, id)
			delete(ecs.Renderables, id)
		}
	}

	assert.InDelta(t, 0.35, float64(crits)/shots, 0.03)
}
