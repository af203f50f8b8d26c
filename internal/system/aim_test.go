// internal/system/aim_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"merge-defense/internal/component"
	"merge-defense/internal/entity"
	"merge-defense/internal/types"
)

// addTurret навешивает ствол на защитника. Начальный угол задаётся явно,
// чтобы проверки поворота не зависели от значения по умолчанию.
func addTurret(ecs *entity.ECS, id types.EntityID, angle, turnSpeed float64) *component.Turret {
	turret := &component.Turret{CurrentAngle: angle, TargetAngle: angle, TurnSpeed: turnSpeed}
	ecs.Turrets[id] = turret
	return turret
}

func TestAimSnapsToTargetWhenFastEnough(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAimSystem(ecs)

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, -math.Pi/2, 100)
	turret.TargetID = addEnemy(ecs, 100, 0, 30)

	as.Update(1.0)

	// Враг строго справа, запас скорости позволяет довернуть за один тик
	assert.InDelta(t, 0, turret.CurrentAngle, 1e-9)
}

func TestAimTurnSpeedLimitsStep(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAimSystem(ecs)

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, 0, 1.0)
	turret.TargetID = addEnemy(ecs, 0, 100, 30)

	as.Update(0.1)

	assert.InDelta(t, math.Pi/2, turret.TargetAngle, 1e-9)
	assert.InDelta(t, 0.1, turret.CurrentAngle, 1e-9)
}

func TestAimTakesShortestArc(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAimSystem(ecs)

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, 3.0, 1.0)
	// Цель под углом -3.0: короткая дуга идёт через пи, а не через ноль
	turret.TargetID = addEnemy(ecs, math.Cos(-3.0)*100, math.Sin(-3.0)*100, 30)

	as.Update(0.05)

	assert.InDelta(t, 3.05, turret.CurrentAngle, 1e-6)
}

func TestAimDropsMissingTarget(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAimSystem(ecs)

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, 1.2, 5.0)
	turret.TargetID = 999

	as.Update(0.016)

	assert.Equal(t, types.EntityID(0), turret.TargetID)
	// Ствол остаётся в последнем положении
	assert.InDelta(t, 1.2, turret.CurrentAngle, 1e-9)
}

func TestAimDropsLeakedTarget(t *testing.T) {
	ecs := entity.NewECS()
	as := NewAimSystem(ecs)

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, 0, 5.0)
	e := addEnemy(ecs, 100, 0, 30)
	ecs.Enemies[e].ReachedEnd = true
	turret.TargetID = e

	as.Update(0.016)

	assert.Equal(t, types.EntityID(0), turret.TargetID)
}

func TestCombatAssignsTurretTarget(t *testing.T) {
	ecs := entity.NewECS()
	cs := NewCombatSystem(ecs, testRng(), nopLogger())

	d := addDefender(ecs, 0, 0, 1)
	turret := addTurret(ecs, d, -math.Pi/2, 9)
	e := addEnemy(ecs, 50, 0, 30)

	cs.Update(0.016)

	assert.Equal(t, e, turret.TargetID)
}
