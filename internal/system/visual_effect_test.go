// internal/system/visual_effect_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/entity"
)

func TestVisualEffectExpiresDamageFlash(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.DamageFlashes[id] = &component.DamageFlash{Duration: 0.1}

	vs.Update(0.05)
	assert.Contains(t, ecs.DamageFlashes, id)

	vs.Update(0.06)
	assert.NotContains(t, ecs.DamageFlashes, id)
}

func TestVisualEffectMovesAndExpiresFloatingText(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 10, Y: 100}
	ecs.FloatingTexts[id] = &component.FloatingText{Value: "+5", Duration: 0.5, RiseSpeed: 40}

	vs.Update(0.25)
	require.Contains(t, ecs.FloatingTexts, id)
	assert.InDelta(t, 90, ecs.Positions[id].Y, 1e-9)

	vs.Update(0.3)
	assert.NotContains(t, ecs.FloatingTexts, id)
	assert.NotContains(t, ecs.Positions, id)
}

func TestVisualEffectExpiresShockwave(t *testing.T) {
	ecs := entity.NewECS()
	vs := NewVisualEffectSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 600, Y: 450}
	ecs.Shockwaves[id] = &component.Shockwave{MaxRadius: 780, Duration: 0.55}

	vs.Update(0.3)
	require.Contains(t, ecs.Shockwaves, id)
	assert.InDelta(t, 0.3, ecs.Shockwaves[id].Timer, 1e-9)

	vs.Update(0.3)
	assert.NotContains(t, ecs.Shockwaves, id)
	assert.NotContains(t, ecs.Positions, id)
}
