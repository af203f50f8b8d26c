// internal/system/status_effect_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
)

func TestFrozenEffectExpires(t *testing.T) {
	ecs := entity.NewECS()
	ses := NewStatusEffectSystem(ecs, event.NewDispatcher())

	id := addEnemy(ecs, 0, 0, 30)
	ecs.FrozenEffects[id] = &component.FrozenEffect{Timer: 0.5}

	ses.Update(0.3)
	assert.Contains(t, ecs.FrozenEffects, id)

	ses.Update(0.3)
	assert.NotContains(t, ecs.FrozenEffects, id)
}

func TestGlobalFreezeExpiryEmitsEvent(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.PowerUpExpired, rec)
	ses := NewStatusEffectSystem(ecs, dispatcher)

	ecs.Meters.FreezeTimer = 1.0

	ses.Update(0.5)
	assert.Equal(t, 0, rec.count(event.PowerUpExpired))

	ses.Update(0.6)
	require.Equal(t, 1, rec.count(event.PowerUpExpired))
	assert.Equal(t, 0.0, ecs.Meters.FreezeTimer)

	e, _ := rec.last(event.PowerUpExpired)
	assert.Equal(t, event.PowerUpPayload{ID: defs.PowerUpFreeze}, e.Data)

	// Повторных событий нет
	ses.Update(1.0)
	assert.Equal(t, 1, rec.count(event.PowerUpExpired))
}

func TestDoubleCoinsExpiryEmitsEvent(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.PowerUpExpired, rec)
	ses := NewStatusEffectSystem(ecs, dispatcher)

	ecs.Meters.DoubleCoinsTimer = 2.0
	ses.Update(2.5)

	require.Equal(t, 1, rec.count(event.PowerUpExpired))
	e, _ := rec.last(event.PowerUpExpired)
	assert.Equal(t, event.PowerUpPayload{ID: defs.PowerUpDoubleCoins}, e.Data)
	assert.Equal(t, 0.0, ecs.Meters.DoubleCoinsTimer)
}
