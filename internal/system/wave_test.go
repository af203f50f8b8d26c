// internal/system/wave_test.go
package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
	"merge-defense/internal/types"
	"merge-defense/internal/utils"
)

func newWaveFixture(seed int64) (*entity.ECS, *event.Dispatcher, *WaveSystem) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	ws := NewWaveSystem(ecs, testPath(), dispatcher, utils.NewPRNGService(seed), nopLogger())
	return ecs, dispatcher, ws
}

// drainWave прогоняет спавн до конца волны, возвращает спавны в порядке выхода.
func drainWave(ecs *entity.ECS, ws *WaveSystem, wave *component.Wave, rec *eventRecorder) []event.EnemySpawnedPayload {
	for wave.EnemiesToSpawn > 0 {
		ws.Update(wave.SpawnInterval, wave)
	}
	var spawned []event.EnemySpawnedPayload
	for _, e := range rec.events {
		if e.Type == event.EnemySpawned {
			spawned = append(spawned, e.Data.(event.EnemySpawnedPayload))
		}
	}
	return spawned
}

func TestStartWaveParameters(t *testing.T) {
	tests := []struct {
		wave     int
		enemies  int
		interval float64
		boss     bool
	}{
		{1, 5, 1.2, false},
		{2, 7, 1.15, false},
		{5, 13, 1.0, true},
		{10, 23, 0.75, true},
		{18, 39, 0.35, false},
		{30, 63, 0.35, true},
	}

	_, _, ws := newWaveFixture(1)
	for _, tt := range tests {
		w := ws.StartWave(tt.wave)
		assert.Equal(t, tt.enemies, w.EnemiesToSpawn, "wave %d enemies", tt.wave)
		assert.InDelta(t, tt.interval, w.SpawnInterval, 1e-9, "wave %d interval", tt.wave)
		assert.Equal(t, tt.boss, w.BossQueued, "wave %d boss", tt.wave)
	}
}

func TestWaveSpawnsAllEnemies(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(7)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	wave := ws.StartWave(1)
	spawned := drainWave(ecs, ws, wave, rec)

	require.Len(t, spawned, 5)
	assert.Equal(t, 0, wave.EnemiesToSpawn)
	assert.Len(t, ecs.Enemies, 5)
	assert.Equal(t, 5, ws.ActiveEnemies())

	// Каждый спавн полностью собран и стоит на старте дорожки
	for id := range ecs.Enemies {
		require.Contains(t, ecs.Positions, id)
		require.Contains(t, ecs.Healths, id)
		require.Contains(t, ecs.Velocities, id)
		require.Contains(t, ecs.PathProgress, id)
		assert.Equal(t, 0.0, ecs.Positions[id].X)
		assert.Equal(t, 0.0, ecs.Positions[id].Y)
	}
}

func TestWaveSpawnTiming(t *testing.T) {
	_, dispatcher, ws := newWaveFixture(7)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	wave := ws.StartWave(1)

	// До истечения интервала спавна нет
	ws.Update(wave.SpawnInterval-0.01, wave)
	assert.Equal(t, 0, rec.count(event.EnemySpawned))

	ws.Update(0.01, wave)
	assert.Equal(t, 1, rec.count(event.EnemySpawned))
}

func TestWaveCompletionRequiresFieldClear(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(7)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.WaveCompleted, rec)

	wave := ws.StartWave(1)
	for wave.EnemiesToSpawn > 0 {
		ws.Update(wave.SpawnInterval, wave)
	}

	// Все заспавнены, но ещё на поле: волна не завершена
	ws.Update(0.016, wave)
	assert.Equal(t, 0, rec.count(event.WaveCompleted))

	// Убираем всех, кроме одного
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	for _, id := range ids[:len(ids)-1] {
		dispatcher.Emit(event.EnemyRemoved, id)
	}
	ws.Update(0.016, wave)
	assert.Equal(t, 0, rec.count(event.WaveCompleted))
	assert.Equal(t, 1, ws.ActiveEnemies())

	// Последний ушёл: волна завершена
	dispatcher.Emit(event.EnemyRemoved, ids[len(ids)-1])
	ws.Update(0.016, wave)
	assert.Equal(t, 1, rec.count(event.WaveCompleted))

	done, ok := rec.last(event.WaveCompleted)
	require.True(t, ok)
	assert.Equal(t, event.WavePayload{Number: 1}, done.Data)
}

func TestBossSpawnsLastOnFifthWave(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(99)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	wave := ws.StartWave(5)
	spawned := drainWave(ecs, ws, wave, rec)

	require.Len(t, spawned, 13)
	assert.Equal(t, defs.ClassBoss, spawned[len(spawned)-1].Class)
	for _, sp := range spawned[:len(spawned)-1] {
		assert.NotEqual(t, defs.ClassBoss, sp.Class)
	}
}

func TestNoBossOnRegularWave(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(99)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	wave := ws.StartWave(3)
	spawned := drainWave(ecs, ws, wave, rec)

	require.Len(t, spawned, 9)
	for _, sp := range spawned {
		assert.NotEqual(t, defs.ClassBoss, sp.Class)
		assert.Contains(t, defs.EnemyClasses, sp.Class)
	}
}

func TestWaveClassSelectionDeterministic(t *testing.T) {
	run := func(seed int64) []defs.EnemyClass {
		ecs, dispatcher, ws := newWaveFixture(seed)
		rec := &eventRecorder{}
		dispatcher.Subscribe(event.EnemySpawned, rec)
		wave := ws.StartWave(4)
		spawned := drainWave(ecs, ws, wave, rec)
		classes := make([]defs.EnemyClass, len(spawned))
		for i, sp := range spawned {
			classes[i] = sp.Class
		}
		return classes
	}

	assert.Equal(t, run(1234), run(1234))
}

func TestSpawnHealthScalesWithWave(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(7)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	wave := ws.StartWave(3)
	ws.Update(wave.SpawnInterval, wave)

	e, ok := rec.last(event.EnemySpawned)
	require.True(t, ok)
	payload := e.Data.(event.EnemySpawnedPayload)

	base := defs.EnemyClasses[payload.Class].Health
	want := int(math.Round(float64(base) * 1.3)) // 1 + 0.15*(3-1)
	health := ecs.Healths[payload.ID]
	require.NotNil(t, health)
	assert.Equal(t, want, health.Value)
	assert.Equal(t, want, health.Max)
}

func TestSpawnInheritsGlobalFreeze(t *testing.T) {
	ecs, dispatcher, ws := newWaveFixture(7)
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.EnemySpawned, rec)

	ecs.Meters.FreezeTimer = 2.5
	wave := ws.StartWave(1)
	ws.Update(wave.SpawnInterval, wave)

	e, ok := rec.last(event.EnemySpawned)
	require.True(t, ok)
	payload := e.Data.(event.EnemySpawnedPayload)

	frozen, ok := ecs.FrozenEffects[payload.ID]
	require.True(t, ok, "new spawn must be frozen while the global freeze is active")
	assert.InDelta(t, 2.5, frozen.Timer, 1e-9)
}
