// internal/app/game_test.go
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merge-defense/internal/component"
	"merge-defense/internal/defs"
	"merge-defense/internal/event"
	"merge-defense/pkg/grid"
)

// testLevel вставляет короткий тестовый уровень в библиотеку и
// возвращает его номер. Дорожка проходит прямо над полем защитников.
func testLevel(t *testing.T, waves, lives int) int {
	t.Helper()
	const id = 99
	defs.LevelLibrary[id] = defs.LevelDefinition{
		Level: id, Name: "Proving Grounds", Waves: waves, Lives: lives, StartingCoins: 100,
		Waypoints: []grid.Point{{X: 348, Y: 460}, {X: 852, Y: 460}},
	}
	t.Cleanup(func() { delete(defs.LevelLibrary, id) })
	return id
}

// runUntil крутит симуляцию, пока не выполнится условие или не выйдет бюджет.
func runUntil(g *Game, maxFrames int, done func() bool) bool {
	for i := 0; i < maxFrames; i++ {
		if done() {
			return true
		}
		g.Update(0.05)
	}
	return done()
}

func TestStartLevelInitialState(t *testing.T) {
	g := newTestGame(0, 0)
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.WaveStarted, rec)

	require.NoError(t, g.StartLevel(1))

	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.Level())
	assert.Equal(t, "Outskirts", g.LevelName())
	assert.Equal(t, 20, g.Lives())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, int64(100), g.Wallet.Coins())
	assert.Equal(t, 1, g.CurrentWave())
	assert.Equal(t, 10, g.LevelWaves())
	assert.Equal(t, 1, rec.count(event.WaveStarted))

	require.NotNil(t, g.ECS.Wave)
	assert.Equal(t, 5, g.ECS.Wave.EnemiesToSpawn)
}

func TestStartLevelUnknown(t *testing.T) {
	g := newTestGame(0, 0)
	err := g.StartLevel(42)
	require.Error(t, err)
	assert.Equal(t, component.PhaseIdle, g.Phase())
}

func TestUpdateIsNoopBeforeLevelStart(t *testing.T) {
	g := newTestGame(0, 0)

	for i := 0; i < 100; i++ {
		g.Update(0.05)
	}
	assert.Empty(t, g.ECS.Enemies)
	assert.Equal(t, component.PhaseIdle, g.Phase())
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(1))

	g.SetPaused(true)
	require.True(t, g.IsPaused())

	before := g.GetGameTime()
	for i := 0; i < 100; i++ {
		g.Update(0.05)
	}
	assert.Equal(t, before, g.GetGameTime())
	assert.Empty(t, g.ECS.Enemies)

	// Снятие паузы продолжает с того же места
	g.SetPaused(false)
	g.Update(0.05)
	assert.Greater(t, g.GetGameTime(), before)
}

func TestSetSpeedScalesTime(t *testing.T) {
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(1))

	g.SetSpeed(2)
	g.Update(0.05)
	assert.InDelta(t, 0.1, g.GetGameTime(), 1e-9)

	// Неподдерживаемый множитель игнорируется
	g.SetSpeed(3)
	assert.Equal(t, 2.0, g.SpeedMultiplier)

	g.SetSpeed(1)
	assert.Equal(t, 1.0, g.SpeedMultiplier)
}

func TestCycleSpeed(t *testing.T) {
	g := newTestGame(0, 0)
	assert.Equal(t, 2.0, g.CycleSpeed())
	assert.Equal(t, 4.0, g.CycleSpeed())
	assert.Equal(t, 1.0, g.CycleSpeed())
}

func TestUpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(1))

	// Скачок кадра не телепортирует симуляцию
	g.Update(5.0)
	assert.InDelta(t, 0.06, g.GetGameTime(), 1e-9)
}

func TestLeakCostsLife(t *testing.T) {
	level := testLevel(t, 3, 10)
	g := newTestGame(0, 0)
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.EnemyLeaked, rec)
	g.EventDispatcher.Subscribe(event.EnemyRemoved, rec)
	require.NoError(t, g.StartLevel(level))

	// Ждём первой утечки: защитников нет, враги доходят до конца
	ok := runUntil(g, 10000, func() bool { return rec.count(event.EnemyLeaked) > 0 })
	require.True(t, ok)

	leaks := rec.count(event.EnemyLeaked)
	assert.Equal(t, 10-leaks, g.Lives())
	assert.GreaterOrEqual(t, rec.count(event.EnemyRemoved), leaks)

	e, _ := rec.last(event.EnemyLeaked)
	payload := e.Data.(event.EnemyLeakedPayload)
	assert.Equal(t, g.Lives(), payload.LivesLeft)
}

func TestGameOverExactlyOnce(t *testing.T) {
	level := testLevel(t, 5, 2)
	g := newTestGame(0, 0)
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.GameOver, rec)
	require.NoError(t, g.StartLevel(level))
	g.SetSpeed(4)

	ok := runUntil(g, 20000, func() bool { return g.Phase() == component.PhaseGameOver })
	require.True(t, ok)

	assert.Equal(t, 0, g.Lives())
	assert.Equal(t, 1, rec.count(event.GameOver))

	// После game over симуляция стоит: враги не двигаются и не спавнятся
	snapshot := len(g.ECS.Enemies)
	for i := 0; i < 200; i++ {
		g.Update(0.05)
	}
	assert.Equal(t, snapshot, len(g.ECS.Enemies))
	assert.Equal(t, 1, rec.count(event.GameOver))
	assert.Equal(t, 0, g.Lives())
}

func TestWaveCompletionAdvancesThroughIntermission(t *testing.T) {
	level := testLevel(t, 3, 20)
	g := newTestGame(0, 0)
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.WaveCompleted, rec)
	g.EventDispatcher.Subscribe(event.WaveStarted, rec)
	require.NoError(t, g.StartLevel(level))
	g.SetSpeed(4)

	// Первая волна утекает целиком, уровень переживает это
	ok := runUntil(g, 20000, func() bool { return g.Phase() == component.PhaseIntermission })
	require.True(t, ok)
	assert.Equal(t, 1, g.WavesCleared())
	assert.Equal(t, 1, rec.count(event.WaveCompleted))

	// Интермиссия тикает и сама запускает вторую волну
	ok = runUntil(g, 1000, func() bool { return g.Phase() == component.PhasePlaying })
	require.True(t, ok)
	assert.Equal(t, 2, g.CurrentWave())
	assert.Equal(t, 2, rec.count(event.WaveStarted))
}

func TestSkipIntermissionStartsWaveEarly(t *testing.T) {
	level := testLevel(t, 3, 20)
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(level))
	g.SetSpeed(4)

	// Вне передышки пропуск ничего не делает
	g.SkipIntermission()
	assert.Equal(t, 1, g.CurrentWave())

	ok := runUntil(g, 20000, func() bool { return g.Phase() == component.PhaseIntermission })
	require.True(t, ok)
	assert.Greater(t, g.IntermissionRemaining(), 0.0)

	g.SkipIntermission()
	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 2, g.CurrentWave())
	assert.Equal(t, 0.0, g.IntermissionRemaining())
}

func TestLevelCompleteWithDefenders(t *testing.T) {
	level := testLevel(t, 1, 5)
	g := newTestGame(0, 0)
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.LevelCompleted, rec)
	require.NoError(t, g.StartLevel(level))

	// Чемпионы ваншотят всё на первой волне
	for x := 0; x < 5; x++ {
		_, result := g.TryPlaceDefender(x, 0, 5)
		require.Equal(t, PlaceOK, result)
	}
	g.SetSpeed(4)

	ok := runUntil(g, 20000, func() bool { return g.Phase() == component.PhaseLevelComplete })
	require.True(t, ok)

	require.Equal(t, 1, rec.count(event.LevelCompleted))
	e, _ := rec.last(event.LevelCompleted)
	payload := e.Data.(event.LevelCompletedPayload)
	assert.Equal(t, level, payload.Level)
	assert.Equal(t, 3, payload.Stars, "без утечек положены три звезды")
	assert.Equal(t, 5, g.Lives())

	// Уровень пройден, дальше ничего не происходит
	g.Update(0.05)
	assert.Equal(t, component.PhaseLevelComplete, g.Phase())
}

func TestRestartLevelResetsEverything(t *testing.T) {
	g := newTestGame(0, 7)
	require.NoError(t, g.StartLevel(1))

	// Натуральный прогресс: защитники, потраченные монеты, грязные шкалы
	g.SpawnDefender()
	g.SpawnDefender()
	g.ECS.Meters.Combo = 9
	g.ECS.Meters.Fever = 55
	g.ECS.Session.Score = 1234
	g.ECS.Session.Lives = 3
	for i := 0; i < 100; i++ {
		g.Update(0.05)
	}

	g.RestartLevel()

	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 1, g.CurrentWave())
	assert.Equal(t, 20, g.Lives())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.ComboCount())
	fever, active := g.FeverState()
	assert.Equal(t, 0.0, fever)
	assert.False(t, active)
	assert.Equal(t, int64(100), g.Wallet.Coins())
	assert.GreaterOrEqual(t, g.Wallet.Gems(), 7, "кристаллы переживают рестарт")
	assert.Empty(t, g.ECS.Enemies)
	assert.Empty(t, g.ECS.Projectiles)
	assert.Empty(t, g.ECS.Defenders)
	assert.Len(t, g.Grid.FreeCells(), 28)
}

func TestRestartBeforeStartIsNoop(t *testing.T) {
	g := newTestGame(0, 0)
	g.RestartLevel()
	assert.Equal(t, component.PhaseIdle, g.Phase())
}

func TestAdvanceLevel(t *testing.T) {
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(1))
	require.NoError(t, g.AdvanceLevel())

	assert.Equal(t, 2, g.Level())
	assert.Equal(t, 18, g.Lives())
	assert.Equal(t, int64(120), g.Wallet.Coins())

	require.NoError(t, g.AdvanceLevel())
	assert.Equal(t, 3, g.Level())

	// Дальше уровней нет
	err := g.AdvanceLevel()
	require.Error(t, err)
	assert.Equal(t, 3, g.Level())
}

func TestNoDefendersRunEndsInGameOver(t *testing.T) {
	// Уровень 1: жизней 20, волны теряют 5, 7, 9 врагов. Конец на третьей.
	g := newTestGame(0, 0)
	require.NoError(t, g.StartLevel(1))
	g.SetSpeed(4)

	ok := runUntil(g, 60000, func() bool { return g.Phase() == component.PhaseGameOver })
	require.True(t, ok)

	assert.Equal(t, 0, g.Lives())
	assert.Equal(t, 3, g.CurrentWave())
	assert.Equal(t, 2, g.WavesCleared())
}
