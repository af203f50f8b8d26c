// internal/system/wave.go
package system

import (
	"math"

	"github.com/rs/zerolog"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
	"merge-defense/internal/utils"
	"merge-defense/pkg/grid"
)

// WaveSystem спавнит врагов активной волны и объявляет её завершение.
// Волна завершена только когда заспавнены все и на поле никого не осталось.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *grid.Path
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	log             zerolog.Logger
	activeEnemies   int
}

func NewWaveSystem(ecs *entity.ECS, path *grid.Path, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, log zerolog.Logger) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		path:            path,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		log:             log,
		activeEnemies:   0,
	}
	eventDispatcher.Subscribe(event.EnemyRemoved, ws)
	return ws
}

func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	if wave.EnemiesToSpawn > 0 {
		wave.SpawnTimer += deltaTime
		if wave.SpawnTimer >= wave.SpawnInterval {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = 0
		}
	} else if wave.EnemiesToSpawn == 0 && s.activeEnemies == 0 {
		s.eventDispatcher.Emit(event.WaveCompleted, event.WavePayload{Number: wave.Number})
	}
}

// SetPath подменяет дорожку (смена уровня).
func (s *WaveSystem) SetPath(path *grid.Path) {
	s.path = path
}

func (s *WaveSystem) ResetActiveEnemies() {
	s.activeEnemies = 0
}

// ActiveEnemies — сколько врагов волны сейчас на поле.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

// StartWave собирает синглтон новой волны. Босс ставится в очередь
// последним спавном каждой пятой волны.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	return &component.Wave{
		Number:         waveNumber,
		EnemiesToSpawn: config.EnemiesForWave(waveNumber),
		SpawnTimer:     0,
		SpawnInterval:  config.SpawnIntervalForWave(waveNumber),
		BossQueued:     waveNumber%config.BossWaveEvery == 0,
	}
}

// pickClass выбирает класс очередного врага: босс закрывает волну,
// элита катается отдельным шансом, остальное — взвешенный выбор.
func (s *WaveSystem) pickClass(wave *component.Wave) defs.EnemyClass {
	if wave.BossQueued && wave.EnemiesToSpawn == 1 {
		return defs.ClassBoss
	}
	if s.rng.Chance(config.EliteChanceForWave(wave.Number)) {
		return defs.ClassElite
	}
	return s.rng.ChooseClass(defs.DefaultClassWeights)
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	class := s.pickClass(wave)
	def, ok := defs.EnemyClasses[class]
	if !ok {
		s.log.Error().Str("class", string(class)).Msg("Enemy definition not found")
		return
	}

	// Здоровье растёт с номером волны
	health := int(math.Round(float64(def.Health) * (1 + config.HealthGrowthPerWave*float64(wave.Number-1))))

	id := s.ecs.NewEntity()
	start := s.path.Start()
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.PathProgress[id] = &component.PathProgress{Dist: 0}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		Class:      class,
		Reward:     def.Reward,
		ScoreValue: def.ScoreValue,
		GemBonus:   def.GemBonus,
	}

	// Глобальная заморозка действует и на новые спавны
	if s.ecs.Meters.FreezeTimer > 0 {
		s.ecs.FrozenEffects[id] = &component.FrozenEffect{Timer: s.ecs.Meters.FreezeTimer}
	}

	s.activeEnemies++
	s.eventDispatcher.Emit(event.EnemySpawned, event.EnemySpawnedPayload{
		ID:    id,
		Class: class,
		Wave:  wave.Number,
	})
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyRemoved {
		s.activeEnemies--
	}
}
