// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/economy"
	"merge-defense/internal/entity"
	"merge-defense/internal/event"
	"merge-defense/internal/system"
	"merge-defense/internal/types"
	"merge-defense/internal/utils"
	"merge-defense/pkg/grid"
)

// Game holds the main game state and logic.
type Game struct {
	Grid               *grid.Grid
	Path               *grid.Path
	ECS                *entity.ECS
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	CombatSystem       *system.CombatSystem
	AimSystem          *system.AimSystem
	ProjectileSystem   *system.ProjectileSystem
	StatusEffectSystem *system.StatusEffectSystem
	EconomySystem      *system.EconomySystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Wallet             economy.Wallet
	Rng                *utils.PRNGService
	SpeedMultiplier    float64

	log zerolog.Logger

	// Game state
	gameTime float64
	isPaused bool
	levelDef defs.LevelDefinition
}

// NewGame собирает симуляцию целиком: ECS, поле, системы и подписки.
// Уровень при этом ещё не запущен, сессия в фазе idle.
func NewGame(seed int64, wallet economy.Wallet, log zerolog.Logger) *Game {
	if wallet == nil {
		wallet = economy.NewWallet(0, 0)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Grid:            grid.NewGrid(config.BoardCols, config.BoardRows, config.CellSize, config.BoardOffsetX, config.BoardOffsetY),
		Path:            nil,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Wallet:          wallet,
		Rng:             utils.NewPRNGService(seed),
		SpeedMultiplier: 1.0,
		log:             log,
	}
	g.WaveSystem = system.NewWaveSystem(ecs, nil, eventDispatcher, g.Rng, log)
	g.MovementSystem = system.NewMovementSystem(ecs, nil)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Rng, log)
	g.AimSystem = system.NewAimSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, eventDispatcher)
	g.EconomySystem = system.NewEconomySystem(ecs, wallet, eventDispatcher, log)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.WaveCompleted, listener)

	return g
}

// GameEventListener обрабатывает события, меняющие фазу сессии.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.WaveCompleted {
		return
	}
	g := l.game
	s := g.ECS.Session
	if s.Phase != component.PhasePlaying {
		return
	}

	s.WavesCleared++
	completed := 0
	if g.ECS.Wave != nil {
		completed = g.ECS.Wave.Number
	}

	if completed >= g.levelDef.Waves {
		s.Phase = component.PhaseLevelComplete
		stars := defs.Stars(s.Lives, g.levelDef.Lives)
		g.log.Info().Int("level", s.Level).Int("stars", stars).Int("score", s.Score).Msg("Level completed")
		g.EventDispatcher.Emit(event.LevelCompleted, event.LevelCompletedPayload{Level: s.Level, Stars: stars, Score: s.Score})
		return
	}

	s.Phase = component.PhaseIntermission
	s.IntermissionTimer = config.InterWaveDelay
	g.log.Debug().Int("wave", completed).Msg("Wave completed, intermission started")
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := math.Min(deltaTime, config.MaxDeltaTime) * g.SpeedMultiplier
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	switch g.ECS.Session.Phase {
	case component.PhasePlaying:
		g.StatusEffectSystem.Update(dt)
		g.WaveSystem.Update(dt, g.ECS.Wave)
		g.MovementSystem.Update(dt)
		g.CombatSystem.Update(dt)
		g.AimSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.EconomySystem.Update(dt)
		g.cleanupDestroyedEntities()
	case component.PhaseIntermission:
		// Таймеры усилений и шкал живут и между волнами, застрявшие
		// снаряды дотлевают
		g.StatusEffectSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.EconomySystem.Update(dt)
		g.ECS.Session.IntermissionTimer -= dt
		if g.ECS.Session.IntermissionTimer <= 0 {
			g.startNextWave()
		}
	}

	g.VisualEffectSystem.Update(dt)
}

// StartLevel запускает уровень с первой волны. Сбрасывает поле, шкалы
// и кошелёк монет до стартового запаса уровня.
func (g *Game) StartLevel(level int) error {
	def, ok := defs.LevelLibrary[level]
	if !ok {
		return fmt.Errorf("level %d is not defined", level)
	}

	g.levelDef = def
	g.Path = grid.NewPath(def.Waypoints)
	g.WaveSystem.SetPath(g.Path)
	g.MovementSystem.SetPath(g.Path)

	g.ClearEnemies()
	g.ClearProjectiles()
	g.ClearDefenders()
	g.clearVisualEffects()
	*g.ECS.Meters = component.Meters{}

	s := g.ECS.Session
	s.Level = level
	s.Lives = def.Lives
	s.Score = 0
	s.WavesCleared = 0
	s.IntermissionTimer = 0

	// Монеты откатываются к стартовому запасу, кристаллы переживают рестарт
	g.Wallet.SpendCoins(g.Wallet.Coins())
	g.Wallet.AddCoins(def.StartingCoins)

	g.log.Info().Int("level", level).Str("name", def.Name).Int("waves", def.Waves).Msg("Level started")
	g.beginWave(1)
	return nil
}

// RestartLevel перезапускает текущий уровень с чистого листа.
func (g *Game) RestartLevel() {
	if g.ECS.Session.Level == 0 {
		g.log.Warn().Msg("Restart requested before any level was started")
		return
	}
	_ = g.StartLevel(g.ECS.Session.Level)
}

// AdvanceLevel переходит к следующему уровню, если он определён.
func (g *Game) AdvanceLevel() error {
	next := g.ECS.Session.Level + 1
	if _, ok := defs.LevelLibrary[next]; !ok {
		return fmt.Errorf("level %d is not defined", next)
	}
	return g.StartLevel(next)
}

func (g *Game) beginWave(number int) {
	g.ECS.Wave = g.WaveSystem.StartWave(number)
	g.WaveSystem.ResetActiveEnemies()
	g.ECS.Session.Phase = component.PhasePlaying
	g.EventDispatcher.Emit(event.WaveStarted, event.WavePayload{Number: number})
}

func (g *Game) startNextWave() {
	next := 1
	if g.ECS.Wave != nil {
		next = g.ECS.Wave.Number + 1
	}
	g.beginWave(next)
}

// cleanupDestroyedEntities разбирает смерти и утечки в конце кадра.
// Убитый в том же кадре, что и дошедший, считается убитым.
func (g *Game) cleanupDestroyedEntities() {
	for id, enemy := range g.ECS.Enemies {
		health, hasHealth := g.ECS.Healths[id]
		killed := hasHealth && health.Value <= 0
		leaked := enemy.ReachedEnd

		if !killed && !leaked {
			continue
		}

		if killed {
			payload := event.EnemyKilledPayload{
				ID:         id,
				Class:      enemy.Class,
				Reward:     enemy.Reward,
				ScoreValue: enemy.ScoreValue,
				GemBonus:   enemy.GemBonus,
			}
			if pos, ok := g.ECS.Positions[id]; ok {
				payload.X = pos.X
				payload.Y = pos.Y
			}
			g.EventDispatcher.Emit(event.EnemyKilled, payload)
		} else {
			g.applyLeak(id)
		}

		g.removeEnemyEntity(id)
		g.EventDispatcher.Emit(event.EnemyRemoved, id)
	}
}

// applyLeak списывает жизнь за дошедшего врага. После перехода в GameOver
// дальнейшие утечки ничего не меняют.
func (g *Game) applyLeak(id types.EntityID) {
	s := g.ECS.Session
	if s.Phase == component.PhaseGameOver {
		return
	}

	s.Lives -= config.LeakDamage
	if s.Lives < 0 {
		s.Lives = 0
	}
	g.EventDispatcher.Emit(event.EnemyLeaked, event.EnemyLeakedPayload{ID: id, LivesLeft: s.Lives})

	if s.Lives <= 0 {
		s.Phase = component.PhaseGameOver
		wave := 0
		if g.ECS.Wave != nil {
			wave = g.ECS.Wave.Number
		}
		g.log.Info().Int("level", s.Level).Int("wave", wave).Int("score", s.Score).Msg("Game over")
		g.EventDispatcher.Emit(event.GameOver, event.GameOverPayload{Level: s.Level, Wave: wave, Score: s.Score})
	}
}

func (g *Game) removeEnemyEntity(id types.EntityID) {
	delete(g.ECS.Positions, id)
	delete(g.ECS.Velocities, id)
	delete(g.ECS.PathProgress, id)
	delete(g.ECS.Healths, id)
	delete(g.ECS.Renderables, id)
	delete(g.ECS.FrozenEffects, id)
	delete(g.ECS.DamageFlashes, id)
	delete(g.ECS.Enemies, id)
}

// --- Public Accessors & Mutators ---

func (g *Game) ClearEnemies() {
	for id := range g.ECS.Enemies {
		g.removeEnemyEntity(id)
	}
}

func (g *Game) ClearProjectiles() {
	for id := range g.ECS.Projectiles {
		delete(g.ECS.Positions, id)
		delete(g.ECS.Renderables, id)
		delete(g.ECS.Projectiles, id)
	}
}

func (g *Game) ClearDefenders() {
	for id := range g.ECS.Defenders {
		delete(g.ECS.Positions, id)
		delete(g.ECS.Renderables, id)
		delete(g.ECS.Combats, id)
		delete(g.ECS.Turrets, id)
		delete(g.ECS.Defenders, id)
	}
	g.Grid.Clear()
}

func (g *Game) clearVisualEffects() {
	for id := range g.ECS.FloatingTexts {
		delete(g.ECS.Positions, id)
		delete(g.ECS.FloatingTexts, id)
	}
	for id := range g.ECS.DamageFlashes {
		delete(g.ECS.DamageFlashes, id)
	}
	for id := range g.ECS.Shockwaves {
		delete(g.ECS.Positions, id)
		delete(g.ECS.Shockwaves, id)
	}
}

// SetPaused останавливает или возобновляет симуляцию. Состояние при
// паузе не разрушается.
func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// SetSpeed устанавливает множитель скорости. Допустимы x1, x2 и x4.
func (g *Game) SetSpeed(multiplier float64) {
	switch multiplier {
	case 1, 2, 4:
		g.SpeedMultiplier = multiplier
	default:
		g.log.Warn().Float64("multiplier", multiplier).Msg("Unsupported speed multiplier")
	}
}

// CycleSpeed переключает скорость по кругу x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() float64 {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
	return g.SpeedMultiplier
}

// SkipIntermission досрочно запускает следующую волну из паузы между
// волнами. В остальных фазах ничего не делает.
func (g *Game) SkipIntermission() {
	if g.ECS.Session.Phase != component.PhaseIntermission {
		return
	}
	g.startNextWave()
}

func (g *Game) Phase() component.Phase {
	return g.ECS.Session.Phase
}

// CurrentWave возвращает номер активной волны (0 до старта уровня).
func (g *Game) CurrentWave() int {
	if g.ECS.Wave == nil {
		return 0
	}
	return g.ECS.Wave.Number
}

func (g *Game) Level() int {
	return g.ECS.Session.Level
}

func (g *Game) Lives() int {
	return g.ECS.Session.Lives
}

func (g *Game) Score() int {
	return g.ECS.Session.Score
}

func (g *Game) WavesCleared() int {
	return g.ECS.Session.WavesCleared
}

// IntermissionRemaining — секунды до старта следующей волны (0 вне
// фазы передышки).
func (g *Game) IntermissionRemaining() float64 {
	if g.ECS.Session.Phase != component.PhaseIntermission {
		return 0
	}
	return g.ECS.Session.IntermissionTimer
}

func (g *Game) LevelWaves() int {
	return g.levelDef.Waves
}

func (g *Game) LevelName() string {
	return g.levelDef.Name
}

func (g *Game) LevelLives() int {
	return g.levelDef.Lives
}

func (g *Game) ComboCount() int {
	return g.ECS.Meters.Combo
}

// FeverState возвращает заполнение шкалы фивера и признак активности.
func (g *Game) FeverState() (float64, bool) {
	return g.ECS.Meters.Fever, g.ECS.Meters.FeverActive
}

// UltimateState возвращает заряд ульты и признак готовности.
func (g *Game) UltimateState() (float64, bool) {
	return g.ECS.Meters.UltimateCharge, g.ECS.Meters.UltimateReady
}

func (g *Game) StreakCount() int {
	return g.ECS.Meters.Streak
}

// CoinBalance и GemBalance — ярлыки для виджетов, чтобы те не трогали
// кошелёк напрямую.
func (g *Game) CoinBalance() int64 {
	return g.Wallet.Coins()
}

func (g *Game) GemBalance() int {
	return g.Wallet.Gems()
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
