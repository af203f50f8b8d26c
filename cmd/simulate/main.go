// cmd/simulate/main.go
//
// Headless-прогон уровня без окна: бот покупает и сливает защитников,
// жмёт ульту и докладывает итог. Удобно для проверки баланса волн.
package main

import (
	stdlog "log"

	"merge-defense/internal/app"
	"merge-defense/internal/component"
	"merge-defense/internal/config"
	"merge-defense/internal/defs"
	"merge-defense/internal/economy"
	"merge-defense/internal/logging"
	"merge-defense/internal/meta"
	"merge-defense/internal/save"
	"merge-defense/internal/telemetry"
	"merge-defense/internal/utils"
	"merge-defense/pkg/grid"

	"github.com/spf13/viper"
)

const (
	stepSeconds   = 1.0 / 30.0
	maxSimSeconds = 1800.0
)

func main() {
	if err := config.Load("."); err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log, closeLogs, err := logging.Setup()
	if err != nil {
		stdlog.Fatalf("logging: %v", err)
	}
	defer closeLogs()

	// Прогон не должен трогать профиль игрока
	store := save.NewMemoryStore()
	profile, err := store.LoadDefault()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create profile")
	}

	wallet := economy.NewWallet(0, 0)
	seed := viper.GetInt64("sim.seed")
	game := app.NewGame(seed, wallet, log)
	tracker := meta.NewTracker(profile, store, wallet, game.EventDispatcher, utils.NewPRNGService(seed), log)
	recorder := telemetry.NewRecorder(game.EventDispatcher, log)
	defer recorder.Close()

	level := viper.GetInt("sim.level")
	if err := game.StartLevel(level); err != nil {
		log.Fatal().Err(err).Int("level", level).Msg("Failed to start level")
	}
	log.Info().Int64("seed", seed).Int("level", level).Msg("Simulation started")

	elapsed := 0.0
	for elapsed < maxSimSeconds {
		phase := game.Phase()
		if phase == component.PhaseLevelComplete || phase == component.PhaseGameOver {
			break
		}
		if phase == component.PhaseIntermission {
			game.SkipIntermission()
		}

		autoPlay(game)
		game.Update(stepSeconds)
		elapsed += stepSeconds
	}

	if err := tracker.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to flush profile")
	}

	log.Info().
		Str("result", game.Phase().String()).
		Int("wavesCleared", game.WavesCleared()).
		Int("livesLeft", game.Lives()).
		Int("score", game.Score()).
		Int64("kills", tracker.Profile().Counter(defs.CounterKills)).
		Int64("merges", tracker.Profile().Counter(defs.CounterMerges)).
		Int64("coins", wallet.Coins()).
		Float64("simSeconds", elapsed).
		Msg("Simulation finished")
}

// autoPlay — жадная стратегия: держим резерв монет, покупаем, сливаем
// равные тиры сверху вниз, ульту жмём как только готова.
func autoPlay(game *app.Game) {
	if _, ready := game.UltimateState(); ready {
		game.UseUltimate()
	}

	for game.Wallet.Coins() >= config.DefenderCost*2 && game.CanSpawnDefender() {
		if _, ok := game.SpawnDefender(); !ok {
			break
		}
	}

	if pair, ok := findMergePair(game); ok {
		game.TryMerge(pair[0], pair[1])
	}
}

// findMergePair ищет пару защитников одинакового тира, начиная со старших.
func findMergePair(game *app.Game) ([2]grid.Cell, bool) {
	byTier := make(map[int][]grid.Cell)
	for cell, id := range game.Grid.OccupiedCells() {
		if defender, ok := game.ECS.Defenders[id]; ok {
			byTier[defender.Tier] = append(byTier[defender.Tier], cell)
		}
	}
	for tier := config.MaxTier - 1; tier >= 1; tier-- {
		cells := byTier[tier]
		if len(cells) >= 2 {
			return [2]grid.Cell{cells[0], cells[1]}, true
		}
	}
	return [2]grid.Cell{}, false
}
