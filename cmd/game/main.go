// cmd/game/main.go
package main

import (
	stdlog "log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"merge-defense/internal/app"
	"merge-defense/internal/assets"
	"merge-defense/internal/config"
	"merge-defense/internal/economy"
	"merge-defense/internal/logging"
	"merge-defense/internal/meta"
	"merge-defense/internal/save"
	"merge-defense/internal/state"
	"merge-defense/internal/telemetry"
	"merge-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/image/font"
)

// AppGame прокидывает машину состояний в цикл ebiten.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := config.Load("."); err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log, closeLogs, err := logging.Setup()
	if err != nil {
		stdlog.Fatalf("logging: %v", err)
	}
	defer closeLogs()

	go func() {
		log.Info().Err(http.ListenAndServe("localhost:6060", nil)).Msg("pprof listener stopped")
	}()

	store, err := save.NewSqliteStore(viper.GetString("save.path"), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open profile store")
	}
	defer store.Close()

	profile, err := loadProfile(store)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load profile")
	}
	log.Info().Str("profileId", profile.ProfileID).Int64("coins", profile.Coins).
		Int("gems", profile.Gems).Msg("Profile loaded")

	wallet := economy.NewWallet(profile.Coins, profile.Gems)
	game := app.NewGame(viper.GetInt64("sim.seed"), wallet, log)

	tracker := meta.NewTracker(profile, store, wallet, game.EventDispatcher, utils.NewPRNGService(0), log)
	defer func() {
		if err := tracker.Flush(); err != nil {
			log.Error().Err(err).Msg("Failed to flush profile on exit")
		}
	}()

	recorder := telemetry.NewRecorder(game.EventDispatcher, log)
	defer recorder.Close()

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, game, tracker, loadFontFace(log)))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Merge Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		log.Fatal().Err(err).Msg("Game loop failed")
	}
}

func loadProfile(store save.Store) (*save.Profile, error) {
	if id := viper.GetString("profile.id"); id != "" {
		return store.Load(id)
	}
	return store.LoadDefault()
}

// loadFontFace берёт TTF из конфига, при любой ошибке остаётся встроенный
// растровый шрифт.
func loadFontFace(log zerolog.Logger) font.Face {
	path := viper.GetString("ui.font")
	if path == "" {
		return assets.DefaultFace()
	}
	manager, err := assets.NewFontManager(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Falling back to built-in font")
		return assets.DefaultFace()
	}
	face, err := manager.Face(14)
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to built-in font")
		return assets.DefaultFace()
	}
	return face
}
