// internal/telemetry/influx_test.go
package telemetry

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"merge-defense/internal/event"
)

func TestDisabledRecorderIsInert(t *testing.T) {
	viper.Set("influx.enabled", false)
	defer viper.Set("influx.enabled", nil)

	dispatcher := event.NewDispatcher()
	rec := NewRecorder(dispatcher, zerolog.Nop())

	assert.False(t, rec.Enabled())

	// Выключенный рекордер молча пропускает события и закрытие.
	rec.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledPayload{Reward: 5}})
	dispatcher.Emit(event.GameOver, event.GameOverPayload{Level: 1, Wave: 3, Score: 100})
	rec.Close()
}
