// internal/telemetry/influx.go
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"merge-defense/internal/event"
)

// Recorder пишет точки о ходе забега в InfluxDB. Выключенный или
// недоступный Influx превращает его в no-op, симуляция этого не
// замечает.
type Recorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	runID    string
	log      zerolog.Logger
}

// NewRecorder поднимает клиент по конфигу и подписывается на события
// забега. При influx.enabled=false или неудачном пинге возвращается
// выключенный рекордер.
func NewRecorder(dispatcher *event.Dispatcher, log zerolog.Logger) *Recorder {
	r := &Recorder{runID: uuid.New().String(), log: log}
	if !viper.GetBool("influx.enabled") {
		log.Debug().Msg("Telemetry disabled")
		return r
	}

	client := influxdb2.NewClientWithOptions(
		fmt.Sprintf(
			"%s://%s:%s",
			viper.GetString("influx.protocol"),
			viper.GetString("influx.host"),
			viper.GetString("influx.port"),
		),
		viper.GetString("influx.token"),
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)
	running, err := client.Ping(context.Background())
	if err != nil || !running {
		log.Warn().Err(err).Msg("InfluxDB unreachable, telemetry disabled")
		client.Close()
		return r
	}

	r.client = client
	r.writeAPI = client.WriteAPI(viper.GetString("influx.org"), viper.GetString("influx.bucket"))
	errorsCh := r.writeAPI.Errors()
	go func() {
		for writeErr := range errorsCh {
			r.log.Error().Err(writeErr).Msg("Error sending data to InfluxDB")
		}
	}()

	dispatcher.Subscribe(event.EnemyKilled, r)
	dispatcher.Subscribe(event.WaveCompleted, r)
	dispatcher.Subscribe(event.LevelCompleted, r)
	dispatcher.Subscribe(event.GameOver, r)
	log.Info().Str("runId", r.runID).Msg("Telemetry recorder attached")
	return r
}

// Enabled сообщает, подключён ли рекордер к InfluxDB.
func (r *Recorder) Enabled() bool {
	return r.writeAPI != nil
}

// OnEvent реализует event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	if r.writeAPI == nil {
		return
	}
	switch e.Type {
	case event.EnemyKilled:
		payload, ok := e.Data.(event.EnemyKilledPayload)
		if !ok {
			return
		}
		r.writeAPI.WritePoint(influxdb2.NewPointWithMeasurement("kills").
			AddTag("run", r.runID).
			AddTag("class", string(payload.Class)).
			AddField("reward", payload.Reward).
			AddField("score", payload.ScoreValue).
			SetTime(time.Now()))

	case event.WaveCompleted:
		payload, ok := e.Data.(event.WavePayload)
		if !ok {
			return
		}
		r.writeAPI.WritePoint(influxdb2.NewPointWithMeasurement("waves").
			AddTag("run", r.runID).
			AddField("wave", payload.Number).
			SetTime(time.Now()))

	case event.LevelCompleted:
		payload, ok := e.Data.(event.LevelCompletedPayload)
		if !ok {
			return
		}
		r.writeAPI.WritePoint(influxdb2.NewPointWithMeasurement("levels").
			AddTag("run", r.runID).
			AddField("level", payload.Level).
			AddField("stars", payload.Stars).
			AddField("score", payload.Score).
			SetTime(time.Now()))

	case event.GameOver:
		payload, ok := e.Data.(event.GameOverPayload)
		if !ok {
			return
		}
		r.writeAPI.WritePoint(influxdb2.NewPointWithMeasurement("runs").
			AddTag("run", r.runID).
			AddField("level", payload.Level).
			AddField("wave", payload.Wave).
			AddField("score", payload.Score).
			SetTime(time.Now()))
	}
}

// Close сбрасывает буфер и закрывает клиент.
func (r *Recorder) Close() {
	if r.client == nil {
		return
	}
	r.writeAPI.Flush()
	r.client.Close()
}
