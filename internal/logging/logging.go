// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Setup собирает корневой логгер: цветная консоль, файл сессии в logsDir
// и, если включён graylog, GELF-поток. Возвращённая функция закрывает
// писателей, её нужно отложить в main.
func Setup() (zerolog.Logger, func(), error) {
	var logLevelActual zerolog.Level
	switch strings.ToUpper(viper.GetString("logLevel")) {
	case "DEBUG":
		logLevelActual = zerolog.DebugLevel
	case "INFO":
		logLevelActual = zerolog.InfoLevel
	case "WARN":
		logLevelActual = zerolog.WarnLevel
	case "ERROR":
		logLevelActual = zerolog.ErrorLevel
	case "TRACE":
		logLevelActual = zerolog.TraceLevel
	default:
		logLevelActual = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevelActual)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create logs dir: %w", err)
	}
	logPath := filepath.Join(logsDir, fmt.Sprintf("rumbax_%s.log", time.Now().Format("20060102_150405")))
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log file: %w", err)
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
		zerolog.ConsoleWriter{
			Out:        logFile,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		},
	}

	var graylogWriter *gelf.Writer
	var graylogErr error
	if viper.GetBool("graylog.enabled") {
		graylogWriter, graylogErr = gelf.NewWriter(viper.GetString("graylog.address"))
		if graylogErr == nil {
			// GELF-поток получает сырой JSON zerolog.
			writers = append(writers, graylogWriter)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if graylogErr != nil {
		logger.Warn().Err(graylogErr).Str("address", viper.GetString("graylog.address")).
			Msg("Failed to connect GELF writer, continuing without it")
	}
	logger.Info().Str("loglevel", logger.GetLevel().String()).Str("path", logPath).Msg("Logging set up")

	closer := func() {
		if graylogWriter != nil {
			graylogWriter.Close()
		}
		logFile.Close()
	}
	return logger, closer, nil
}
