// internal/config/runtime.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the operational config from JSON file and sets default values.
// Gameplay balance stays in Go consts; this file covers logging, saves and
// telemetry endpoints. A missing config file is fine, defaults apply.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("save.path", "./rumbax.db")
	viper.SetDefault("profile.id", "")

	viper.SetDefault("ui.font", "")

	viper.SetDefault("sim.seed", 0)
	viper.SetDefault("sim.level", 1)

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "rumbax-metrics")
	viper.SetDefault("influx.bucket", "rumbax_runs")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetConfigName("rumbax.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}
