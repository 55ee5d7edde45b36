package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable of the dashboard engine and its HTTP surface.
type Config struct {
	Port     string
	LogLevel string
	DBPath   string

	SensorInterval     time.Duration
	WeatherInterval    time.Duration
	AmbientInterval    time.Duration
	AmbientProbability float64

	AlertProbability float64
	BatteryFloor     float64

	SprayAutoStop time.Duration

	WSDefaultInterval time.Duration

	MQTTBroker      string
	MQTTClientID    string
	MQTTTopicPrefix string
}

const envPrefix = "AGRISMART"

var errInvalidProbability = errors.New("probability must be within [0, 1]")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "file::memory:?cache=shared")

	v.SetDefault("schedule.sensor_interval", 30*time.Second)
	v.SetDefault("schedule.weather_interval", 5*time.Minute)
	v.SetDefault("schedule.ambient_interval", 2*time.Minute)
	v.SetDefault("schedule.ambient_probability", 0.3)

	v.SetDefault("telemetry.alert_probability", 0.1)
	v.SetDefault("telemetry.battery_floor", 85.0)

	v.SetDefault("spray.auto_stop", 3*time.Second)

	v.SetDefault("ws.default_interval", time.Second)

	v.SetDefault("mqtt.broker", "")
	v.SetDefault("mqtt.client_id", "agrismart-dashboard")
	v.SetDefault("mqtt.topic_prefix", "agrismart")
}

// Load reads config.yml from the given directories (first match wins),
// applies AGRISMART_* environment overrides and validates the result.
// A missing config file is not an error: defaults apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the reference configuration without touching disk or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Port:               v.GetString("port"),
		LogLevel:           v.GetString("log.level"),
		DBPath:             v.GetString("db.path"),
		SensorInterval:     v.GetDuration("schedule.sensor_interval"),
		WeatherInterval:    v.GetDuration("schedule.weather_interval"),
		AmbientInterval:    v.GetDuration("schedule.ambient_interval"),
		AmbientProbability: v.GetFloat64("schedule.ambient_probability"),
		AlertProbability:   v.GetFloat64("telemetry.alert_probability"),
		BatteryFloor:       v.GetFloat64("telemetry.battery_floor"),
		SprayAutoStop:      v.GetDuration("spray.auto_stop"),
		WSDefaultInterval:  v.GetDuration("ws.default_interval"),
		MQTTBroker:         v.GetString("mqtt.broker"),
		MQTTClientID:       v.GetString("mqtt.client_id"),
		MQTTTopicPrefix:    v.GetString("mqtt.topic_prefix"),
	}
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	for name, p := range map[string]float64{
		"schedule.ambient_probability": c.AmbientProbability,
		"telemetry.alert_probability":  c.AlertProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s=%v: %w", name, p, errInvalidProbability)
		}
	}
	for name, d := range map[string]time.Duration{
		"schedule.sensor_interval":  c.SensorInterval,
		"schedule.weather_interval": c.WeatherInterval,
		"schedule.ambient_interval": c.AmbientInterval,
		"spray.auto_stop":           c.SprayAutoStop,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.BatteryFloor < 0 || c.BatteryFloor > 100 {
		return fmt.Errorf("telemetry.battery_floor=%v out of range [0, 100]", c.BatteryFloor)
	}
	return nil
}
