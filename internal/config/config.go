package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values are read from app.env in the config path and can be overridden by environment variables.
type Config struct {
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	GinMode            string        `mapstructure:"GIN_MODE"`
	MuniCodesURL       string        `mapstructure:"MUNI_CODES_URL"`
	MuniSheetMarker    string        `mapstructure:"MUNI_SHEET_MARKER"`
	MuniDefaultSheet   string        `mapstructure:"MUNI_DEFAULT_SHEET"`
	JMAAreaURL         string        `mapstructure:"JMA_AREA_URL"`
	ReverseGeocoderURL string        `mapstructure:"REVERSE_GEOCODER_URL"`
	FetchTimeout       time.Duration `mapstructure:"FETCH_TIMEOUT"`
	GeocoderTimeout    time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       ":8080",
	"GIN_MODE":             "release",
	"MUNI_CODES_URL":       "https://www.soumu.go.jp/main_content/000925835.xlsx",
	"MUNI_SHEET_MARKER":    "現在",
	"MUNI_DEFAULT_SHEET":   "R6.1.1現在の団体",
	"JMA_AREA_URL":         "https://www.jma.go.jp/bosai/common/const/area.json",
	"REVERSE_GEOCODER_URL": "https://mreversegeocoder.gsi.go.jp/reverse-geocoder/LonLatToAddress",
	"FETCH_TIMEOUT":        "60s",
	"GEOCODER_TIMEOUT":     "10s",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
}

// LoadConfig reads configuration from app.env under path. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if config.GeocoderTimeout <= 0 {
		return config, fmt.Errorf("config: GEOCODER_TIMEOUT must be positive")
	}
	if config.FetchTimeout <= 0 {
		return config, fmt.Errorf("config: FETCH_TIMEOUT must be positive")
	}

	return config, nil
}
