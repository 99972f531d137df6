package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "https://www.soumu.go.jp/main_content/000925835.xlsx", cfg.MuniCodesURL)
	assert.Equal(t, "現在", cfg.MuniSheetMarker)
	assert.Equal(t, "R6.1.1現在の団体", cfg.MuniDefaultSheet)
	assert.Equal(t, "https://www.jma.go.jp/bosai/common/const/area.json", cfg.JMAAreaURL)
	assert.Equal(t, "https://mreversegeocoder.gsi.go.jp/reverse-geocoder/LonLatToAddress", cfg.ReverseGeocoderURL)
	assert.Equal(t, 60*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 10*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=:9090\nGEOCODER_TIMEOUT=3s\nLOG_FORMAT=console\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("LOG_LEVEL=warn\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JMA_AREA_URL", "http://localhost/area.json")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost/area.json", cfg.JMAAreaURL)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("GEOCODER_TIMEOUT", "0s")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
