package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.False(t, cfg.Dev)
	assert.Equal(t, "https://helixio.app", cfg.SiteURL)
	assert.Equal(t, "https://app.helixio.id/register", cfg.SignupURL)
	assert.Equal(t, "dist", cfg.ExportDir)
	assert.Empty(t, cfg.LocalesDir)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := FromEnv(env(map[string]string{
		"PORT":                          "8080",
		"DEV":                           "true",
		"HELIXIO_SITE_URL":              "https://staging.helixio.app/",
		"HELIXIO_LOCALES_DIR":           "./locales",
		"HELIXIO_WEB_READ_TIMEOUT":      "3s",
		"HELIXIO_WEB_GA_MEASUREMENT_ID": " G-TEST123 ",
		"HELIXIO_WEB_ANALYTICS_DEBUG":   "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "https://staging.helixio.app", cfg.SiteURL)
	assert.Equal(t, "./locales", cfg.LocalesDir)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, Analytics{GA4MeasurementID: "G-TEST123", Debug: true}, cfg.Analytics)

	cfg, err = FromEnv(env(map[string]string{"PORT": "8080", "HELIXIO_WEB_PORT": "9000"}))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	_, err := FromEnv(env(map[string]string{
		"HELIXIO_SITE_URL":          "helixio.app",
		"HELIXIO_WEB_WRITE_TIMEOUT": "soon",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HELIXIO_SITE_URL")
	assert.Contains(t, err.Error(), "HELIXIO_WEB_WRITE_TIMEOUT")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("HELIXIO_EXPORT_DIR=public\n"), 0o600))
	t.Setenv("HELIXIO_EXPORT_DIR", "")
	os.Unsetenv("HELIXIO_EXPORT_DIR")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.ExportDir)

	var warned []string
	_, err = Load(filepath.Join(dir, "missing.env"), func(msg string) { warned = append(warned, msg) })
	require.NoError(t, err)
	assert.Len(t, warned, 1)
}
