package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lexicam/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	file := writeFile(t, "lexicam.yaml", "backend:\n  url: http://file.local:1\n  timeout: 2s\n")

	cfg, err := config.Resolve(config.Sources{
		File:   file,
		Lookup: envMap(map[string]string{config.EnvBackendURL: "http://env.local:2"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://env.local:2", cfg.Backend.URL)
	assert.Equal(t, 2*time.Second, cfg.Backend.Timeout, "file value kept where env is silent")
}

func TestResolve_DotenvBetweenFileAndEnv(t *testing.T) {
	file := writeFile(t, "lexicam.yaml", "backend:\n  url: http://file.local:1\nlog:\n  level: error\n")
	envFile := writeFile(t, ".env", "LEXICAM_BACKEND_URL=http://dotenv.local:3\nLEXICAM_LOG_LEVEL=debug\n")

	cfg, err := config.Resolve(config.Sources{
		File:    file,
		EnvFile: envFile,
		Lookup:  envMap(map[string]string{config.EnvLogLevel: "warn"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.local:3", cfg.Backend.URL, ".env beats the file")
	assert.Equal(t, config.LogWarn, cfg.Log.Level, "environment beats .env")
}

func TestResolve_OverridesWinOverEnv(t *testing.T) {
	cfg, err := config.Resolve(config.Sources{
		Lookup: envMap(map[string]string{config.EnvBackendURL: "http://env.local:2"}),
		Overrides: func(c *config.Config) {
			c.Backend.URL = "http://flag.local:4"
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "http://flag.local:4", cfg.Backend.URL)
}

func TestResolve_MissingEnvFileAccepted(t *testing.T) {
	cfg, err := config.Resolve(config.Sources{
		EnvFile: filepath.Join(t.TempDir(), ".env"),
		Lookup:  envMap(nil),
	})
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBackendURL, cfg.Backend.URL)
}

func TestResolve_Invalid(t *testing.T) {
	_, err := config.Resolve(config.Sources{
		Lookup: envMap(map[string]string{config.EnvBackendURL: "not-a-url"}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
