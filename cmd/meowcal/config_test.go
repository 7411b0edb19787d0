package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/pkg/environment"
)

const testConfig = `
Environment: dev
Telegram:
  token: from-yaml
  pollInterval: 10s
  locale: ru
API:
  http:
    addr: ":8080"
  default_locale: de
Storage:
  driver: mongo
  mongo:
    url: mongodb://localhost:27017
    database: meowcal
    collection: selections
    auth:
      username: cat
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", testConfig)

	cfg, err := loadConfig([]string{"-config", path, "-dotenv", filepath.Join(dir, "missing.env")})
	require.NoError(t, err)

	require.Equal(t, environment.Development, cfg.Environment)
	require.Equal(t, "from-yaml", cfg.Telegram.Token)
	require.Equal(t, 10*time.Second, cfg.Telegram.PollInterval)
	require.Equal(t, "ru", cfg.Telegram.Locale)
	require.Equal(t, ":8080", cfg.API.HTTP.Addr)
	require.Equal(t, "de", cfg.API.DefaultLocale)
	require.Equal(t, repo.DriverMongo, cfg.Storage.Driver)
	require.Equal(t, "cat", cfg.Storage.Mongo.Auth.Username)
}

func TestLoadConfig_EnvFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", testConfig)

	cfg, err := loadConfig([]string{"-config", path, "-env", "prod", "-dotenv", filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
	require.Equal(t, environment.Production, cfg.Environment)
}

func TestLoadConfig_Secrets(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", testConfig)
	dotenv := writeFile(t, dir, ".env", envTelegramToken+"=from-dotenv\n"+envMongoPassword+"=meow\n")

	// godotenv.Load sets variables for the whole process
	t.Cleanup(func() {
		_ = os.Unsetenv(envTelegramToken)
		_ = os.Unsetenv(envMongoPassword)
	})

	cfg, err := loadConfig([]string{"-config", path, "-dotenv", dotenv})
	require.NoError(t, err)
	require.Equal(t, "from-dotenv", cfg.Telegram.Token)
	require.Equal(t, "meow", cfg.Storage.Mongo.Auth.Password)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
