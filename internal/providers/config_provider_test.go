package providers

import (
	"os"
	"path/filepath"
	"streamsched/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const minimalConfig = `
webServer:
  host: 127.0.0.1
  port: 8080
logger:
  level: info
  mode: 420
  dir: /tmp
store:
  driver: file
  file:
    dir: /tmp/streamsched
`

func TestNewConfigProvider_Defaults(t *testing.T) {
	path := writeConfig(t, minimalConfig)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "StreamScheduleDaemon", conf.AppName)
	assert.Equal(t, path, conf.Path)
	assert.True(t, conf.Debug)
	assert.Equal(t, 8080, conf.WebServer.Port)
	assert.Equal(t, "file", conf.Store.Driver)
	assert.Equal(t, DefaultStoreKey, conf.Store.Key)
	assert.Equal(t, 10*time.Second, conf.Store.Timeout)
	assert.Equal(t, "placeholder", conf.Schedule.EmptyDay.OnDelete)
	assert.Equal(t, "remove", conf.Schedule.EmptyDay.OnMove)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
}

func TestNewConfigProvider_FileOverridesAndEnv(t *testing.T) {
	path := writeConfig(t, minimalConfig+`  key: studio-schedule
  timeout: 2s
  saveOnShutdown: true
schedule:
  emptyDay:
    onDelete: remove
`)
	t.Setenv("STREAMSCHED_LOG_LEVEL", "debug")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "studio-schedule", conf.Store.Key)
	assert.Equal(t, 2*time.Second, conf.Store.Timeout)
	assert.True(t, conf.Store.SaveOnShutdown)
	assert.Equal(t, "remove", conf.Schedule.EmptyDay.OnDelete)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestNewConfigProvider_Errors(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	path := writeConfig(t, `
webServer:
  host: 127.0.0.1
  port: 8080
logger:
  level: info
  mode: 420
  dir: /tmp
store:
  driver: redis
`)
	_, err = NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err, "redis driver needs an address")
}
