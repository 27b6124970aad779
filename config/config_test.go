package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 10*time.Minute, cfg.Cache.MenuTTL)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  port: "9000"
jwt:
  access_ttl: 15m
kafka:
  enabled: true
  brokers: ["kafka-1:9092", "kafka-2:9092"]
`)
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.NotNil(t, InitKafkaWriter(cfg))
}

func TestLoad_ReleaseModeRequiresStrongSecret(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  mode: release
jwt:
  secret: short
`)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestInitKafkaWriter_Disabled(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, InitKafkaWriter(cfg))
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log:\n  level: info\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 1)
	go Watch(ctx, dir, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	// give the watcher time to subscribe
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, dir, "log:\n  level: debug\n")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "debug", cfg.Log.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}
