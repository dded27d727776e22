package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test", nil)
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Port)
	assert.Equal(t, ":80", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.UpdateInterval)
	assert.Equal(t, 7, cfg.TrendWindow)
	assert.Equal(t, 1.0, cfg.LatencyScale)
	assert.False(t, cfg.Relay.Enabled())
}

func TestLoad_FlagsAndEnv(t *testing.T) {
	t.Setenv("DATAMESH_SEED", "42")
	t.Setenv("DATAMESH_RELAY_KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load("test", []string{"-port", "8080", "-latency-scale", "0"})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.0, cfg.LatencyScale)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Relay.KafkaBrokers)
	assert.True(t, cfg.Relay.Enabled())
	assert.Zero(t, cfg.Relay.LockTTL)
}

func TestLoad_RelayLock(t *testing.T) {
	t.Setenv("DATAMESH_RELAY_LOCK_TTL", "4s")

	cfg, err := Load("test", []string{"-relay-redis-addr", "localhost:6379"})
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.Relay.LockTTL)
	assert.Equal(t, "localhost:6379", cfg.Relay.RedisAddr)
}

func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("LISTEN_PORT", "9090")
	t.Setenv("BASE_CONTEXT", "/datamesh/")

	cfg, err := Load("test", nil)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/datamesh", cfg.BaseContext)
}

func TestLoad_ExplicitPortWinsOverLegacy(t *testing.T) {
	t.Setenv("LISTEN_PORT", "9090")

	cfg, err := Load("test", []string{"-port", "7070"})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datamesh.conf")
	require.NoError(t, os.WriteFile(path, []byte("log-level debug\ntrend-window 14\n"), 0o600))

	cfg, err := Load("test", []string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 14, cfg.TrendWindow)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"端口越界", []string{"-port", "70000"}, nil},
		{"未知日志级别", []string{"-log-level", "verbose"}, nil},
		{"趋势窗口为0", []string{"-trend-window", "0"}, nil},
		{"负延迟倍数", []string{"-latency-scale", "-1"}, nil},
		{"QoS越界", []string{"-relay-mqtt-qos", "3"}, nil},
		{"非法LISTEN_PORT", nil, map[string]string{"LISTEN_PORT": "http"}},
		{"未知参数", []string{"-nope"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("test", tt.args)
			assert.Error(t, err)
		})
	}
}
