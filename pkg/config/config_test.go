package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, 1000, cfg.Streaming.QueueCapacity)
	assert.Equal(t, 15*time.Second, cfg.Streaming.HeartbeatInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Streaming.PollInterval)
	assert.Equal(t, time.Hour, cfg.Streaming.MaxWait)
	assert.Equal(t, 3, cfg.Streaming.PersistRetries)
	assert.Equal(t, 10, cfg.Streaming.ContentChunkWords)
	assert.Equal(t, time.Duration(0), cfg.Retention.EventTTL)
	assert.Equal(t, 24*time.Hour, cfg.Retention.TaskMaxAge)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STREAM_QUEUE_CAPACITY", "50")
	t.Setenv("HEARTBEAT_INTERVAL", "5s")
	t.Setenv("EVENT_TTL", "336h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Streaming.QueueCapacity)
	assert.Equal(t, 5*time.Second, cfg.Streaming.HeartbeatInterval)
	assert.Equal(t, 14*24*time.Hour, cfg.Retention.EventTTL)
}

func TestLoad_DurationAsSeconds(t *testing.T) {
	t.Setenv("WATCHER_POLL_INTERVAL", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Streaming.PollInterval)
}

func TestLoad_RejectsInvalidCapacity(t *testing.T) {
	t.Setenv("STREAM_QUEUE_CAPACITY", "-1")

	_, err := Load()
	require.Error(t, err)
}
