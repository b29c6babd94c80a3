// Package config holds service configuration loaded from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// StreamingConfig tunes the emitter, driver and watcher.
type StreamingConfig struct {
	// QueueCapacity is the emitter's bounded queue size.
	QueueCapacity int
	// HeartbeatInterval is how long the driver stays silent before
	// emitting a STATUS liveness event.
	HeartbeatInterval time.Duration
	// PollInterval is the watcher's sleep between persistence reads.
	PollInterval time.Duration
	// MaxWait is the watcher's cooperative timeout.
	MaxWait time.Duration
	// PersistRetries and PersistRetryBackoff drive the robust event
	// writer (linear backoff).
	PersistRetries      int
	PersistRetryBackoff time.Duration
	// ContentChunkWords and ContentChunkDelay shape final-answer chunking.
	ContentChunkWords int
	ContentChunkDelay time.Duration
}

// RetentionConfig tunes the cleanup service.
type RetentionConfig struct {
	// EventTTL expires event-log rows; zero disables the purge.
	EventTTL time.Duration
	// SweepInterval is how often the cleanup loop runs.
	SweepInterval time.Duration
	// TaskMaxAge is the registry sweep horizon for completed tasks.
	TaskMaxAge time.Duration
}

// Config is the full service configuration.
type Config struct {
	HTTPPort      string
	AgentGraphURL string
	// ContextDir holds the pre-computed tender analysis artifacts seeded
	// into the graph's virtual filesystem. Empty disables seeding.
	ContextDir string
	Streaming  StreamingConfig
	Retention  RetentionConfig
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	streaming := StreamingConfig{
		QueueCapacity:       getEnvInt("STREAM_QUEUE_CAPACITY", 1000),
		HeartbeatInterval:   getEnvDuration("HEARTBEAT_INTERVAL", 15*time.Second),
		PollInterval:        getEnvDuration("WATCHER_POLL_INTERVAL", 500*time.Millisecond),
		MaxWait:             getEnvDuration("WATCHER_MAX_WAIT", time.Hour),
		PersistRetries:      getEnvInt("PERSIST_RETRIES", 3),
		PersistRetryBackoff: getEnvDuration("PERSIST_RETRY_BACKOFF", 100*time.Millisecond),
		ContentChunkWords:   getEnvInt("CONTENT_CHUNK_WORDS", 10),
		ContentChunkDelay:   getEnvDuration("CONTENT_CHUNK_DELAY", 20*time.Millisecond),
	}
	if streaming.QueueCapacity <= 0 {
		return nil, fmt.Errorf("STREAM_QUEUE_CAPACITY must be positive, got %d", streaming.QueueCapacity)
	}
	if streaming.PersistRetries < 1 {
		return nil, fmt.Errorf("PERSIST_RETRIES must be at least 1, got %d", streaming.PersistRetries)
	}

	retention := RetentionConfig{
		EventTTL:      getEnvDuration("EVENT_TTL", 0),
		SweepInterval: getEnvDuration("REGISTRY_SWEEP_INTERVAL", 10*time.Minute),
		TaskMaxAge:    getEnvDuration("REGISTRY_TASK_MAX_AGE", 24*time.Hour),
	}

	return &Config{
		HTTPPort:      getEnv("TENDERD_PORT", "8000"),
		AgentGraphURL: getEnv("AGENT_GRAPH_URL", "localhost:50051"),
		ContextDir:    getEnv("TENDER_CONTEXT_DIR", ""),
		Streaming:     streaming,
		Retention:     retention,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvDuration accepts Go duration syntax ("15s", "24h") or a bare number
// of seconds.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
