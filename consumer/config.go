// Package consumer provides the Redis Streams consumer for CMS content
// lifecycle events.
package consumer

import (
	"os"
	"strconv"
	"time"
)

// Config holds consumer configuration.
type Config struct {
	// RedisURL is the Redis connection URL.
	RedisURL string
	// GroupName is the consumer group name.
	GroupName string
	// ConsumerName is this consumer's name within the group.
	ConsumerName string
	// StreamKey is the Redis Stream key to consume from.
	StreamKey string
	// BatchSize is the number of messages to read at once.
	BatchSize int64
	// BlockTimeout is how long to block waiting for messages.
	BlockTimeout time.Duration
	// Enabled determines if the consumer is active.
	Enabled bool
}

// DefaultConfig returns a default consumer configuration.
func DefaultConfig() Config {
	return Config{
		RedisURL:     "redis://localhost:6379",
		GroupName:    "content-indexer-group",
		ConsumerName: "content-indexer-1",
		StreamKey:    "cms:events:content",
		BatchSize:    10,
		BlockTimeout: 5 * time.Second,
		Enabled:      false,
	}
}

// ConfigFromEnv builds the consumer configuration from environment
// variables, falling back to defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CONTENT_EVENTS_REDIS_URL"); v != "" {
		cfg.RedisURL = v
		cfg.Enabled = true
	}
	if v := os.Getenv("CONTENT_EVENTS_STREAM"); v != "" {
		cfg.StreamKey = v
	}
	if v := os.Getenv("CONTENT_EVENTS_GROUP"); v != "" {
		cfg.GroupName = v
	}
	if v := os.Getenv("CONTENT_EVENTS_CONSUMER"); v != "" {
		cfg.ConsumerName = v
	}
	if v := os.Getenv("CONTENT_EVENTS_BATCH_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.BatchSize = n
		}
	}
	if v := os.Getenv("CONTENT_EVENTS_ENABLED"); v != "" {
		cfg.Enabled = v == "true"
	}

	return cfg
}
