package redis

import "time"

// Config describes the Redis connection and the dedup key space.
type Config struct {
	// ConnectionURL has the form redis://:password@localhost:6379/0.
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0" yaml:"url"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3" yaml:"retry_attempts"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s" yaml:"retry_interval"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s" yaml:"connect_timeout"`

	// DedupPrefix namespaces fingerprint keys.
	DedupPrefix string `env:"REDIS_DEDUP_PREFIX" envDefault:"hashid:" yaml:"dedup_prefix"`
	// DedupTTL bounds how long a fingerprint is remembered. Zero keeps keys forever.
	DedupTTL time.Duration `env:"REDIS_DEDUP_TTL" envDefault:"24h" yaml:"dedup_ttl"`
}
