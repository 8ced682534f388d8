package webhook

import "time"

// Config describes the webhook endpoint.
type Config struct {
	URL string `env:"WEBHOOK_URL,required" yaml:"url"`
	// Secret signs each delivery. Empty disables signing.
	Secret     string        `env:"WEBHOOK_SECRET" yaml:"secret"`
	Timeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s" yaml:"timeout"`
	MaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"2" yaml:"max_retries"`
	// InitialBackoff doubles after each failed attempt up to MaxBackoff.
	InitialBackoff time.Duration `env:"WEBHOOK_INITIAL_BACKOFF" envDefault:"500ms" yaml:"initial_backoff"`
	MaxBackoff     time.Duration `env:"WEBHOOK_MAX_BACKOFF" envDefault:"10s" yaml:"max_backoff"`
}
