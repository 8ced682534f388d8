package filter

import "github.com/dmitrymomot/hashid/pkg/hashid"

// Config describes a filter with environment variable mapping.
// The embedded hashid.Config is flattened in both env and YAML form.
type Config struct {
	hashid.Config `yaml:",inline"`

	Source         []string `env:"HASHID_SOURCE" envSeparator:"," envDefault:"message" yaml:"source"`
	TimestampField string   `env:"HASHID_TIMESTAMP_FIELD" envDefault:"@timestamp" yaml:"timestamp_field"`
	Target         string   `env:"HASHID_TARGET" envDefault:"hashid" yaml:"target"`
	Overwrite      bool     `env:"HASHID_OVERWRITE" envDefault:"true" yaml:"overwrite"`
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{
		Config:         hashid.DefaultConfig(),
		Source:         []string{"message"},
		TimestampField: "@timestamp",
		Target:         "hashid",
		Overwrite:      true,
	}
}
