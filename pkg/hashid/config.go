package hashid

// Config holds generator settings with environment variable mapping.
// Uses struct tags compatible with github.com/dmitrymomot/hashid/pkg/config.
// Defaults match the historical filter: MD5, key "hashid", full digest,
// timestamp prefix enabled.
type Config struct {
	// Method is one of MD5, SHA1, SHA256, SHA384, SHA512.
	Method string `env:"HASHID_METHOD" envDefault:"MD5" yaml:"method"`
	// Key is the HMAC secret.
	Key string `env:"HASHID_KEY" envDefault:"hashid" yaml:"key"`
	// HashBytesUsed keeps only the last N digest bytes when positive.
	HashBytesUsed int `env:"HASHID_HASH_BYTES_USED" yaml:"hash_bytes_used"`
	// TimestampPrefix prepends the 4-byte epoch prefix.
	TimestampPrefix bool `env:"HASHID_TIMESTAMP_PREFIX" envDefault:"true" yaml:"timestamp_prefix"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Method:          string(MD5),
		Key:             defaultKey,
		TimestampPrefix: true,
	}
}
