package opensearch

// Config holds OpenSearch connection and indexing parameters.
type Config struct {
	Addresses    []string `env:"OPENSEARCH_ADDRESSES,required" yaml:"addresses"`
	Username     string   `env:"OPENSEARCH_USERNAME" yaml:"username"`
	Password     string   `env:"OPENSEARCH_PASSWORD" yaml:"password"`
	MaxRetries   int      `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3" yaml:"max_retries"`
	DisableRetry bool     `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false" yaml:"disable_retry"`
	Index        string   `env:"OPENSEARCH_INDEX" envDefault:"hashid-events" yaml:"index"`
}
