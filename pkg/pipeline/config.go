package pipeline

// Dedup backends accepted in Config.Dedup.
const (
	DedupNone   = ""
	DedupMemory = "memory"
	DedupRedis  = "redis"
)

// Config selects workers, sinks and the de-duplication backend.
type Config struct {
	Workers int      `env:"HASHID_WORKERS" envDefault:"1" yaml:"workers"`
	Sinks   []string `env:"HASHID_SINKS" envSeparator:"," envDefault:"stdout" yaml:"sinks"`
	Dedup   string   `env:"HASHID_DEDUP" yaml:"dedup"`
}
