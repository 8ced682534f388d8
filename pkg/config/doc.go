// Package config loads typed configuration for the hashid services from
// environment variables and optional YAML files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags and
//     caches the result per type, so components asking for the same config
//     share one parse.
//   - LoadFile layers a YAML document over the environment defaults. Keys
//     present in the file win over environment values; keys left out keep
//     their env or envDefault value.
//   - MustLoad / MustLoadEnv panic on failure for process start-up code.
//   - ResetCache and ForceReload exist for tests that mutate the environment.
//
// # Usage
//
//	var cfg hashid.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	var fcfg filter.Config
//	if err := config.LoadFile("hashid.yaml", &fcfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig, file problems wrap ErrReadingFile,
// and a nil destination returns ErrNilPointer. Use errors.Is to branch.
package config
