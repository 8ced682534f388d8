package main

import (
	"github.com/dmitrymomot/hashid/pkg/config"
	"github.com/dmitrymomot/hashid/pkg/filter"
	"github.com/dmitrymomot/hashid/pkg/httpserver"
	"github.com/dmitrymomot/hashid/pkg/logger"
	"github.com/dmitrymomot/hashid/pkg/pipeline"
)

// appConfig is everything the commands read from the environment or a YAML
// file. Backend connection settings are loaded separately, and only for the
// backends that are selected.
type appConfig struct {
	Logger   logger.Config     `yaml:"logger"`
	Filter   filter.Config     `yaml:"filter"`
	Pipeline pipeline.Config   `yaml:"pipeline"`
	HTTP     httpserver.Config `yaml:"http"`
}

func loadConfig(path string) (appConfig, error) {
	var cfg appConfig
	if path != "" {
		return cfg, config.LoadFile(path, &cfg)
	}
	return cfg, config.Load(&cfg)
}
