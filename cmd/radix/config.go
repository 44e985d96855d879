package main

import (
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"
)

// Config holds the defaults for command line flags. Values come from RADIX_*
// environment variables.
type Config struct {
	LogLevel string `split_words:"true" default:"warn"`
	Signed   bool   `default:"false"`
	Color    bool   `default:"true"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (cfg Config, err error) {
	err = envconfig.Process("radix", &cfg)
	if err != nil {
		return cfg, xerrors.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
