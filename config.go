package main

import (
	"errors"
	"fmt"
)

const (
	homeEnv   = "JOURNAL_HOME"
	formatEnv = "JOURNAL_FORMAT"
)

var errEnvNotSet = errors.New("environment variable is not set")

type config struct {
	home   string
	format string
}

// loadConfig reads the journal settings through lookup, which is
// os.LookupEnv outside of tests. Values are taken as-is.
func loadConfig(lookup func(string) (string, bool)) (config, error) {
	home, ok := lookup(homeEnv)
	if !ok {
		return config{}, fmt.Errorf("%s %w", homeEnv, errEnvNotSet)
	}
	format, ok := lookup(formatEnv)
	if !ok {
		return config{}, fmt.Errorf("%s %w", formatEnv, errEnvNotSet)
	}
	return config{home: home, format: format}, nil
}
