// Package config reads the spancheck tool's TOML configuration, falling
// back to sane defaults for anything not set.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lambdcalculus/timespan/pkg/logger"
)

// Check holds the knobs for a spancheck run.
type Check struct {
	// Iterations per suite. A seed of 0 means "derive one from the clock".
	Iterations int   `toml:"iterations"`
	Seed       int64 `toml:"seed"`

	// Suites to run. Empty means all of them.
	Suites []string `toml:"suites"`

	LevelString string   `toml:"log_level"`
	LogOutputs  []string `toml:"log_outputs"`
}

// CheckDefault returns the default spancheck settings.
func CheckDefault() *Check {
	return &Check{
		Iterations:  10_000,
		Seed:        0,
		Suites:      nil,
		LevelString: "info",
		LogOutputs:  []string{"stdout"},
	}
}

var StringToLevel = map[string]logger.LogLevel{
	"debug": logger.LevelDebug,
	"info":  logger.LevelInfo,
	"warn":  logger.LevelWarning,
	"error": logger.LevelError,
	"fatal": logger.LevelFatal,
}

// Level maps the configured log level string onto a [logger.LogLevel],
// falling back to Info for unknown names.
func (c *Check) Level() logger.LogLevel {
	if lvl, ok := StringToLevel[c.LevelString]; ok {
		return lvl
	}
	return logger.LevelInfo
}

// ReadCheck reads spancheck settings from the TOML file at `path`. An empty
// path returns the defaults untouched.
func ReadCheck(path string) (*Check, error) {
	conf := CheckDefault()
	if path == "" {
		return conf, nil
	}
	if _, err := os.Stat(path); err != nil {
		return conf, fmt.Errorf("config: Couldn't find check config (%w).", err)
	}
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return conf, fmt.Errorf("config: Couldn't read check config (%w).", err)
	}
	return conf, nil
}
