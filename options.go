package main

import (
	"fmt"
	"time"

	"wikisuggest/internal/config"
)

// options holds the command-line flags
type options struct {
	configPath string
	seed       string
	endpoint   string
	debounce   time.Duration
	grace      time.Duration
	logFile    string
	logLevel   string
	proxy      string
	saveConfig bool
}

// applyOverrides copies flags the user set onto cfg. A positional seed wins
// over --seed.
func applyOverrides(cfg *config.Config, o options, changed func(string) bool, args []string) error {
	if changed("seed") {
		cfg.Seed = o.seed
	}
	if len(args) > 0 {
		cfg.Seed = args[0]
	}
	if changed("endpoint") {
		cfg.Endpoint = o.endpoint
	}
	if changed("debounce") {
		ms, err := millis("debounce", o.debounce)
		if err != nil {
			return err
		}
		cfg.DebounceMs = ms
	}
	if changed("grace") {
		ms, err := millis("grace", o.grace)
		if err != nil {
			return err
		}
		cfg.GraceMs = ms
	}
	if changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if changed("proxy") {
		cfg.ProxyURL = o.proxy
	}
	return cfg.Validate()
}

// millis converts a duration flag to the config's millisecond resolution
func millis(flag string, d time.Duration) (int, error) {
	if d%time.Millisecond != 0 {
		return 0, fmt.Errorf("--%s must be a whole number of milliseconds, got %s", flag, d)
	}
	return int(d / time.Millisecond), nil
}
