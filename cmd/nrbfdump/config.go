// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml"

	"github.com/go-nrbf/nrbf/log"
)

// config holds the CLI's TOML-configurable knobs, per SPEC_FULL.md §2.3.
// A missing config file is not an error: defaults apply.
type config struct {
	MaxDepth int    `toml:"max_depth"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{MaxDepth: 0, LogLevel: "warn"}
}

func (c config) logLevel() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.LevelDebug
	case "info":
		return log.LevelInfo
	case "error":
		return log.LevelError
	case "fatal":
		return log.LevelFatal
	default:
		return log.LevelWarn
	}
}

// loadConfig reads path, or $HOME/.nrbfdump.toml when path is empty. A
// nonexistent default path is not an error; an explicitly named path that
// cannot be read is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".nrbfdump.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
