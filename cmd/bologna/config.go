package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// replConfig holds the REPL settings read from the optional config file.
type replConfig struct {
	Prompt      string `toml:"prompt"`
	HistorySize int    `toml:"history_size"`
	Color       bool   `toml:"color"`
}

func defaultREPLConfig() replConfig {
	return replConfig{
		Prompt:      "bologna> ",
		HistorySize: 200,
		Color:       true,
	}
}

// loadREPLConfig reads the TOML config at path, falling back to
// ~/.config/bologna/repl.toml when path is empty. A missing file is not an
// error; the defaults apply.
func loadREPLConfig(path string) (replConfig, error) {
	cfg := defaultREPLConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "bologna", "repl.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultREPLConfig(), nil
		}
		return defaultREPLConfig(), fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = defaultREPLConfig().Prompt
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = defaultREPLConfig().HistorySize
	}
	return cfg, nil
}
