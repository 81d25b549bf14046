// Package config loads tool settings from an optional coral66.toml file,
// discovered upward from a starting directory so that editors launched from
// a subdirectory still pick up the workspace's settings.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked for during discovery.
const FileName = "coral66.toml"

// ServerConfig tunes the language server.
type ServerConfig struct {
	DebounceMS     int `toml:"debounce_ms"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// AnalyzeConfig tunes the batch analyzer.
type AnalyzeConfig struct {
	Jobs int `toml:"jobs"`
}

// Config is the root of coral66.toml.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Analyze AnalyzeConfig `toml:"analyze"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			DebounceMS:     300,
			MaxDiagnostics: 100,
		},
		Analyze: AnalyzeConfig{
			Jobs: 0, // 0 means one worker per CPU
		},
	}
}

// Load reads and decodes one settings file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), err
	}
	return normalize(cfg), nil
}

// Discover walks from dir upward to the filesystem root looking for
// coral66.toml. Without a file it returns the defaults and no error.
func Discover(dir string) (Config, string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Default(), "", err
	}
	for {
		candidate := filepath.Join(abs, FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Default(), "", err
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return Default(), "", nil
		}
		abs = parent
	}
}

func normalize(cfg Config) Config {
	if cfg.Server.DebounceMS < 0 {
		cfg.Server.DebounceMS = 0
	}
	if cfg.Server.MaxDiagnostics <= 0 {
		cfg.Server.MaxDiagnostics = Default().Server.MaxDiagnostics
	}
	if cfg.Analyze.Jobs < 0 {
		cfg.Analyze.Jobs = 0
	}
	return cfg
}
