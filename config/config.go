// Package config collects runtime settings from the environment and the
// command line.
package config

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration shared by the game and the arena.
type Config struct {
	Debug       bool   `env:"OPENWORLD_DEBUG" envDefault:"false"`
	Arena       string `env:"OPENWORLD_ARENA" envDefault:"arena.yaml"`
	Character   string `env:"OPENWORLD_CHARACTER" envDefault:"character.yaml"`
	HotReload   bool   `env:"OPENWORLD_HOT_RELOAD" envDefault:"true"`
	PrefabDir   string `env:"OPENWORLD_PREFAB_DIR" envDefault:"prefabs"`
	BaseMonitor bool   `env:"OPENWORLD_BASE_MONITOR" envDefault:"false"`
}

// Load reads the environment, then lets command-line flags override it.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging and overlays")
	fs.StringVar(&cfg.Arena, "arena", cfg.Arena, "arena prefab in prefabs/")
	fs.StringVar(&cfg.Character, "character", cfg.Character, "character prefab in prefabs/")
	fs.BoolVar(&cfg.HotReload, "reload", cfg.HotReload, "reload prefab tuning when files change")
	fs.StringVar(&cfg.PrefabDir, "prefabs", cfg.PrefabDir, "directory watched for prefab edits")
	fs.BoolVar(&cfg.BaseMonitor, "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}
	return cfg, nil
}

// LogLevel is Debug when debugging, Info otherwise.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
