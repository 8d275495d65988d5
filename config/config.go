// Package config loads the engine and driver options from a YAML file and
// BALATRO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/game"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BALATRO_"

const (
	ShufflerSeeded = "seeded"
	ShufflerKyber  = "kyber"

	AgentRandom      = "random"
	AgentInteractive = "interactive"
)

type Config struct {
	Game     game.Config `yaml:"game" json:"game" envPrefix:"GAME_"`
	Seed     uint64      `yaml:"seed" json:"seed" env:"SEED"`
	Shuffler string      `yaml:"shuffler" json:"shuffler" env:"SHUFFLER"`
	Agent    string      `yaml:"agent" json:"agent" env:"AGENT"`
	Episodes int         `yaml:"episodes" json:"episodes" env:"EPISODES"`
	MaxSteps int         `yaml:"max_steps" json:"max_steps" env:"MAX_STEPS"`
	LogLevel string      `yaml:"log_level" json:"log_level" env:"LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Game:     game.DefaultConfig(),
		Seed:     1,
		Shuffler: ShufflerSeeded,
		Agent:    AgentRandom,
		Episodes: 1,
		MaxSteps: 10_000,
		LogLevel: "info",
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then the environment, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overrides fields of target with the BALATRO_* variables that are set.
func ParseEnv(target *Config) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if err := c.Game.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("game: %w", err))
	}
	switch c.Shuffler {
	case ShufflerSeeded, ShufflerKyber:
	default:
		errs = append(errs, fmt.Errorf("unknown shuffler %q", c.Shuffler))
	}
	switch c.Agent {
	case AgentRandom, AgentInteractive:
	default:
		errs = append(errs, fmt.Errorf("unknown agent %q", c.Agent))
	}
	if c.Episodes < 1 {
		errs = append(errs, fmt.Errorf("episodes must be positive, got %d", c.Episodes))
	}
	if c.MaxSteps < 1 {
		errs = append(errs, fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewShuffler builds the randomness source for episode n. Seeded shufflers
// derive their seed from Seed and n so every episode is reproducible.
func (c Config) NewShuffler(n int) deck.Shuffler {
	if c.Shuffler == ShufflerKyber {
		return deck.NewKyberShuffler()
	}
	return deck.NewSeededShuffler(c.Seed + uint64(n))
}

func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
