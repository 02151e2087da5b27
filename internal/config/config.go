package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/creature-arena/internal/calendar"
	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Clock ClockConfig
	Log   LogConfig
	Arena ArenaConfig
}

// ClockConfig controls the date creatures treat as today
type ClockConfig struct {
	ReferenceDate  string `env:"ARENA_REFERENCE_DATE"   envDefault:"2025-09-22"`
	UseSystemClock bool   `env:"ARENA_USE_SYSTEM_CLOCK" envDefault:"false"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `env:"ARENA_LOG_LEVEL"       envDefault:"info"`
	Development bool   `env:"ARENA_LOG_DEVELOPMENT" envDefault:"false"`
}

// ArenaConfig holds battle defaults
type ArenaConfig struct {
	// Scenario is used when no --scenario flag is given. Empty means the
	// built-in scenario.
	Scenario string `env:"ARENA_SCENARIO"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "parse env")
	}

	if _, err := cfg.Clock.Build(); err != nil {
		return nil, err
	}
	if _, err := cfg.Log.level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Build returns the configured clock
func (c ClockConfig) Build() (calendar.Clock, error) {
	if c.UseSystemClock {
		return calendar.SystemClock(), nil
	}

	d, err := calendar.Parse(c.ReferenceDate)
	if err != nil {
		return nil, dnderr.Wrap(err, "ARENA_REFERENCE_DATE")
	}
	return calendar.FixedClock(d), nil
}

func (c LogConfig) level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return lvl, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			fmt.Sprintf("ARENA_LOG_LEVEL %q", c.Level))
	}
	return lvl, nil
}

// BuildLogger creates the zap logger. verbose forces debug level.
func (c LogConfig) BuildLogger(verbose bool) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	if c.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}
