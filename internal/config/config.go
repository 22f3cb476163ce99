package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/ilyakaznacheev/cleanenv"

	"goldtracker/internal/series"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Telegram  Telegram  `yaml:"telegram"`
	Dashboard Dashboard `yaml:"dashboard"`
	Logger    Logger    `yaml:"logger"`
}

type Server struct {
	Address string `env:"SERVER_ADDRESS" env-default:":8080" yaml:"address"`
}

type Telegram struct {
	Token string `env:"TELEGRAM_TOKEN" env-default:"" yaml:"token"`
}

// Enabled reports whether the bot should be started.
func (t *Telegram) Enabled() bool {
	return t.Token != ""
}

type Dashboard struct {
	Days     int    `env:"DASHBOARD_DAYS" env-default:"30" yaml:"days"`
	Timezone string `env:"DASHBOARD_TIMEZONE" env-default:"UTC" yaml:"timezone"`
}

// Location returns the timezone "today" is computed in. Load has already validated it.
func (d *Dashboard) Location() *time.Location {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type Logger struct {
	Level           string     `env:"LOG_LEVEL" env-default:"info" yaml:"level"`
	ParsedSlogLevel slog.Level `yaml:"-"`
}

// Load reads config from a file, or only from the environment when the file does not exist.
func Load(configPath string) (*Config, error) {
	cnf := &Config{}

	var err error
	if _, statErr := os.Stat(configPath); errors.Is(statErr, os.ErrNotExist) {
		err = cleanenv.ReadEnv(cnf)
	} else {
		err = cleanenv.ReadConfig(configPath, cnf)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if cnf.Dashboard.Days < series.MinDays || cnf.Dashboard.Days > series.MaxDays {
		return nil, fmt.Errorf("dashboard.days must be between %d and %d, got %d", series.MinDays, series.MaxDays, cnf.Dashboard.Days)
	}

	if _, err = time.LoadLocation(cnf.Dashboard.Timezone); err != nil {
		return nil, fmt.Errorf("load dashboard timezone: %w", err)
	}

	switch cnf.Logger.Level {
	case "debug":
		cnf.Logger.ParsedSlogLevel = slog.LevelDebug
	case "info":
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	case "warn":
		cnf.Logger.ParsedSlogLevel = slog.LevelWarn
	case "error":
		cnf.Logger.ParsedSlogLevel = slog.LevelError
	default:
		cnf.Logger.ParsedSlogLevel = slog.LevelInfo
	}

	return cnf, nil
}

// MustLoad loads config from a file.
func MustLoad(configPath string) *Config {
	cnf, err := Load(configPath)
	if err != nil {
		panic(err)
	}

	return cnf
}
