// Package config loads finpulse settings from TOML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/score"
)

// Environment overrides, applied after the config file.
const (
	EnvDB      = "FINPULSE_DB"
	EnvMonths  = "FINPULSE_MONTHS"
	EnvFormula = "FINPULSE_FORMULA"
)

// Config holds all finpulse configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Feedback   FeedbackConfig   `toml:"feedback"`
	Daemon     DaemonConfig     `toml:"daemon"`
	TUI        TUIConfig        `toml:"tui"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Months           int    `toml:"months"`
	TransactionLimit int    `toml:"transaction_limit"`
	DBPath           string `toml:"db_path,omitempty"`
	Formula          string `toml:"formula"`
}

// FeedbackConfig holds tip and badge thresholds.
type FeedbackConfig struct {
	TipThreshold       float64 `toml:"tip_threshold"`
	DepositBadgeTotal  string  `toml:"deposit_badge_total"`
	DepositBadgeDays   int     `toml:"deposit_badge_days"`
	CurrencyBadgeCount int     `toml:"currency_badge_count"`
}

// DaemonConfig holds settings for the background HTTP daemon.
type DaemonConfig struct {
	Addr         string `toml:"addr"`
	IntervalSec  int    `toml:"interval_sec"`
	EventsBuffer int    `toml:"events_buffer"`
}

// TUIConfig holds dashboard settings.
type TUIConfig struct {
	AutoRefresh        bool `toml:"auto_refresh"`
	RefreshIntervalSec int  `toml:"refresh_interval_sec"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Months:           6,
			TransactionLimit: 0,
			Formula:          string(score.FormulaWellness),
		},
		Feedback: FeedbackConfig{
			TipThreshold:       50,
			DepositBadgeTotal:  "1000",
			DepositBadgeDays:   4,
			CurrencyBadgeCount: 3,
		},
		Daemon: DaemonConfig{
			Addr:         "127.0.0.1:8743",
			IntervalSec:  30,
			EventsBuffer: 200,
		},
		TUI: TUIConfig{
			AutoRefresh:        true,
			RefreshIntervalSec: 60,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finpulse")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finpulse")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies environment overrides. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
func Load() (Config, error) {
	return LoadFrom(ConfigPath(), ".env")
}

// LoadFrom is Load with explicit file locations. An empty envFile skips the
// .env step.
func LoadFrom(path, envFile string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvDB)); v != "" {
		cfg.General.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMonths)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMonths, err)
		}
		cfg.General.Months = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormula)); v != "" {
		cfg.General.Formula = v
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating parent directories.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user config path
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// ScoreFormula resolves the configured formula name.
func (c Config) ScoreFormula() (score.Formula, error) {
	return score.ByName(c.General.Formula)
}

// FeedbackRules converts the feedback section into engine rules. Missing or
// invalid values fall back to the defaults.
func (c Config) FeedbackRules() feedback.Rules {
	rules := feedback.DefaultRules()
	fc := c.Feedback
	if fc.TipThreshold > 0 {
		rules.TipThreshold = fc.TipThreshold
	}
	if d, err := decimal.NewFromString(strings.TrimSpace(fc.DepositBadgeTotal)); err == nil && d.IsPositive() {
		rules.DepositBadgeTotal = d
	}
	if fc.DepositBadgeDays > 0 {
		rules.DepositBadgeDays = fc.DepositBadgeDays
	}
	if fc.CurrencyBadgeCount > 0 {
		rules.CurrencyBadgeCount = fc.CurrencyBadgeCount
	}
	return rules
}
