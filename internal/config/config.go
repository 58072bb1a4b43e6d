// Package config centralises configuration parsing for the fitness tracker.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/feed"
)

// EnvPrefix is prepended to every environment variable, e.g. FITNESS_TRACKER_REPORT_WORKERS
const EnvPrefix = "FITNESS_TRACKER"

// Config captures runtime configuration values
type Config struct {
	LogFile       string // Empty logs to stderr
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	Locale      string
	Workers     int
	MetricsFile string // Empty disables the metrics textfile

	Sessions []feed.Package
}

// flag name -> config key
var flagKeys = map[string]string{
	"log-file":     "log.file",
	"locale":       "report.locale",
	"workers":      "report.workers",
	"metrics-file": "metrics.file",
}

// RegisterFlags adds the configuration flags to flags
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (yaml, json or toml) with settings and sessions")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("log-file", "", "rotate logs into this file instead of stderr")
	flags.String("locale", "en", "report language (en, ru)")
	flags.Int("workers", 1, "number of records summarized concurrently")
	flags.String("metrics-file", "", "write prometheus counters to this textfile after the run")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("report.locale", "en")
	v.SetDefault("report.workers", 1)
	v.SetDefault("metrics.file", "")
}

// Load reads defaults, the optional dotenv and config files, the environment
// and flags, in increasing order of precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (Config, error) {
	envFile := ".env"
	configFile := ""
	if flags != nil {
		if f := flags.Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := Config{
		LogFile:       v.GetString("log.file"),
		LogMaxSizeMB:  v.GetInt("log.max_size_mb"),
		LogMaxBackups: v.GetInt("log.max_backups"),
		LogMaxAgeDays: v.GetInt("log.max_age_days"),
		Locale:        v.GetString("report.locale"),
		Workers:       v.GetInt("report.workers"),
		MetricsFile:   v.GetString("metrics.file"),
	}

	if v.IsSet("sessions") {
		if err := v.UnmarshalKey("sessions", &cfg.Sessions); err != nil {
			return Config{}, fmt.Errorf("decode sessions: %w", err)
		}
	} else {
		cfg.Sessions = feed.Default()
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("report.workers must not be negative, got %d", c.Workers)
	}
	if c.LogMaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive, got %d", c.LogMaxSizeMB)
	}
	return nil
}
