package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Chart   ChartConfig   `yaml:"chart" mapstructure:"chart"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// DatasetConfig locates the launch records file.
type DatasetConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"`
	Sheet  string `yaml:"sheet" mapstructure:"sheet"`
	Table  string `yaml:"table" mapstructure:"table"`

	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}

// Comma returns the CSV field separator, or 0 for the reader default.
func (d DatasetConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port        int      `yaml:"port" mapstructure:"port"`
	CORSOrigins []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst   int      `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// ChartConfig sets the size of rendered chart images.
type ChartConfig struct {
	Width  int `yaml:"width" mapstructure:"width"`
	Height int `yaml:"height" mapstructure:"height"`
}

// CacheConfig configures the rendered chart cache.
type CacheConfig struct {
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
	TTLMinutes int `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

var validFormats = map[string]bool{"auto": true, "csv": true, "xlsx": true, "sqlite": true}

// Validate checks that the fields a command needs are present and sane.
// mode is one of "serve" or "chart".
func (c *Config) Validate(mode string) error {
	var errs []error

	switch mode {
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, fmt.Errorf("server.port must be > 0 and <= 65535, got %d", c.Server.Port))
		}
		if c.Server.RateLimit < 0 {
			errs = append(errs, errors.New("server.rate_limit must be >= 0"))
		}
		if c.Cache.MaxEntries < 0 {
			errs = append(errs, errors.New("cache.max_entries must be >= 0"))
		}
		if c.Cache.MaxEntries > 0 && c.Cache.TTLMinutes <= 0 {
			errs = append(errs, errors.New("cache.ttl_minutes must be > 0 when the cache is enabled"))
		}
	case "chart":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Dataset.Path == "" {
		errs = append(errs, errors.New("dataset.path is required"))
	}
	if c.Dataset.Format != "" && !validFormats[c.Dataset.Format] {
		errs = append(errs, fmt.Errorf("dataset.format must be one of auto, csv, xlsx, sqlite, got %q", c.Dataset.Format))
	}
	if d := c.Dataset.Delimiter; d != "" {
		if utf8.RuneCountInString(d) != 1 || strings.ContainsAny(d, "\r\n\"") || d == string(utf8.RuneError) {
			errs = append(errs, fmt.Errorf("dataset.delimiter must be a single character other than quote or newline, got %q", d))
		}
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		errs = append(errs, errors.New("chart.width and chart.height must be >= 0"))
	}

	if len(errs) > 0 {
		return eris.Wrap(errors.Join(errs...), "config: validate")
	}
	return nil
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LAUNCHDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.path", "spacex_launch_dash.csv")
	v.SetDefault("dataset.format", "auto")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("dataset.table", "launches")
	v.SetDefault("dataset.delimiter", ",")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 500)
	v.SetDefault("cache.max_entries", 256)
	v.SetDefault("cache.ttl_minutes", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
