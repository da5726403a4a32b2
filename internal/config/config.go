package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
}

// InputConfig controls how the input table is parsed.
type InputConfig struct {
	Delimiter  string `yaml:"delimiter" mapstructure:"delimiter"`
	Charset    string `yaml:"charset" mapstructure:"charset"`
	Sheet      string `yaml:"sheet" mapstructure:"sheet"`
	// Comment starts a CSV line that is skipped. Empty disables comments.
	Comment    string `yaml:"comment" mapstructure:"comment"`
	LazyQuotes bool   `yaml:"lazy_quotes" mapstructure:"lazy_quotes"`
	TrimSpace  bool   `yaml:"trim_space" mapstructure:"trim_space"`
}

// OutputConfig controls how results are written.
type OutputConfig struct {
	// ScorePrecision is the number of decimals written for Topsis_Score.
	// -1 writes the shortest representation that round-trips.
	ScorePrecision int `yaml:"score_precision" mapstructure:"score_precision"`
}

// FetchConfig configures downloads when the input is an http(s) URL.
type FetchConfig struct {
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int     `yaml:"max_retries" mapstructure:"max_retries"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// ServerConfig configures the HTTP scoring server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RatePerSec     float64  `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TOPSIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.charset", "")
	v.SetDefault("input.sheet", "")
	v.SetDefault("input.comment", "")
	v.SetDefault("input.lazy_quotes", false)
	v.SetDefault("input.trim_space", false)
	v.SetDefault("output.score_precision", -1)
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.user_agent", "topsis/1.0")
	v.SetDefault("fetch.rate_per_sec", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_per_sec", 20)
	v.SetDefault("server.max_body_bytes", 1<<20)

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

// Validate checks the settings needed by the given command mode
// ("rank" or "serve").
func (c *Config) Validate(mode string) error {
	var errs []string

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}

	switch mode {
	case "rank":
		if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
			errs = append(errs, fmt.Sprintf("input.delimiter must be a single character, got %q", c.Input.Delimiter))
		}
		if c.Input.Comment != "" {
			if utf8.RuneCountInString(c.Input.Comment) != 1 {
				errs = append(errs, fmt.Sprintf("input.comment must be empty or a single character, got %q", c.Input.Comment))
			} else if c.Input.Comment == c.Input.Delimiter {
				errs = append(errs, "input.comment must differ from input.delimiter")
			}
		}
		if c.Output.ScorePrecision < -1 {
			errs = append(errs, "output.score_precision must be >= -1")
		}
		if c.Fetch.TimeoutSecs <= 0 {
			errs = append(errs, "fetch.timeout_secs must be > 0")
		}
		if c.Fetch.MaxRetries <= 0 {
			errs = append(errs, "fetch.max_retries must be > 0")
		}
		if c.Fetch.RatePerSec <= 0 {
			errs = append(errs, "fetch.rate_per_sec must be > 0")
		}
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be between 1 and 65535")
		}
		if c.Server.RatePerSec <= 0 {
			errs = append(errs, "server.rate_per_sec must be > 0")
		}
		if c.Server.MaxBodyBytes <= 0 {
			errs = append(errs, "server.max_body_bytes must be > 0")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown mode %q", mode))
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter.
func (c InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CommentRune returns the configured CSV comment character, or 0 when
// comments are disabled.
func (c InputConfig) CommentRune() rune {
	if c.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Comment)
	return r
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
