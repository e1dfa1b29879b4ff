package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/de-tools/sales-atlas/pkg/services/loader"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALES_ATLAS"

type Config struct {
	Source loader.SourceConfig `mapstructure:"source"`
	Server ServerConfig        `mapstructure:"server"`
	Log    LogConfig           `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.kind", loader.KindHTTP)
	v.SetDefault("source.path", "")
	v.SetDefault("source.url", loader.DefaultDatasetURL)
	v.SetDefault("source.retries", 3)
	v.SetDefault("source.timeout", 30*time.Second)
	v.SetDefault("source.bucket", "")
	v.SetDefault("source.key", "")
	v.SetDefault("source.region", "")
	v.SetDefault("source.endpoint", "")
	v.SetDefault("source.anonymous", false)
	v.SetDefault("source.driver", "")
	v.SetDefault("source.dsn", "")
	v.SetDefault("source.table", "")
	v.SetDefault("source.csv", "")

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8050)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads the optional config file at path and applies SALES_ATLAS_*
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.Source.Kind == "" {
		errs = append(errs, "source.kind cannot be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid server.port %d: must be between 1 and 65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid server.shutdown_timeout %v: must be positive", c.Server.ShutdownTimeout))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log.level %q", c.Log.Level))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Sprintf("invalid log.format %q: must be json or console", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// NewLogger builds the root logger writing to w.
func (l LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if l.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
