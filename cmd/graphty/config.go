package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/style"
)

// EnvPrefix prefixes environment overrides, e.g. GRAPHTY_LOG_LEVEL.
const EnvPrefix = "GRAPHTY"

// Config is the content of graphty.yaml.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Telemetry struct {
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"telemetry"`
	Parallelism int `mapstructure:"parallelism"`

	// Algorithms is the default template when no -a or --template is given.
	Algorithms []algorithm.Invocation `mapstructure:"algorithms"`

	// Styles are composed after the suggested styles of the run algorithms.
	Styles []StyleConfig `mapstructure:"styles"`
}

// StyleConfig is a custom descriptor whose mapping is a CEL expression.
type StyleConfig struct {
	Name   string   `mapstructure:"name"`
	Target string   `mapstructure:"target"`
	Inputs []string `mapstructure:"inputs"`
	Output string   `mapstructure:"output"`
	Expr   string   `mapstructure:"expr"`
}

// Descriptor compiles the expression.
func (s StyleConfig) Descriptor() (style.Descriptor, error) {
	m, err := style.CELMapping(s.Expr)
	if err != nil {
		return style.Descriptor{}, fmt.Errorf("style %q: %w", s.Name, err)
	}
	d := style.Descriptor{
		Name:    s.Name,
		Target:  style.Target(s.Target),
		Inputs:  s.Inputs,
		Output:  s.Output,
		Mapping: m,
	}

	return d, d.Validate()
}

// loadConfig reads file, or ./graphty.yaml when file is empty; a missing
// default file is not an error.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("parallelism", 1)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("graphty")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// newLogger builds a text or JSON slog handler at the configured level.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: unknown log format %q", format)
	}
}
