// Package config loads the command line and server settings.
//
// Sources, later ones winning:
//
//  1. Default()
//  2. a YAML file (optional)
//  3. dotenv files, then the process environment, under the WORKSHEET_ prefix
//  4. command-line flags, applied by the caller after Load
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nobu-k/100-math-sub004/internal/logging"
	"github.com/nobu-k/100-math-sub004/render"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "WORKSHEET_"

// DefaultDotEnv is the dotenv file read when present.
const DefaultDotEnv = ".env"

// ErrInvalid indicates a setting that failed validation.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full settings tree.
type Config struct {
	Server       Server `yaml:"server" envPrefix:"SERVER_"`
	Log          Log    `yaml:"log" envPrefix:"LOG_"`
	Render       Render `yaml:"render" envPrefix:"RENDER_"`
	DefaultTopic string `yaml:"default_topic" env:"DEFAULT_TOPIC"`
}

// Server configures the preview server.
type Server struct {
	Addr         string        `yaml:"addr" env:"ADDR"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// Render holds output defaults.
type Render struct {
	Format  string `yaml:"format" env:"FORMAT"`
	Answers bool   `yaml:"answers" env:"ANSWERS"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log:          Log{Level: "info", Format: string(logging.FormatText)},
		Render:       Render{Format: render.FormatMarkdown},
		DefaultTopic: worksheet.TopicDivision,
	}
}

// Loader describes where settings come from.
type Loader struct {
	// File is an optional YAML file; a missing file is an error.
	File string
	// DotEnv files are read when present; missing ones are skipped.
	DotEnv []string
	// Environ is the process environment in KEY=VALUE form. It overrides
	// DotEnv values.
	Environ []string
}

// Load reads File, DotEnv and the process environment on top of Default.
func Load(file string) (Config, error) {
	return Loader{File: file, DotEnv: []string{DefaultDotEnv}, Environ: os.Environ()}.Load()
}

// Load applies every source and validates the result.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	if l.File != "" {
		data, err := os.ReadFile(l.File)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", l.File, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", l.File, err)
		}
	}

	vars := map[string]string{}
	for _, name := range l.DotEnv {
		if _, err := os.Stat(name); errors.Is(err, os.ErrNotExist) {
			continue
		}
		m, err := godotenv.Read(name)
		if err != nil {
			return Config{}, fmt.Errorf("config: dotenv %s: %w", name, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for k, v := range env.ToMap(l.Environ) {
		vars[k] = v
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix, Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown names and clamps timeouts to at least a second.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if _, ok := logging.ParseFormat(c.Log.Format); !ok {
		errs = append(errs, fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format))
	}
	if _, err := render.ByName(c.Render.Format); err != nil {
		errs = append(errs, fmt.Errorf("%w: render.format: %v", ErrInvalid, err))
	}
	if _, ok := worksheet.Default().Lookup(c.DefaultTopic); !ok {
		errs = append(errs, fmt.Errorf("%w: default_topic %q", ErrInvalid, c.DefaultTopic))
	}
	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("%w: server.addr is empty", ErrInvalid))
	}
	c.Server.ReadTimeout = max(c.Server.ReadTimeout, time.Second)
	c.Server.WriteTimeout = max(c.Server.WriteTimeout, time.Second)

	return errors.Join(errs...)
}

// Logging returns the logging.Config the settings describe.
func (c Config) Logging() logging.Config {
	level, _ := logging.ParseLevel(c.Log.Level)
	format, _ := logging.ParseFormat(c.Log.Format)
	return logging.Config{Level: level, Format: format}
}
