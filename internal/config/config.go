// Package config resolves CLI settings from a YAML file, a .env file and
// JAYSON_* environment variables. Command-line flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	jayson "github.com/reoring/jayson"
	"github.com/reoring/jayson/codegen"
	"github.com/reoring/jayson/i18n"
)

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = ".jayson.yaml"

// DefaultEnvFile is read when no .env path is given and the file exists.
const DefaultEnvFile = ".env"

const envPrefix = "JAYSON_"

// Config holds every setting the CLI understands.
type Config struct {
	Language      string `yaml:"language"`
	LogLevel      string `yaml:"log_level"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxBytes      int64  `yaml:"max_bytes"`
	DuplicateKeys string `yaml:"duplicate_keys"`
	Target        string `yaml:"target"`
	Export        string `yaml:"export"`
	AssertFormats bool   `yaml:"assert_formats"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Language:      "en",
		LogLevel:      "warn",
		DuplicateKeys: "ignore",
		Target:        string(codegen.TypeScript),
		Export:        string(codegen.ExportNamed),
	}
}

// Loader reads configuration sources in increasing precedence: defaults,
// YAML file, .env file, process environment.
type Loader struct {
	// File is the YAML config path. Empty means DefaultFile when present.
	File string
	// EnvFile is the dotenv path. Empty means DefaultEnvFile when present.
	EnvFile string
	// LookupEnv reads the process environment; nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load resolves the configuration.
func (l Loader) Load() (Config, error) {
	cfg := Default()

	if err := l.readYAML(&cfg); err != nil {
		return cfg, err
	}
	dotenv, err := l.readDotenv()
	if err != nil {
		return cfg, err
	}
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		if v, ok := lookup(envPrefix + key); ok {
			return v, true
		}
		v, ok := dotenv[envPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return cfg, err
	}
	return cfg, cfg.Check()
}

func (l Loader) readYAML(cfg *Config) error {
	path, explicit := l.File, l.File != ""
	if !explicit {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func (l Loader) readDotenv() (map[string]string, error) {
	path, explicit := l.EnvFile, l.EnvFile != ""
	if !explicit {
		path = DefaultEnvFile
	}
	m, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return m, nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("LANGUAGE", &c.Language)
	str("LOG_LEVEL", &c.LogLevel)
	str("DUPLICATE_KEYS", &c.DuplicateKeys)
	str("TARGET", &c.Target)
	str("EXPORT", &c.Export)

	if v, ok := get("MAX_DEPTH"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sMAX_DEPTH: %w", envPrefix, err)
		}
		c.MaxDepth = n
	}
	if v, ok := get("MAX_BYTES"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sMAX_BYTES: %w", envPrefix, err)
		}
		c.MaxBytes = n
	}
	if v, ok := get("ASSERT_FORMATS"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sASSERT_FORMATS: %w", envPrefix, err)
		}
		c.AssertFormats = b
	}
	return nil
}

// Check reports the first setting that cannot be used.
func (c Config) Check() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if _, err := c.ParseOpt(); err != nil {
		return err
	}
	if _, err := c.CodegenOptions(); err != nil {
		return err
	}
	if c.MaxDepth < 0 || c.MaxBytes < 0 {
		return errors.New("config: max_depth and max_bytes must not be negative")
	}
	return nil
}

// SlogLevel maps log_level onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// ParseOpt builds the decoding options.
func (c Config) ParseOpt() (jayson.ParseOpt, error) {
	sev, err := jayson.ParseSeverity(c.DuplicateKeys)
	if err != nil {
		return jayson.ParseOpt{}, fmt.Errorf("config: duplicate_keys: %w", err)
	}
	return jayson.ParseOpt{
		Strictness: jayson.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
	}, nil
}

// ValidateOpt builds the validation options.
func (c Config) ValidateOpt() jayson.ValidateOpt {
	return jayson.ValidateOpt{AssertFormats: c.AssertFormats, Translator: i18n.ForLanguage(c.Language)}
}

// CodegenOptions builds the type emitter options.
func (c Config) CodegenOptions() (codegen.Options, error) {
	t, err := codegen.ParseTarget(c.Target)
	if err != nil {
		return codegen.Options{}, fmt.Errorf("config: target: %w", err)
	}
	e, err := codegen.ParseExport(c.Export)
	if err != nil {
		return codegen.Options{}, fmt.Errorf("config: export: %w", err)
	}
	return codegen.Options{Target: t, Export: e}, nil
}
