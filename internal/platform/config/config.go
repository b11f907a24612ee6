// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "TUXSAY_"

// Default configuration values.
const (
	// DefaultTerminalWidth is used when the width hint is missing or invalid.
	DefaultTerminalWidth = 80

	// DefaultCharacter is rendered when no character is named.
	DefaultCharacter = "tux"

	// DefaultQuoteMaxLength caps a single corpus entry, in bytes.
	DefaultQuoteMaxLength = 999

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 10

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `koanf:"app"        validate:"required"`
	Terminal   TerminalConfig   `koanf:"terminal"   validate:"required"`
	Characters CharactersConfig `koanf:"characters" validate:"required"`
	Fortune    FortuneConfig    `koanf:"fortune"    validate:"required"`
	Log        LogConfig        `koanf:"log"        validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev prod test"`
}

// TerminalConfig controls how the box width is derived.
type TerminalConfig struct {
	WidthEnv     string `koanf:"width_env"     validate:"required"`
	DefaultWidth int    `koanf:"default_width" validate:"required,min=10"`
	Detect       bool   `koanf:"detect"`
}

// CharactersConfig locates the ASCII art files.
type CharactersConfig struct {
	Dir       string `koanf:"dir"       validate:"required"`
	Default   string `koanf:"default"   validate:"required,excludesall=/\\"`
	Extension string `koanf:"extension" validate:"required,startswith=."`
	MaxLines  int    `koanf:"max_lines" validate:"min=0"`
}

// FortuneConfig locates and parses the quote corpus.
type FortuneConfig struct {
	Corpus    string `koanf:"corpus"     validate:"required"`
	Delimiter string `koanf:"delimiter"  validate:"required,len=1"`
	MaxLength int    `koanf:"max_length" validate:"required,min=1"`
	Author    string `koanf:"author"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	Level      string `koanf:"level"       validate:"omitempty,oneof=trace debug info warn error"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "tuxsay",
		"app.version":     "dev",
		"app.environment": "local",

		"terminal.width_env":     "COLUMNS",
		"terminal.default_width": DefaultTerminalWidth,
		"terminal.detect":        false,

		"characters.dir":       "./characters",
		"characters.default":   DefaultCharacter,
		"characters.extension": ".txt",
		"characters.max_lines": 0,

		"fortune.corpus":     "quotes.txt",
		"fortune.delimiter":  "#",
		"fortune.max_length": DefaultQuoteMaxLength,
		"fortune.author":     "Linus Torvalds",

		"log.level":            "warn",
		"log.format":           "pretty",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/tuxsay.log",
		"log.file.level":       "debug",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (TUXSAY_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, dir+"/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("%s/%s.yaml", dir, profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with TUXSAY_ prefix
	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps TUXSAY_FORTUNE_MAX__LENGTH to fortune.max_length:
// a single underscore separates levels, a double one is kept literally.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	s = strings.ReplaceAll(s, "__", "\x00")
	s = strings.ReplaceAll(s, "_", ".")

	return strings.ReplaceAll(s, "\x00", "_")
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
