package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "tuxsay",
			Version:     "1.0.0",
			Environment: "local",
		},
		Terminal: TerminalConfig{
			WidthEnv:     "COLUMNS",
			DefaultWidth: 80,
		},
		Characters: CharactersConfig{
			Dir:       "./characters",
			Default:   "tux",
			Extension: ".txt",
		},
		Fortune: FortuneConfig{
			Corpus:    "quotes.txt",
			Delimiter: "#",
			MaxLength: 999,
			Author:    "Linus Torvalds",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "pretty",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "staging"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment")
		assert.Contains(t, err.Error(), "must be one of")
	})
}

func TestConfig_Validate_ValidEnvironments(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod", "test"} {
		t.Run(env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = env

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_TerminalConfig(t *testing.T) {
	t.Run("default width below minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Terminal.DefaultWidth = 9

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "terminal.defaultwidth must be at least 10")
	})

	t.Run("missing width variable", func(t *testing.T) {
		cfg := validConfig()
		cfg.Terminal.WidthEnv = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "terminal.widthenv is required")
	})
}

func TestConfig_Validate_CharactersConfig(t *testing.T) {
	t.Run("default character with a path separator", func(t *testing.T) {
		cfg := validConfig()
		cfg.Characters.Default = "../tux"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "characters.default must not contain any of")
	})

	t.Run("extension without a dot", func(t *testing.T) {
		cfg := validConfig()
		cfg.Characters.Extension = "txt"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `characters.extension must start with "."`)
	})

	t.Run("negative max lines", func(t *testing.T) {
		cfg := validConfig()
		cfg.Characters.MaxLines = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "characters.maxlines must be at least 0")
	})
}

func TestConfig_Validate_FortuneConfig(t *testing.T) {
	t.Run("multi-character delimiter", func(t *testing.T) {
		cfg := validConfig()
		cfg.Fortune.Delimiter = "%%"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fortune.delimiter must be exactly 1 character(s) long")
	})

	t.Run("zero max length", func(t *testing.T) {
		cfg := validConfig()
		cfg.Fortune.MaxLength = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fortune.maxlength")
	})

	t.Run("author is optional", func(t *testing.T) {
		cfg := validConfig()
		cfg.Fortune.Author = ""

		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				cfg := validConfig()
				cfg.Log.Level = level

				assert.NoError(t, cfg.Validate())
			})
		}
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("invalid file level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Level = "verbose"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.level")
	})

	t.Run("empty file level follows the console", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Level = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("file enabled without path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when")
	})
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Fortune.Corpus = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "app.name")
	assert.Contains(t, err.Error(), "fortune.corpus")
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "fortune.maxlength", formatFieldPath("Config.Fortune.MaxLength"))
	assert.Equal(t, "name", formatFieldPath("Name"))
}
