// Package main is the entry point for tuxsay.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/jsamuelsen/tuxsay/internal/adapters/cli"
	"github.com/jsamuelsen/tuxsay/internal/adapters/filesystem"
	"github.com/jsamuelsen/tuxsay/internal/app"
	"github.com/jsamuelsen/tuxsay/internal/platform/config"
	"github.com/jsamuelsen/tuxsay/internal/platform/logging"
	"github.com/jsamuelsen/tuxsay/internal/platform/terminal"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Load and validate configuration (fail fast)
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "PROFILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		return cli.ExitError
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid config: %v\n", err)
		return cli.ExitError
	}

	// 2. Initialize logging (stderr; stdout carries the box)
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			Level:      cfg.Log.File.Level,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)
	ctx = logging.WithContext(ctx, logger)

	logger.Debug("starting",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Create adapters
	artStore := filesystem.NewArtStore(filesystem.ArtStoreConfig{
		FS:        os.DirFS(cfg.Characters.Dir),
		Extension: cfg.Characters.Extension,
		MaxLines:  cfg.Characters.MaxLines,
	})

	delimiter, _ := utf8.DecodeRuneInString(cfg.Fortune.Delimiter)
	corpus := filesystem.NewQuoteCorpus(filesystem.QuoteCorpusConfig{
		Path:      cfg.Fortune.Corpus,
		Delimiter: delimiter,
		MaxLength: cfg.Fortune.MaxLength,
		Author:    cfg.Fortune.Author,
	})

	width := terminal.Resolver{
		EnvVar:  cfg.Terminal.WidthEnv,
		Default: cfg.Terminal.DefaultWidth,
	}
	if cfg.Terminal.Detect {
		width.Probe = terminal.StdoutProbe
	}

	// 4. Create application services
	svc := app.NewService(app.ServiceConfig{
		ArtStore: artStore,
		Fortunes: app.NewFortuneService(app.FortuneServiceConfig{
			Corpus: corpus,
			Logger: logger,
		}),
		Width:            width,
		DefaultCharacter: cfg.Characters.Default,
		Logger:           logger,
	})

	// 5. Dispatch the command line
	return cli.Run(ctx, cli.Options{
		Renderer: svc,
		Build:    cli.BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime},
	}, os.Args[1:])
}
