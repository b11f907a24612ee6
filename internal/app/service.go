// Package app contains application services that orchestrate use cases.
// This is the application layer - it coordinates the text box engine and
// the character and corpus adapters through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (say, fortune)
//   - Resolve defaults such as the character to draw
//   - Handle cross-cutting concerns (logging)
//
// What does NOT belong here:
//   - Flag parsing and exit codes (that's the CLI adapter)
//   - File formats (that's the filesystem adapter)
//   - Box layout and wrapping (that's the textbox package)
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/jsamuelsen/tuxsay/internal/platform/terminal"
	"github.com/jsamuelsen/tuxsay/internal/ports"
)

// DefaultCharacter is drawn when a request names none.
const DefaultCharacter = "tux"

var errNoFortunes = errors.New("no quote corpus configured")

// Service renders messages and fortunes above ASCII art characters.
//
// Example usage:
//
//	// In main.go
//	art := filesystem.NewArtStore(filesystem.ArtStoreConfig{FS: os.DirFS("characters")})
//	svc := app.NewService(app.ServiceConfig{ArtStore: art, Fortunes: fortunes})
//
//	// In the CLI
//	err := svc.Say(ctx, os.Stdout, app.SayRequest{Message: "hello"})
type Service struct {
	art              ports.ArtStore
	fortunes         *FortuneService
	width            ports.WidthResolver
	defaultCharacter string
	logger           *slog.Logger
}

// ServiceConfig contains the dependencies of the service.
type ServiceConfig struct {
	// ArtStore provides the characters. Required.
	ArtStore ports.ArtStore

	// Fortunes provides random quotes. Required for Fortune only.
	Fortunes *FortuneService

	// Width sizes the box. Defaults to the COLUMNS variable, then 80.
	Width ports.WidthResolver

	// DefaultCharacter defaults to DefaultCharacter.
	DefaultCharacter string

	Logger *slog.Logger
}

// SayRequest is a literal message to render.
type SayRequest struct {
	Message   string
	Character string
}

// NewService creates a new application service. It panics without an art store.
func NewService(cfg ServiceConfig) *Service {
	if cfg.ArtStore == nil {
		panic("app: ServiceConfig.ArtStore is required")
	}

	var width ports.WidthResolver = terminal.Resolver{}
	if cfg.Width != nil {
		width = cfg.Width
	}

	character := cfg.DefaultCharacter
	if character == "" {
		character = DefaultCharacter
	}

	logger := slog.Default()
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &Service{
		art:              cfg.ArtStore,
		fortunes:         cfg.Fortunes,
		width:            width,
		defaultCharacter: character,
		logger:           logger.With(slog.String("component", "app.Service")),
	}
}

// Say renders req.Message above the requested character and writes it to w.
// Nothing is written when an error is returned.
func (s *Service) Say(ctx context.Context, w io.Writer, req SayRequest) error {
	return s.execute(ctx, w, Operation{
		Name:      "say",
		Character: req.Character,
		Scene: func(context.Context) (Scene, error) {
			return Scene{Message: req.Message}, nil
		},
	})
}

// Fortune renders a random quote, credited to its author, above the
// character and writes it to w. Nothing is written when an error is returned.
func (s *Service) Fortune(ctx context.Context, w io.Writer, character string) error {
	return s.execute(ctx, w, Operation{
		Name:      "fortune",
		Character: character,
		Validate: func(context.Context) error {
			if s.fortunes == nil {
				return errNoFortunes
			}

			return nil
		},
		Scene: func(ctx context.Context) (Scene, error) {
			quote, err := s.fortunes.RandomFortune(ctx)
			if err != nil {
				return Scene{}, err
			}

			return Scene{Message: quote.Content, Attribution: quote.Attribution()}, nil
		},
	})
}
