// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation
//   - Return domain types, never file handles or raw bytes
//   - Error returns use domain error types (ErrArtNotFound, ErrCorpusUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// ArtStore looks up ASCII art characters by name.
//
// Example usage in application layer:
//
//	type Service struct {
//	    art ports.ArtStore
//	}
//
//	func NewService(art ports.ArtStore) *Service {
//	    return &Service{art: art}
//	}
type ArtStore interface {
	// LoadArt returns the art of the named character.
	// Returns domain.ErrArtNotFound if no such character exists and
	// domain.ErrValidation if name is not a plain character name.
	LoadArt(ctx context.Context, name string) (*domain.Art, error)

	// List returns the names of all available characters, sorted.
	List(ctx context.Context) ([]string, error)
}

// QuoteCorpus provides the entries fortunes are drawn from.
type QuoteCorpus interface {
	// Quotes loads every entry of the corpus in file order.
	// Returns domain.ErrCorpusUnavailable if the corpus cannot be read.
	// An empty result is not an error; selection reports domain.ErrEmptyCorpus.
	Quotes(ctx context.Context) ([]domain.Quote, error)
}

// WidthResolver reports the terminal width the speech box is sized against.
// Implementations never fail; they fall back to a default width.
type WidthResolver interface {
	Resolve() int
}
