package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// DefaultArtExtension is appended to a character name to form its file name.
const DefaultArtExtension = ".txt"

// ArtStore loads ASCII art from "<name><ext>" files in a directory.
type ArtStore struct {
	fsys     fs.FS
	ext      string
	maxLines int
}

// ArtStoreConfig contains configuration for the art store.
type ArtStoreConfig struct {
	// FS is the directory holding the art files. Required.
	FS fs.FS

	// Extension defaults to DefaultArtExtension.
	Extension string

	// MaxLines caps the number of lines read per character. Zero means no limit.
	MaxLines int
}

// NewArtStore creates an art store. It panics if cfg.FS is nil.
func NewArtStore(cfg ArtStoreConfig) *ArtStore {
	if cfg.FS == nil {
		panic("filesystem: ArtStoreConfig.FS is required")
	}

	ext := cfg.Extension
	if ext == "" {
		ext = DefaultArtExtension
	}

	return &ArtStore{
		fsys:     cfg.FS,
		ext:      ext,
		maxLines: max(cfg.MaxLines, 0),
	}
}

// LoadArt reads the art of the named character.
func (s *ArtStore) LoadArt(ctx context.Context, name string) (*domain.Art, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := s.fsys.Open(name + s.ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// A listing failure only costs the hint in the message.
			available, _ := s.List(ctx)
			return nil, domain.NewArtNotFoundError(name, available...)
		}

		return nil, fmt.Errorf("opening character %q: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f, s.maxLines)
	if err != nil {
		return nil, fmt.Errorf("reading character %q: %w", name, err)
	}

	return &domain.Art{Name: name, Lines: lines}, nil
}

// List returns the sorted names of all characters in the store.
func (s *ArtStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name, ok := strings.CutSuffix(entry.Name(), s.ext)
		if !ok || name == "" {
			continue
		}

		names = append(names, name)
	}

	slices.Sort(names)

	return names, nil
}

// validateName accepts a single path element only.
func validateName(name string) error {
	switch {
	case name == "":
		return domain.NewValidationError("character", "is required")
	case name == "." || !fs.ValidPath(name) || strings.ContainsAny(name, `/\`):
		return domain.NewValidationErrorWithValue("character", "must be a plain name, not a path", name)
	}

	return nil
}

// readLines splits r into lines, keeping each line's terminator.
// A final line without a terminator is returned as is.
func readLines(r io.Reader, limit int) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string

	for limit == 0 || len(lines) < limit {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}
	}

	return lines, nil
}
