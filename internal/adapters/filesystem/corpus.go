package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen/tuxsay/internal/domain"
)

// Corpus defaults.
const (
	DefaultDelimiter = '#'
	DefaultMaxLength = 999
)

// QuoteCorpus reads fortunes from a single delimiter-separated file.
// The file is read on every call; nothing is cached.
type QuoteCorpus struct {
	fsys      fs.FS
	name      string
	path      string
	delimiter rune
	maxLength int
	author    string
}

// QuoteCorpusConfig contains configuration for the quote corpus.
type QuoteCorpusConfig struct {
	// FS holds the corpus. When nil, Path is opened on the OS filesystem.
	FS fs.FS

	// Path names the corpus file. Required.
	Path string

	// Delimiter separates entries. Defaults to '#'.
	Delimiter rune

	// MaxLength caps an entry in bytes. Defaults to DefaultMaxLength.
	MaxLength int

	// Author is attributed to every entry.
	Author string
}

// NewQuoteCorpus creates a quote corpus.
func NewQuoteCorpus(cfg QuoteCorpusConfig) *QuoteCorpus {
	c := &QuoteCorpus{
		fsys:      cfg.FS,
		name:      cfg.Path,
		path:      cfg.Path,
		delimiter: cfg.Delimiter,
		maxLength: cfg.MaxLength,
		author:    cfg.Author,
	}

	if c.fsys == nil {
		c.fsys = os.DirFS(filepath.Dir(cfg.Path))
		c.name = filepath.Base(cfg.Path)
	}

	if c.delimiter == 0 {
		c.delimiter = DefaultDelimiter
	}

	if c.maxLength <= 0 {
		c.maxLength = DefaultMaxLength
	}

	return c
}

// Quotes loads and parses every entry of the corpus.
func (c *QuoteCorpus) Quotes(ctx context.Context) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(c.fsys, c.name)
	if err != nil {
		return nil, domain.NewCorpusUnavailableError(c.path, unwrapPathError(err))
	}

	return c.parse(string(data)), nil
}

// parse splits data into quotes. Runs of delimiters yield no empty entries.
func (c *QuoteCorpus) parse(data string) []domain.Quote {
	raw := strings.FieldsFunc(data, func(r rune) bool { return r == c.delimiter })
	quotes := make([]domain.Quote, 0, len(raw))

	for _, entry := range raw {
		content := truncate(normalize(entry), c.maxLength)
		if content == "" {
			continue
		}

		quotes = append(quotes, domain.Quote{
			ID:      strconv.Itoa(len(quotes) + 1),
			Content: content,
			Author:  c.author,
		})
	}

	return quotes
}

// normalize collapses whitespace runs, newlines included, to single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return strings.TrimRight(s[:cut], " ")
}

// unwrapPathError drops the *fs.PathError wrapper, whose path is relative
// to the corpus FS and would repeat the configured path in messages.
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
