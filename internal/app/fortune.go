package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen/tuxsay/internal/domain"
	"github.com/jsamuelsen/tuxsay/internal/platform/logging"
	"github.com/jsamuelsen/tuxsay/internal/ports"
)

// NewRand returns a generator seeded from the wall clock.
// Call it once per process.
func NewRand() *rand.Rand {
	now := time.Now()

	return rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))) //nolint:gosec // fortunes are not secrets
}

// Select picks one quote uniformly at random.
// A nil rng uses the global generator.
func Select(quotes []domain.Quote, rng *rand.Rand) (domain.Quote, error) {
	if len(quotes) == 0 {
		return domain.Quote{}, domain.ErrEmptyCorpus
	}

	var i int
	if rng != nil {
		i = rng.IntN(len(quotes))
	} else {
		i = rand.IntN(len(quotes)) //nolint:gosec // fortunes are not secrets
	}

	return quotes[i], nil
}

// FortuneService draws random quotes from a corpus.
// It depends on the corpus port, not on how the corpus is stored.
type FortuneService struct {
	corpus ports.QuoteCorpus
	rng    *rand.Rand
	logger *slog.Logger
}

// FortuneServiceConfig contains configuration for the fortune service.
type FortuneServiceConfig struct {
	Corpus ports.QuoteCorpus
	Rand   *rand.Rand
	Logger *slog.Logger
}

// NewFortuneService creates a new fortune service. It panics if no corpus is given.
func NewFortuneService(cfg FortuneServiceConfig) *FortuneService {
	if cfg.Corpus == nil {
		panic("app: FortuneServiceConfig.Corpus is required")
	}

	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FortuneService{
		corpus: cfg.Corpus,
		rng:    rng,
		logger: logger,
	}
}

// RandomFortune loads the corpus and returns one of its quotes.
// The corpus is read on every call.
func (s *FortuneService) RandomFortune(ctx context.Context) (domain.Quote, error) {
	logger := logging.FromContextOr(ctx, s.logger)
	logger.DebugContext(ctx, "loading quote corpus")

	quotes, err := s.corpus.Quotes(ctx)
	if err != nil {
		logger.DebugContext(ctx, "failed to load quote corpus",
			slog.Any("error", err),
		)

		return domain.Quote{}, err
	}

	quote, err := Select(quotes, s.rng)
	if err != nil {
		logger.DebugContext(ctx, "quote corpus is empty")

		return domain.Quote{}, err
	}

	logger.InfoContext(ctx, "selected fortune",
		slog.String("quote_id", quote.ID),
		slog.Int("corpus_size", len(quotes)),
	)

	return quote, nil
}
