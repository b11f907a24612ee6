package logging

import (
	"context"
	"errors"
	"log/slog"
)

// sink is one destination of a teeHandler with its own minimum level.
type sink struct {
	handler slog.Handler
	level   slog.Leveler
}

func (s sink) enabled(ctx context.Context, level slog.Level) bool {
	return level >= s.level.Level() && s.handler.Enabled(ctx, level)
}

// teeHandler copies each record to every sink whose level admits it.
// The console and the rolling file are separate sinks, so the file can
// record debug detail of a run while stderr only shows warnings.
type teeHandler struct {
	sinks []sink
}

func newTeeHandler(sinks ...sink) *teeHandler {
	return &teeHandler{sinks: sinks}
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range h.sinks {
		if s.enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, s := range h.sinks {
		if !s.enabled(ctx, r.Level) {
			continue
		}

		if err := s.handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *teeHandler) derive(fn func(slog.Handler) slog.Handler) *teeHandler {
	sinks := make([]sink, len(h.sinks))
	for i, s := range h.sinks {
		sinks[i] = sink{handler: fn(s.handler), level: s.level}
	}

	return newTeeHandler(sinks...)
}
