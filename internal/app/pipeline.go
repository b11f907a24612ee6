package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jsamuelsen/tuxsay/internal/domain"
	"github.com/jsamuelsen/tuxsay/internal/platform/logging"
	"github.com/jsamuelsen/tuxsay/internal/textbox"
)

// Rendering Pattern: Validate → Load → Render → Write
//
// Failures are logged at debug only. The caller reports them to the user.
//
// Output is assembled in memory and written once, at the very end. A failure
// in any earlier step returns before a single byte reaches the writer, so a
// half-drawn box is never printed.
//
// The 4 Steps:
//   1. VALIDATE - Check the request and resolve defaults
//   2. LOAD     - Fetch the character art, then the message
//   3. RENDER   - Size the box to the terminal, wrap, and compose with the art
//   4. WRITE    - Emit the finished output in a single write

// Step names a stage of the rendering pipeline.
type Step string

const (
	StepValidate Step = "validate"
	StepLoad     Step = "load"
	StepRender   Step = "render"
	StepWrite    Step = "write"
)

// StepError records the step an error occurred in.
// Its message is the cause's message, so user-facing output stays unchanged.
type StepError struct {
	Step  Step
	Cause error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	if e.Cause == nil {
		return string(e.Step) + " failed"
	}

	return e.Cause.Error()
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *StepError) Unwrap() error {
	return e.Cause
}

// Scene is the message half of a rendering: the text and its attribution.
type Scene struct {
	Message     string
	Attribution string
}

// Operation describes one rendering.
type Operation struct {
	// Name identifies this operation for logging.
	Name string

	// Character names the art drawn below the box. Empty means the default.
	Character string

	// Validate optionally checks the request before anything is loaded.
	Validate func(ctx context.Context) error

	// Scene produces the message. Called after the art is loaded.
	Scene func(ctx context.Context) (Scene, error)
}

// execute runs op through the pipeline and writes the result to w.
func (s *Service) execute(ctx context.Context, w io.Writer, op Operation) error {
	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	// Step 1: Validate.
	character, err := s.runValidate(ctx, logger, op)
	if err != nil {
		return err
	}

	logger = logger.With(slog.String("character", character))

	// Step 2: Load.
	art, scene, err := s.runLoad(ctx, logger, op, character)
	if err != nil {
		return err
	}

	// Step 3: Render.
	out, err := s.runRender(ctx, logger, art, scene)
	if err != nil {
		return err
	}

	// Step 4: Write.
	logger.DebugContext(ctx, "writing output", slog.Int("bytes", out.Len()))

	if _, err := out.WriteTo(w); err != nil {
		logger.DebugContext(ctx, "write failed", slog.Any("error", err))

		return &StepError{Step: StepWrite, Cause: fmt.Errorf("writing output: %w", err)}
	}

	logger.InfoContext(ctx, "operation completed",
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// runValidate executes the validate step and returns the character to draw.
func (s *Service) runValidate(ctx context.Context, logger *slog.Logger, op Operation) (string, error) {
	logger.DebugContext(ctx, "starting validation")

	if err := ctx.Err(); err != nil {
		return "", &StepError{Step: StepValidate, Cause: err}
	}

	if op.Scene == nil {
		return "", &StepError{Step: StepValidate, Cause: domain.ErrMissingArgument}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx); err != nil {
			logger.DebugContext(ctx, "validation failed", slog.Any("error", err))

			return "", &StepError{Step: StepValidate, Cause: err}
		}
	}

	character := op.Character
	if character == "" {
		character = s.defaultCharacter
	}

	return character, nil
}

// runLoad executes the load step. Art comes first: an unknown character
// fails the run before the corpus is touched.
func (s *Service) runLoad(ctx context.Context, logger *slog.Logger, op Operation, character string) (*domain.Art, Scene, error) {
	logger.DebugContext(ctx, "loading character")

	art, err := s.art.LoadArt(ctx, character)
	if err != nil {
		logger.DebugContext(ctx, "character load failed", slog.Any("error", err))

		return nil, Scene{}, &StepError{Step: StepLoad, Cause: err}
	}

	scene, err := op.Scene(ctx)
	if err != nil {
		logger.DebugContext(ctx, "message load failed", slog.Any("error", err))

		return nil, Scene{}, &StepError{Step: StepLoad, Cause: err}
	}

	logger.DebugContext(ctx, "loaded",
		slog.Int("art_lines", len(art.Lines)),
		slog.Int("message_len", len(scene.Message)),
	)

	return art, scene, nil
}

// runRender executes the render step into an in-memory buffer.
func (s *Service) runRender(ctx context.Context, logger *slog.Logger, art *domain.Art, scene Scene) (*bytes.Buffer, error) {
	width := s.width.Resolve()

	layout, err := textbox.NewLayout(len(scene.Message), width, len(textbox.FitAttribution(scene.Attribution, width)))
	if err != nil {
		logger.DebugContext(ctx, "layout failed", slog.Int("terminal_width", width), slog.Any("error", err))

		return nil, &StepError{Step: StepRender, Cause: err}
	}

	logger.DebugContext(ctx, "rendering",
		slog.Int("terminal_width", width),
		slog.Int("box_width", layout.BoxWidth),
		slog.Int("content_width", layout.ContentWidth),
	)

	if logger.Enabled(ctx, logging.LevelTrace) {
		s.traceLines(ctx, logger, scene.Message, layout)
	}

	box, err := textbox.String(scene.Message, width, scene.Attribution)
	if err != nil {
		return nil, &StepError{Step: StepRender, Cause: err}
	}

	var out bytes.Buffer
	if err := Compose(&out, box, *art); err != nil {
		return nil, &StepError{Step: StepRender, Cause: err}
	}

	return &out, nil
}

// traceLines logs the length of every wrapped line. The text itself is
// user content and stays out of the logs.
func (s *Service) traceLines(ctx context.Context, logger *slog.Logger, message string, layout textbox.Layout) {
	lines, err := textbox.Wrap(message, layout.WrapWidth())
	if err != nil {
		return
	}

	i := 0
	for line := range lines {
		logger.Log(ctx, logging.LevelTrace, "wrapped line",
			slog.Int("line", i),
			slog.Int("line_len", len(line)),
		)
		i++
	}
}

// IsStepError checks if an error was raised by the rendering pipeline.
func IsStepError(err error) bool {
	var stepErr *StepError

	return errors.As(err, &stepErr)
}

// GetStep extracts the pipeline step from an error.
func GetStep(err error) (Step, bool) {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Step, true
	}

	return "", false
}
