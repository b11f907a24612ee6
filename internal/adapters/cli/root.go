package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/tuxsay/internal/app"
	"github.com/jsamuelsen/tuxsay/internal/domain"
	"github.com/jsamuelsen/tuxsay/internal/platform/logging"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// Renderer is the application service driven by the CLI.
type Renderer interface {
	Say(ctx context.Context, w io.Writer, req app.SayRequest) error
	Fortune(ctx context.Context, w io.Writer, character string) error
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// Options configures the root command.
type Options struct {
	// Renderer handles the request. Required.
	Renderer Renderer

	Build BuildInfo

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer

	// NewInvocationID defaults to random UUIDs.
	NewInvocationID func() string
}

// UsageError marks an error caused by the command line itself.
// The usage text is printed after its message.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError checks if an error was caused by bad arguments.
func IsUsageError(err error) bool {
	var usageErr *UsageError

	return errors.As(err, &usageErr)
}

const longHelp = `Draw a speech box holding a message above an ASCII art character.

The box is sized to half the terminal width (COLUMNS, default 80) and long
messages are word-wrapped. With --fortune a random quote is drawn from the
quotes file instead of a message.

Only the first argument selects the mode. A first argument that starts with
"-" but is not one of the flags below is drawn as the message; put "--" first
to draw a flag name literally.`

const examples = `  tuxsay "Hello, world"
  tuxsay "Hello, world" cow
  tuxsay --fortune
  tuxsay --fortune gopher
  tuxsay "-5 degrees outside"
  tuxsay -- --fortune`

// NewRootCommand builds the tuxsay command.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Renderer == nil {
		panic("cli: Options.Renderer is required")
	}

	opts = withDefaults(opts)

	var fortune bool

	cmd := &cobra.Command{
		Use:     "tuxsay [--fortune | <message>] [<character>]",
		Short:   "Draw a speech box above an ASCII art character",
		Long:    longHelp,
		Example: examples,
		Version: fmt.Sprintf("%s (commit %s, built %s)", opts.Build.Version, opts.Build.Commit, opts.Build.BuildTime),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &UsageError{Err: err}
			}

			if fortune && len(args) > 1 {
				return &UsageError{Err: fmt.Errorf("--fortune accepts at most one character, received %d arguments", len(args))}
			}

			if !fortune && len(args) == 0 {
				return &UsageError{Err: domain.ErrMissingArgument}
			}

			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.WithInvocationID(cmd.Context(), opts.NewInvocationID())
			out := cmd.OutOrStdout()

			if fortune {
				ctx = logging.WithCommand(ctx, "fortune")

				return opts.Renderer.Fortune(ctx, out, argAt(args, 0))
			}

			ctx = logging.WithCommand(ctx, "say")

			return opts.Renderer.Say(ctx, out, app.SayRequest{
				Message:   args[0],
				Character: argAt(args, 1),
			})
		},
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	cmd.Flags().BoolVarP(&fortune, "fortune", "f", false, "draw a random quote instead of a message")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// Run executes the command with args and returns the process exit code.
// Errors are reported on stderr.
func Run(ctx context.Context, opts Options, args []string) (code int) {
	opts = withDefaults(opts)

	defer recoverPanic(ctx, opts.Stderr, &code)

	cmd := NewRootCommand(opts)
	cmd.SetArgs(messageArgs(cmd, args))

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	logging.FromContext(ctx).DebugContext(ctx, "command failed", slog.Any("error", err))

	fmt.Fprintf(opts.Stderr, "error: %v\n", err)

	if IsUsageError(err) {
		fmt.Fprint(opts.Stderr, cmd.UsageString())
	}

	return ExitError
}

func withDefaults(opts Options) Options {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if opts.NewInvocationID == nil {
		opts.NewInvocationID = uuid.NewString
	}

	if opts.Build.Version == "" {
		opts.Build.Version = "dev"
	}

	if opts.Build.Commit == "" {
		opts.Build.Commit = "unknown"
	}

	if opts.Build.BuildTime == "" {
		opts.Build.BuildTime = "unknown"
	}

	return opts
}

// messageArgs ends flag parsing before a first argument that looks like a
// flag but names none of cmd's flags, so "-5 degrees" is a message.
func messageArgs(cmd *cobra.Command, args []string) []string {
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") || isFlag(cmd, args[0]) {
		return args
	}

	return append([]string{"--"}, args...)
}

// isFlag reports whether arg is "--" or names one of cmd's flags,
// including the help and version flags cobra adds.
func isFlag(cmd *cobra.Command, arg string) bool {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	flags := cmd.Flags()

	switch {
	case arg == "--":
		return true
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")

		return flags.Lookup(name) != nil
	case len(arg) == 2:
		return flags.ShorthandLookup(arg[1:]) != nil
	default:
		return false
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
