package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/jsamuelsen/tuxsay/internal/platform/logging"
)

// recoverPanic turns a panic anywhere below Run into a diagnostic and a
// failing exit code. On panic, it:
//   - Logs the value with the full stack trace at ERROR level
//   - Prints "error: internal error" to stderr
//   - Sets *code to ExitError
//
// It must be deferred directly by Run.
func recoverPanic(ctx context.Context, stderr io.Writer, code *int) {
	r := recover()
	if r == nil {
		return
	}

	logging.FromContext(ctx).ErrorContext(ctx, "panic recovered",
		slog.Any("error", r),
		slog.String("stack", string(debug.Stack())),
	)

	fmt.Fprintln(stderr, "error: internal error")

	*code = ExitError
}
