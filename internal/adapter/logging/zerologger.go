package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"homework-bot/internal/domain/ports"
)

// ZeroLogger is an adapter around zerolog.Logger implementing ports.Logger.
type ZeroLogger struct {
	logger zerolog.Logger
}

var _ ports.Logger = (*ZeroLogger)(nil)

// New creates a new ZeroLogger.
func New(logger zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{logger: logger}
}

// NewZerolog builds the process logger: console lines on stdout and plain
// JSON lines in logFile, which is truncated on every start. The returned
// func closes the file.
func NewZerolog(logFile, level string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	writers := []io.Writer{consoleWriter(os.Stdout)}
	cleanup := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		cleanup = func() { _ = f.Close() }
	}

	return Build(zerolog.MultiLevelWriter(writers...), lvl), cleanup, nil
}

// NewConsole builds a console-only logger at debug level, used while the
// configured logger is not available yet.
func NewConsole(out io.Writer) zerolog.Logger {
	return Build(consoleWriter(out), zerolog.DebugLevel)
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: "2006-01-02 15:04:05"}
}

// Build attaches timestamp and caller to every event written to w.
// Caller points at the code that called the ports.Logger method.
func Build(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + 2).
		Logger()
}

// Debug logs a diagnostic message.
func (l *ZeroLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.DebugLevel, msg, args)
}

// Info logs an informational message.
func (l *ZeroLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.InfoLevel, msg, args)
}

// Warn logs a warning.
func (l *ZeroLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.WarnLevel, msg, args)
}

// Error logs an error message.
func (l *ZeroLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.ErrorLevel, msg, args)
}

// Fatal logs at fatal level. Unlike zerolog's Fatal it does not call os.Exit.
func (l *ZeroLogger) Fatal(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.FatalLevel, msg, args)
}

func (l *ZeroLogger) log(ctx context.Context, level zerolog.Level, msg string, args []any) {
	ev := l.logger.WithLevel(level).Ctx(ctx)
	if len(args) > 0 {
		ev = ev.Fields(normalizeArgs(args))
	}
	ev.Msg(msg)
}

// normalizeArgs turns slog-style key/value args into zerolog fields.
// Errors are stringified so the console writer prints them; an odd trailing
// value is kept under "!BADKEY".
func normalizeArgs(args []any) []any {
	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			out = append(out, "!BADKEY", args[i])
			break
		}
		key := fmt.Sprint(args[i])
		val := args[i+1]
		if err, ok := val.(error); ok && err != nil {
			val = err.Error()
		}
		out = append(out, key, val)
	}
	return out
}
