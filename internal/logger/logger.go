package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Custom log levels to match the bash-style output of the original tooling.
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level.
var LevelVar = new(slog.LevelVar)

func init() {
	LevelVar.Set(LevelNotice)
}

// SetLevel changes the minimum level emitted to the console.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
}

// NewLogger builds the console logger. Colors are enabled only when stderr
// is a terminal.
func NewLogger() *slog.Logger {
	wStderr := os.Stderr

	stat, _ := wStderr.Stat()
	isTTY := (stat.Mode() & os.ModeCharDevice) != 0

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			switch level {
			case LevelTrace:
				a.Value = slog.StringValue("[TRACE ]")
			case LevelDebug:
				a.Value = slog.StringValue("[DEBUG ]")
			case LevelInfo:
				a.Value = slog.StringValue("[INFO  ]")
			case LevelNotice:
				a.Value = slog.StringValue("[NOTICE]")
			case LevelWarn:
				a.Value = slog.StringValue("[WARN  ]")
			case LevelError:
				a.Value = slog.StringValue("[ERROR ]")
			case LevelFatal:
				a.Value = slog.StringValue("[FATAL ]")
			default:
				a.Value = slog.StringValue("[" + level.String() + "]")
			}
		}
		return a
	}

	opts := &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttr,
	}
	return slog.New(tint.NewHandler(wStderr, opts))
}

// log formats msg with args when format specifiers are present and emits a
// record at the given level, one record per line for multi-line messages.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}
	now := time.Now()
	for _, line := range strings.Split(msg, "\n") {
		r := slog.NewRecord(now, level, line, 0)
		_ = h.Handle(ctx, r)
	}
}

func Trace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Fatal logs a message at FatalLevel and panics with FatalError so the main
// run loop can recover, clean up and exit non-zero.
func Fatal(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls.
// This allows the main run loop to recover and perform cleanup before exiting.
type FatalError struct{}
