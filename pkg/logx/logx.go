// Package logx is the process-wide logger. It keeps the call sites short
// (logx.Infof, logx.Errorf) while emitting structured records through slog.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn and error. Unknown values map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	SetOutput(os.Stderr, false)
}

// SetLevel changes the minimum level for all subsequent records
func SetLevel(l Level) {
	level.Set(l.slog())
}

// SetOutput redirects logs. json selects the JSON handler.
func SetOutput(w io.Writer, json bool) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logger.Store(slog.New(h))
}

// With returns a slog logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return logger.Load().With(args...)
}

func log(l slog.Level, msg string) {
	logger.Load().Log(context.Background(), l, msg)
}

func Debug(msg string)                  { log(slog.LevelDebug, msg) }
func Debugf(format string, args ...any) { log(slog.LevelDebug, fmt.Sprintf(format, args...)) }
func Info(msg string)                   { log(slog.LevelInfo, msg) }
func Infof(format string, args ...any)  { log(slog.LevelInfo, fmt.Sprintf(format, args...)) }
func Warn(msg string)                   { log(slog.LevelWarn, msg) }
func Warnf(format string, args ...any)  { log(slog.LevelWarn, fmt.Sprintf(format, args...)) }
func Error(msg string)                  { log(slog.LevelError, msg) }
func Errorf(format string, args ...any) { log(slog.LevelError, fmt.Sprintf(format, args...)) }
