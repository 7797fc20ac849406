// Package obslog configures the evaluator's structured logging sink,
// grounded on sqldef's util.InitSlog: log/slog driven by a LOG_LEVEL
// environment variable. redis.log(...) is routed through the interpreter's
// *slog.Logger, so it is a real (if low-volume) sink rather than a bare
// no-op. The CLI does not build a logger from this package; its --verbose
// flag is not connected to it.
package obslog

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// RedisLevel mirrors the redis.LOG_* constants (§4.4) so callers can map
// a script's redis.log(level, ...) call onto a slog.Level without the
// evaluator importing log/slog itself.
type RedisLevel int

const (
	LogDebug RedisLevel = iota
	LogVerbose
	LogNotice
	LogWarning
)

func (l RedisLevel) slogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogVerbose:
		return slog.LevelInfo
	case LogNotice:
		return slog.LevelInfo
	case LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// New builds a *slog.Logger from the LOG_LEVEL environment variable
// (debug|info|warn|error, default info), the same lookup sqldef's
// InitSlog performs, writing to w.
func New(w *os.File) *slog.Logger {
	level := slog.LevelInfo
	if raw, ok := os.LookupEnv("LOG_LEVEL"); ok {
		switch strings.ToLower(raw) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard is a logger that drops everything; used where a script's host
// environment has no log sink configured (e.g. library/test use of eval
// without a CLI).
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// RedisLog renders a redis.log(level, message...) call through logger at
// the level the RedisLevel maps to.
func RedisLog(logger *slog.Logger, level RedisLevel, message string) {
	logger.Log(context.Background(), level.slogLevel(), message, slog.Int("redis_level", int(level)))
}
