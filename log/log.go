package log

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Attr adds a field to a logger context.
type Attr func(l zerolog.Context) zerolog.Context

func Scope(s string) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("s", s)
	}
}

// Op names the container operation being logged.
func Op(op string) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str("op", op)
	}
}

func Str(key, val string) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Str(key, val)
	}
}

func Int(key string, val int) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int(key, val)
	}
}

func Int64(key string, val int64) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Int64(key, val)
	}
}

// Elapsed records a duration in milliseconds.
func Elapsed(dur time.Duration) Attr {
	return func(l zerolog.Context) zerolog.Context {
		return l.Dur("elapsed_ms", dur)
	}
}

// Logger is a scoped wrapper around [zerolog.Logger].
type Logger struct {
	zl *zerolog.Logger
}

// New returns a logger derived from the global logger with the given scope.
func New(scope string) *Logger {
	return Ctx(context.Background()).With(Scope(scope))
}

// Ctx returns the logger stored in ctx, or the global logger.
func Ctx(ctx context.Context) *Logger {
	return &Logger{zl: zerolog.Ctx(ctx)}
}

// With returns a child logger with attrs added.
func (l *Logger) With(attrs ...Attr) *Logger {
	c := l.zl.With()
	for _, attr := range attrs {
		c = attr(c)
	}

	zl := c.Logger()

	return &Logger{zl: &zl}
}

// WithContext returns a copy of ctx carrying the logger.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zl.WithContext(ctx)
}

// Unwrap returns the underlying zerolog logger.
func (l *Logger) Unwrap() *zerolog.Logger {
	return l.zl
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.zl.GetLevel() <= level && zerolog.GlobalLevel() <= level
}

func (l *Logger) Trace(msg string) {
	l.zl.Trace().Timestamp().Msg(msg)
}

func (l *Logger) Tracef(msg string, args ...any) {
	l.zl.Trace().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Debug(msg string) {
	l.zl.Debug().Timestamp().Msg(msg)
}

func (l *Logger) Debugf(msg string, args ...any) {
	l.zl.Debug().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Info(msg string) {
	l.zl.Info().Timestamp().Msg(msg)
}

func (l *Logger) Infof(msg string, args ...any) {
	l.zl.Info().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Warn(msg string) {
	l.zl.Warn().Timestamp().Msg(msg)
}

func (l *Logger) Warnf(msg string, args ...any) {
	l.zl.Warn().Timestamp().Msgf(msg, args...)
}

func (l *Logger) Error(err error, msg string) {
	l.zl.Error().Err(err).Timestamp().Msg(msg)
}

func (l *Logger) Errorf(err error, msg string, args ...any) {
	l.zl.Error().Err(err).Timestamp().Msgf(msg, args...)
}

// InitGlobals builds the process logger and installs it as the fallback for [New] and [Ctx].
func InitGlobals(level zerolog.Level, json, noColor bool) *zerolog.Logger {
	var l zerolog.Logger
	if json {
		l = zerolog.New(os.Stderr)
	} else {
		w := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
			w.NoColor = noColor
			w.TimeFormat = time.DateTime
		})
		l = zerolog.New(w)
	}

	l = l.Level(level)
	zerolog.DefaultContextLogger = &l

	return &l
}
