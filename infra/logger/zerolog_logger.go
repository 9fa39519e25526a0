package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and output format of every logger created by New.
type Options struct {
	// Level is a zerolog level name; empty keeps "info".
	Level string
	// Format is "json" or "console"; empty follows APP_ENV.
	Format string
	// Output defaults to stderr so command results on stdout stay clean.
	Output io.Writer
}

var (
	mu   sync.RWMutex
	opts Options
)

// Setup installs opts for loggers created afterwards and sets the global
// zerolog level.
func Setup(o Options) error {
	level := zerolog.InfoLevel
	if o.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(o.Level))
		if err != nil {
			return fmt.Errorf("logging level: %w", err)
		}
		level = l
	}
	switch strings.ToLower(o.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown logging format %q", o.Format)
	}
	zerolog.SetGlobalLevel(level)
	mu.Lock()
	opts = o
	mu.Unlock()
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. All logs include the provided
// component field.
func NewZerologLogger(component string) Logger {
	mu.RLock()
	o := opts
	mu.RUnlock()

	out := o.Output
	if out == nil {
		out = os.Stderr
	}
	format := strings.ToLower(o.Format)
	if format == "" && strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		format = "console"
	}
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
