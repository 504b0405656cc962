package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// File, when set, sends output to a size-rotated log file instead of
	// Writer. Used while an interactive program owns the terminal.
	File      string
	Layer     string
	Component string
}

// Logger wraps zerolog and implements ports.Logger.
type Logger struct {
	base   zerolog.Logger
	closer io.Closer
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	var closer io.Closer
	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		writer = rotating
		closer = rotating
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		console.NoColor = opts.File != ""
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	layer := opts.Layer
	if layer == "" {
		layer = "ui"
	}
	ctx = ctx.Str("layer", layer)
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}

	return &Logger{base: ctx.Logger(), closer: closer}, nil
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	return &Logger{base: builder.Logger(), closer: l.closer}
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. An "error" field holding an error value is
// rendered through zerolog's error marshaller.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Error(), msg, fields)
}

// With derives a new logger with persistent key/value fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return nil
	}
	builder := l.base.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		builder = builder.Interface(key, fields[i+1])
	}
	return &Logger{base: builder.Logger(), closer: l.closer}
}

// Close releases the rotating log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		switch value := fields[i+1].(type) {
		case error:
			if key == "error" {
				event = event.Err(value)
			} else {
				event = event.AnErr(key, value)
			}
		case string:
			event = event.Str(key, value)
		case int:
			event = event.Int(key, value)
		case bool:
			event = event.Bool(key, value)
		case time.Duration:
			event = event.Dur(key, value)
		default:
			event = event.Interface(key, value)
		}
	}
	event.Msg(msg)
}

var _ ports.Logger = (*Logger)(nil)
