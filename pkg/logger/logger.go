package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the facade's own diagnostic channel. It never goes through a binding,
// so problems with the binding itself can still be reported.
type Logger struct {
	zl zerolog.Logger
}

// Config defines the logger configuration
type Config struct {
	Level     string
	Component string
	NoColor   bool
	Output    io.Writer
}

// New creates a new logger with the provided configuration
func New(cfg Config) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	loggerContext := zerolog.New(NewLogfmtWriter(writer, cfg.NoColor)).Level(level).With().Timestamp()
	if cfg.Component != "" {
		loggerContext = loggerContext.Str("component", cfg.Component)
	}

	return &Logger{zl: loggerContext.Logger()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With returns a new logger with the provided key/value pair
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string, keyVals ...any) {
	event := l.zl.Debug()
	addFields(event, keyVals...)
	event.Msg(msg)
}

func (l *Logger) Info(msg string, keyVals ...any) {
	event := l.zl.Info()
	addFields(event, keyVals...)
	event.Msg(msg)
}

func (l *Logger) Warn(msg string, keyVals ...any) {
	event := l.zl.Warn()
	addFields(event, keyVals...)
	event.Msg(msg)
}

// Error logs an error message with an optional cause
func (l *Logger) Error(msg string, err error, keyVals ...any) {
	event := l.zl.Error()
	if err != nil {
		event = event.Err(err)
	}
	addFields(event, keyVals...)
	event.Msg(msg)
}

// addFields adds key value pairs to the event
func addFields(event *zerolog.Event, keyVals ...any) {
	if event == nil {
		return
	}
	if len(keyVals)%2 != 0 {
		event.Interface("UNPAIRED_KEY_VALUE", keyVals)
		return
	}

	for i := 0; i < len(keyVals); i += 2 {
		key, ok := keyVals[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyVals[i])
		}
		event.Interface(key, keyVals[i+1])
	}
}

const (
	// Color codes for terminal output
	Blue  = 34
	Green = 32
	Cyan  = 36
)

func colorize(key, val string, code int, noColor bool) string {
	if noColor {
		return key + "=" + val
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m=%s", code, key, val)
}

// NewLogfmtWriter renders zerolog events as key=value lines.
func NewLogfmtWriter(writer io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:     writer,
		NoColor: noColor,
		FormatTimestamp: func(i any) string {
			s, _ := i.(string)
			t, err := time.Parse(zerolog.TimeFieldFormat, s)
			if err != nil {
				return colorize("time", s, Blue, noColor)
			}
			return colorize("time", t.Format("2006-01-02T15:04:05.999"), Blue, noColor)
		},
		FormatLevel: func(i any) string {
			s, _ := i.(string)
			return colorize("level", s, Blue, noColor)
		},
		FormatMessage: func(i any) string {
			s, _ := i.(string)
			if s == "" {
				return ""
			}
			return colorize("msg", s, Green, noColor)
		},
		FormatFieldName: func(i any) string {
			s, _ := i.(string)
			return colorize(s, "", Cyan, noColor)
		},
		FormatFieldValue: func(i any) string {
			switch v := i.(type) {
			case string:
				return v
			case nil:
				return "null"
			default:
				return fmt.Sprintf("%v", v)
			}
		},
	}
}
