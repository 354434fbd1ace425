package zapbackend

import (
	"fmt"

	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a named *zap.Logger to facade.Logger.
type Logger struct {
	*zap.Logger
}

var _ facade.Logger = (*Logger)(nil)

func (l *Logger) Infof(format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.Logger.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Desugar() *zap.Logger {
	return l.Logger
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, convertToZapFields(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, convertToZapFields(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, convertToZapFields(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, convertToZapFields(keysAndValues)...)
}

// With returns a child logger; the receiver is left untouched.
func (l *Logger) With(keysAndValues ...any) facade.Logger {
	return &Logger{Logger: l.Logger.With(convertToZapFields(keysAndValues)...)}
}

// IntegerLevelEncoder returns custom encoder for level field.
func IntegerLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendInt8((int8(l) + 3) * 10)
}

func convertToZapFields(keysAndValues []any) []zap.Field {
	if len(keysAndValues) == 0 {
		return nil
	}
	fields := make([]zap.Field, 0, (len(keysAndValues)+1)/2)
	length := len(keysAndValues)
	for i := 0; i < length; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		var val any
		if i+1 < length {
			val = keysAndValues[i+1]
		} else {
			val = "<missing>"
		}
		fields = append(fields, zap.Any(key, val))
	}
	return fields
}
