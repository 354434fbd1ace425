// Package facade is the logging API application code depends on. It performs no
// formatting or routing itself: a backend is plugged in through a binder registered
// at startup, and until one is registered every call falls through to a no-op.
//
//	binding.Install()
//	log := facade.GetLogger("payments")
//	log.Info("charge accepted", "amount", 100)
package facade

import "github.com/pkg/errors"

var (
	ErrNilBinder          = errors.New("facade: nil binder")
	ErrAlreadyInitialized = errors.New("facade: already initialized, register binders before the first logging call")
	ErrEmptyKey           = errors.New("facade: context key must not be empty")
)

// Logger is a named logging handle. keysAndValues are alternating key/value pairs.
type Logger interface {
	Name() string
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// With returns a child logger carrying the given pairs on every entry.
	With(keysAndValues ...any) Logger
}

// LoggerFactory hands out named loggers. Implementations must be safe for concurrent use.
type LoggerFactory interface {
	Logger(name string) Logger
}

// MDCAdapter stores diagnostic context as string pairs.
type MDCAdapter interface {
	Put(key, val string)
	Get(key string) (string, bool)
	Remove(key string)
	Clear()
	// CopyOfContextMap returns a copy the caller may mutate, or nil when empty.
	CopyOfContextMap() map[string]string
	// SetContextMap replaces the whole context; nil clears it.
	SetContextMap(m map[string]string)
}

// LoggerFactoryBinder connects the facade to a backend logger factory.
// LoggerFactory must return the same instance on every call.
type LoggerFactoryBinder interface {
	LoggerFactory() LoggerFactory
	LoggerFactoryTypeName() string
	RequestedAPIVersion() string
}

// MDCBinder connects the facade to a backend context adapter.
type MDCBinder interface {
	MDCAdapter() MDCAdapter
	MDCAdapterTypeName() string
}
