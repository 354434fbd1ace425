package binding

import (
	"git.famapp.in/fampay-inc/logbind/internal/config"
	"git.famapp.in/fampay-inc/logbind/pkg/backend/zapbackend"
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"git.famapp.in/fampay-inc/logbind/pkg/metrics"
	"github.com/pkg/errors"
)

// RequestedAPIVersion is the facade version this binding was built against.
// It is a var so release tooling can stamp it with -ldflags.
var RequestedAPIVersion = "1.7.0"

// StaticLoggerBinder exposes the zap backend factory to the facade.
// It is immutable once constructed.
type StaticLoggerBinder struct {
	loggerFactory         *zapbackend.LoggerFactory
	loggerFactoryTypeName string
}

var _ facade.LoggerFactoryBinder = (*StaticLoggerBinder)(nil)

var loggerBinder = newSingleton(func() *StaticLoggerBinder {
	return newStaticLoggerBinder(resolveLoggerFactory)
})

// GetLoggerBinder returns the process-wide binder, constructing it on first call.
// It panics if the backend factory cannot be built, and keeps panicking on
// every later call.
func GetLoggerBinder() *StaticLoggerBinder {
	return loggerBinder.get()
}

func resolveLoggerFactory() (*zapbackend.LoggerFactory, error) {
	cfg, err := config.Shared()
	if err != nil {
		return nil, err
	}
	return zapbackend.NewLoggerFactory(cfg)
}

func newStaticLoggerBinder(resolve func() (*zapbackend.LoggerFactory, error)) *StaticLoggerBinder {
	f, err := resolve()
	if err != nil {
		panic(errors.Wrap(err, "logbind: failed to resolve backend logger factory"))
	}
	if f == nil {
		panic(errors.New("logbind: backend logger factory resolved to nil"))
	}

	metrics.Register()
	metrics.BindersConstructed.WithLabelValues("logger").Inc()

	return &StaticLoggerBinder{
		loggerFactory:         f,
		loggerFactoryTypeName: typeName(f),
	}
}

// LoggerFactory always returns the same backend factory.
func (b *StaticLoggerBinder) LoggerFactory() facade.LoggerFactory {
	return b.loggerFactory
}

func (b *StaticLoggerBinder) LoggerFactoryTypeName() string {
	return b.loggerFactoryTypeName
}

func (b *StaticLoggerBinder) RequestedAPIVersion() string {
	return RequestedAPIVersion
}

// Sync flushes the backend; call it before the process exits.
func (b *StaticLoggerBinder) Sync() error {
	return b.loggerFactory.Sync()
}
