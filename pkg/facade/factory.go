package facade

import (
	"reflect"
	"sync"
	"sync/atomic"

	"git.famapp.in/fampay-inc/logbind/pkg/logger"
	"git.famapp.in/fampay-inc/logbind/pkg/metrics"
)

var (
	mu           sync.Mutex
	initOnce     = new(sync.Once)
	initialized  atomic.Bool
	loggerBinder LoggerFactoryBinder
	mdcBinder    MDCBinder

	// Written once inside initOnce, read-only afterwards.
	factory         LoggerFactory
	factoryTypeName string
	mdcAdapter      MDCAdapter
	mdcTypeName     string
	scopeBinder     MDCBinder
	bound           bool

	reporter = logger.New(logger.Config{Level: "info", Component: "logbind.facade"})
)

// RegisterLoggerBinder sets the binder consulted on the first logging call.
func RegisterLoggerBinder(b LoggerFactoryBinder) error {
	if isNil(b) {
		return ErrNilBinder
	}
	mu.Lock()
	defer mu.Unlock()
	if initialized.Load() {
		return ErrAlreadyInitialized
	}
	loggerBinder = b
	return nil
}

// RegisterMDCBinder sets the binder that supplies the facade's context adapter.
func RegisterMDCBinder(b MDCBinder) error {
	if isNil(b) {
		return ErrNilBinder
	}
	mu.Lock()
	defer mu.Unlock()
	if initialized.Load() {
		return ErrAlreadyInitialized
	}
	mdcBinder = b
	return nil
}

// isNil also catches typed nil pointers wrapped in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// SetReporter replaces the logger used for the facade's own diagnostics.
func SetReporter(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = logger.Nop()
	}
	reporter = l
}

// Reset drops registrations and cached backend objects. Must not race with logging calls.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	initOnce = new(sync.Once)
	initialized.Store(false)
	loggerBinder, mdcBinder = nil, nil
	factory, factoryTypeName = nil, ""
	mdcAdapter, mdcTypeName = nil, ""
	scopeBinder = nil
	bound = false
}

func ensureInitialized() {
	mu.Lock()
	once := initOnce
	mu.Unlock()
	once.Do(performInitialization)
}

// performInitialization calls into the binders without holding mu, so a binder may
// use SetReporter while it resolves. Logging through the facade from inside a binder
// still blocks on initOnce.
func performInitialization() {
	metrics.Register()

	mu.Lock()
	lb, mb, rep := loggerBinder, mdcBinder, reporter
	mu.Unlock()

	var (
		f           LoggerFactory
		fName       string
		adapter     MDCAdapter
		adapterName string
	)

	if lb == nil {
		rep.Warn("no logger binding registered, defaulting to no-operation logger")
		metrics.FacadeFallbacks.WithLabelValues("logger").Inc()
		f, fName = nopFactory{}, nopFactoryTypeName
	} else {
		versionSanityCheck(rep, lb.RequestedAPIVersion())
		f, fName = lb.LoggerFactory(), lb.LoggerFactoryTypeName()
		rep.Debug("logger binding resolved", "factory", fName)
	}

	if mb == nil {
		rep.Warn("no context adapter binding registered, defaulting to no-operation adapter")
		metrics.FacadeFallbacks.WithLabelValues("mdc").Inc()
		adapter, adapterName = nopMDCAdapter{}, nopMDCTypeName
	} else {
		adapter, adapterName = mb.MDCAdapter(), mb.MDCAdapterTypeName()
		rep.Debug("context adapter binding resolved", "adapter", adapterName)
	}

	mu.Lock()
	defer mu.Unlock()
	factory, factoryTypeName = f, fName
	mdcAdapter, mdcTypeName = adapter, adapterName
	scopeBinder = mb
	bound = lb != nil
	initialized.Store(true)
}

func versionSanityCheck(rep *logger.Logger, requested string) {
	if requested == "" {
		rep.Debug("logger binding does not declare an API version")
		return
	}
	if IsCompatible(requested) {
		return
	}
	metrics.VersionMismatches.Inc()
	rep.Warn("logger binding was built for an incompatible facade version",
		"requested_version", requested,
		"compatible_versions", compatibleVersions,
		"facade_version", APIVersion,
	)
}

// GetLoggerFactory returns the factory in use, resolving the binding on first call.
func GetLoggerFactory() LoggerFactory {
	ensureInitialized()
	return factory
}

// GetLogger returns the named logger from the bound factory.
func GetLogger(name string) Logger {
	return GetLoggerFactory().Logger(name)
}

// BoundFactoryTypeName is the backend factory's type name, or the no-op one.
func BoundFactoryTypeName() string {
	ensureInitialized()
	return factoryTypeName
}

// BoundMDCAdapterTypeName is the backend context adapter's type name, or the no-op one.
func BoundMDCAdapterTypeName() string {
	ensureInitialized()
	return mdcTypeName
}

// Bound reports whether logging reaches a real backend rather than the no-op fallback.
func Bound() bool {
	ensureInitialized()
	return bound
}
