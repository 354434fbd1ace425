package binding

import (
	"git.famapp.in/fampay-inc/logbind/pkg/backend/zapbackend"
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"git.famapp.in/fampay-inc/logbind/pkg/metrics"
)

// StaticMDCBinder hands the facade context adapters from the zap backend.
type StaticMDCBinder struct {
	adapterTypeName string
}

var _ facade.MDCBinder = (*StaticMDCBinder)(nil)

var mdcBinder = newSingleton(newStaticMDCBinder)

// GetMDCBinder returns the process-wide binder, constructing it on first call.
func GetMDCBinder() *StaticMDCBinder {
	return mdcBinder.get()
}

func newStaticMDCBinder() *StaticMDCBinder {
	metrics.Register()
	metrics.BindersConstructed.WithLabelValues("mdc").Inc()
	return &StaticMDCBinder{adapterTypeName: typeName((*zapbackend.MDCAdapter)(nil))}
}

// MDCAdapter returns a fresh, independent adapter on every call.
func (b *StaticMDCBinder) MDCAdapter() facade.MDCAdapter {
	metrics.MDCAdaptersCreated.Inc()
	return zapbackend.NewMDCAdapter()
}

func (b *StaticMDCBinder) MDCAdapterTypeName() string {
	return b.adapterTypeName
}
