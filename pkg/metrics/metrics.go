package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	BindersConstructed *prometheus.CounterVec
	LoggersCreated     *prometheus.CounterVec
	MDCAdaptersCreated prometheus.Counter
	VersionMismatches  prometheus.Counter
	FacadeFallbacks    *prometheus.CounterVec
)

// Register is idempotent; the binding and the facade call it before touching any collector.
func Register() {
	once.Do(func() {
		BindersConstructed = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logbind_binders_constructed_total",
				Help: "Total number of binder singletons constructed",
			},
			[]string{"binder"},
		)

		LoggersCreated = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logbind_loggers_created_total",
				Help: "Total number of named logger handles created by the backend",
			},
			[]string{"backend"},
		)

		MDCAdaptersCreated = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "logbind_mdc_adapters_created_total",
				Help: "Total number of context adapters handed out by the binding",
			},
		)

		VersionMismatches = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "logbind_version_mismatch_total",
				Help: "Total number of incompatible binder versions seen by the facade",
			},
		)

		FacadeFallbacks = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logbind_facade_fallback_total",
				Help: "Total number of times the facade defaulted to a no-op implementation",
			},
			[]string{"kind"},
		)
	})
}
