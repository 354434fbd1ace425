package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	METRICS_ENDPOINT = "/metrics"
	HEALTH_ENDPOINT  = "/health"
)

// NewHandler serves the default Prometheus registry and a health check that fails
// while the facade is running on its no-op fallback.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(METRICS_ENDPOINT, promhttp.Handler())
	mux.HandleFunc(HEALTH_ENDPOINT, func(w http.ResponseWriter, r *http.Request) {
		if facade.Bound() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Not OK"))
		}
	})
	return mux
}

// StartMetricsServer serves metrics on port until ctx is cancelled.
func StartMetricsServer(ctx context.Context, port int) {
	logger := facade.GetLogger("logbind.metrics")
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting Prometheus metrics server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Prometheus metrics server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}()
}
