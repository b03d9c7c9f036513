package metrics

import (
	"net/http"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.GetOrCreate("metrics")

var (
	// Renders - number of successfully rendered views
	Renders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "btcbot",
		Name:      "renders_total",
		Help:      "Number of successfully rendered views",
	})

	// RenderErrors - number of render cycles aborted by an error
	RenderErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "btcbot",
		Name:      "render_errors_total",
		Help:      "Number of render cycles aborted by an error",
	})

	// BalanceFailures - number of balance lookups that collapsed to Failed
	BalanceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "btcbot",
		Name:      "balance_failures_total",
		Help:      "Number of balance lookups that failed",
	})
)

// StartServer - exposes /metrics on the given address. Does nothing when the
// address is empty.
func StartServer(addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		err := http.ListenAndServe(addr, mux)
		if err != nil {
			log.Error("metrics server stopped", "error", err)
		}
	}()

	log.Info("metrics server listening", "address", addr)
}
