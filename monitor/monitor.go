package monitor

import (
	"context"
	"fmt"
	"net/http"

	// expose profiling endpoints on the monitoring server
	_ "net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Config for the monitoring server
type Config struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

var (
	// LedgerOperations counts processed balance operations by kind and result
	LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buz_ledger_operations_total",
		Help: "Number of processed ledger operations",
	}, []string{"kind", "result"})

	// ConservationFailures counts reconcile runs that detected divergence
	ConservationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buz_ledger_conservation_failures_total",
		Help: "Number of supply reconciliations that detected divergence",
	})

	// APIRequestQueue tracks in-flight mutating API requests
	APIRequestQueue = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "buz_ledger_api_request_queue",
		Help: "Number of in flight mutating API requests",
	}, []string{"method"})

	// StakingPositionsMatured counts positions flipped by the maturity sweep
	StakingPositionsMatured = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buz_ledger_staking_positions_matured_total",
		Help: "Number of staking positions matured by the sweep",
	})
)

var monitoringServer *http.Server

// LoopProfilingServer starts the metrics and profiling server when enabled
func LoopProfilingServer(cfg Config) {
	if !cfg.Enabled {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	monitoringServer = &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port)}

	log.Info().Str("section", "monitor").Int("port", cfg.Port).Msg("Monitoring server started")
	if err := monitoringServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Str("section", "monitor").Msg("Monitoring server stopped unexpectedly")
	}
}

// ShutdownServer stops the monitoring server if it was started
func ShutdownServer() {
	if monitoringServer == nil {
		return
	}
	if err := monitoringServer.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Str("section", "monitor").Msg("Unable to shutdown monitoring server")
	}
}
