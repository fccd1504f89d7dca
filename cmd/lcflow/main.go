package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lcflow/internal/audit"
	"lcflow/internal/document"
	"lcflow/internal/letter/engine"
	"lcflow/internal/letter/metrics"
	"lcflow/internal/letter/registry"
	"lcflow/internal/platform/config"
	"lcflow/internal/platform/logger"
)

// main wires the lifecycle core from env config and keeps it running as a
// host process: an audit worker draining the record inbox and, when
// LCFLOW_METRICS_ADDR is set, a Prometheus scrape endpoint. Embedders link
// the packages directly; this binary is the reference wiring.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	eng, err := engine.New(document.NewRehashVerifier(),
		engine.WithLogger(log),
		engine.WithTerminatePolicy(cfg.TerminateRoles),
	)
	if err != nil {
		log.Error("failed to build transition engine", "error", err)
		os.Exit(1)
	}

	auditStore := audit.NewInMemoryStore()
	reg, err := registry.New(eng, registry.NewInMemoryCaseStore(), audit.NewPublisher(auditStore),
		registry.WithLogger(log),
		registry.WithMetrics(metrics.New()),
		registry.WithSubmitWait(cfg.SubmitWait),
	)
	if err != nil {
		log.Error("failed to build case registry", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Startup self-check: walk a probe case through open and terminate so a
	// misconfigured terminate policy surfaces before the process reports
	// ready.
	if err := runProbe(ctx, reg, cfg); err != nil {
		log.Error("wiring self-check failed", "error", err)
		os.Exit(1)
	}

	inbox := make(chan audit.Record, 64)
	worker := audit.NewWorker(auditStore, inbox)
	workerDone := make(chan error, 1)
	go func() {
		workerDone <- worker.Run(ctx)
	}()

	var srv *http.Server
	if addr := os.Getenv("LCFLOW_METRICS_ADDR"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			log.Info("metrics endpoint up", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server error", "error", err)
			}
		}()
	}

	log.Info("lcflow core ready",
		"terminate_roles", cfg.TerminateRoles,
		"submit_wait", cfg.SubmitWait,
	)

	<-ctx.Done()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("metrics shutdown failed", "error", err)
		}
	}
	if err := <-workerDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Error("audit worker stopped", "error", err)
	}
}
