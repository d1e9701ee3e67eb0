// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	campaignboard "fundboard/contexts/chain-funding/campaign-board"
	"fundboard/contexts/chain-funding/campaign-board/adapters/ipfs"
	"fundboard/contexts/chain-funding/campaign-board/adapters/memory"
	"fundboard/contexts/chain-funding/campaign-board/adapters/notify"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	"fundboard/internal/platform/config"
	"fundboard/internal/platform/httpserver"
	"fundboard/internal/platform/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

type APIApp struct {
	server   *httpserver.Server
	module   campaignboard.Module
	schedule string
	autoCron bool
	logger   *slog.Logger
}

type WorkerApp struct {
	module   campaignboard.Module
	schedule string
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	module, registry := buildModule(cfg, logger)
	server := httpserver.New(
		module,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		module:   module,
		schedule: cfg.RefreshCron,
		autoCron: cfg.EnableAutoRefresh,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	// Initial load: a failure here is not fatal, the board carries the
	// error and the refresh endpoint is the retry affordance.
	if err := a.module.Refresher.RunOnce(ctx); err != nil {
		a.logger.Warn("initial board load failed",
			"event", "bootstrap_initial_load_failed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"error", err.Error(),
		)
	}

	if a.autoCron {
		scheduler, err := startRefreshCron(ctx, a.schedule, a.module, a.logger)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}
	return a.server.Start()
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	module, _ := buildModule(cfg, logger)
	return &WorkerApp{
		module:   module,
		schedule: cfg.RefreshCron,
		logger:   logger,
	}, nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.module.Refresher.RunOnce(ctx); err != nil {
		w.logger.Warn("initial reconciliation failed",
			"event", "bootstrap_initial_load_failed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"error", err.Error(),
		)
	}
	scheduler, err := startRefreshCron(ctx, w.schedule, w.module, w.logger)
	if err != nil {
		return err
	}
	defer scheduler.Stop()

	<-ctx.Done()
	return ctx.Err()
}

func buildModule(cfg config.Config, logger *slog.Logger) (campaignboard.Module, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	boardMetrics := metrics.New(registry)

	fetcher := ipfs.NewFetcher(cfg.Gateways, boardMetrics, logger)
	fetcher.Client.Timeout = cfg.GatewayTimeout

	// The memory ledger stands in for the chain-backed dialer; swap the
	// Ledger dependency once RPC wiring lands.
	var seed []entities.Campaign
	if cfg.EnableDevSeed {
		seed = devSeed()
	}
	ledger := memory.NewLedger(seed)

	module := campaignboard.NewModule(campaignboard.Dependencies{
		Ledger:           ledger,
		Metadata:         fetcher,
		Notifier:         notify.LogNotifier{Logger: logger},
		Metrics:          boardMetrics,
		CanonicalGateway: cfg.CanonicalGateway,
		UnitDecimals:     cfg.UnitDecimals,
		Logger:           logger,
	})
	module.Ledger = ledger
	return module, registry
}

func startRefreshCron(ctx context.Context, schedule string, module campaignboard.Module, logger *slog.Logger) (*cron.Cron, error) {
	scheduler := cron.New(cron.WithSeconds())
	if _, err := scheduler.AddFunc(schedule, func() {
		if err := module.Refresher.RunOnce(ctx); err != nil {
			logger.Warn("scheduled refresh failed",
				"event", "scheduled_refresh_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}); err != nil {
		return nil, fmt.Errorf("register refresh schedule %q: %w", schedule, err)
	}
	scheduler.Start()
	logger.Info("refresh schedule started",
		"event", "refresh_schedule_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"schedule", schedule,
	)
	return scheduler, nil
}

func normalizeAddr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

// devSeed provides a small local campaign set so the board renders without
// chain connectivity.
func devSeed() []entities.Campaign {
	future := time.Now().AddDate(0, 1, 0).Unix()
	return []entities.Campaign{
		{
			Owner:           "0x90f79bf6eb2c4f870365e785982e1f101e93b906",
			Target:          scaled(5, 18),
			AmountCollected: scaled(1, 18),
			Deadline:        future,
			Active:          true,
			MetadataRef:     "ipfs://bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		},
		{
			Owner:           "0x15d34aaf54267db7d7c367839aaf71a00a2c6a65",
			Target:          scaled(12, 18),
			AmountCollected: big.NewInt(0),
			Deadline:        future,
			Active:          true,
			MetadataRef:     "bafybeihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku",
		},
	}
}

func scaled(value int64, decimals int) *big.Int {
	exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Int).Mul(big.NewInt(value), exp)
}
