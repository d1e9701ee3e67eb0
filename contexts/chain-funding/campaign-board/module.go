package campaignboard

import (
	"log/slog"

	httpadapter "fundboard/contexts/chain-funding/campaign-board/adapters/http"
	"fundboard/contexts/chain-funding/campaign-board/adapters/memory"
	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/commands"
	"fundboard/contexts/chain-funding/campaign-board/application/queries"
	"fundboard/contexts/chain-funding/campaign-board/application/workers"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	"fundboard/contexts/chain-funding/campaign-board/ports"
)

type Module struct {
	Handler   httpadapter.Handler
	Board     *application.Board
	Refresher workers.BoardRefresher

	// Ledger and Notifier are set only by NewInMemoryModule, for seeding
	// and test assertions.
	Ledger   *memory.Ledger
	Notifier *memory.Notifier
}

type Dependencies struct {
	Ledger           ports.LedgerDialer
	Metadata         ports.MetadataFetcher
	Notifier         ports.Notifier
	Metrics          ports.MetricsRecorder
	CanonicalGateway string
	UnitDecimals     int
	Logger           *slog.Logger
}

func NewModule(deps Dependencies) Module {
	board := application.NewBoard()

	reconcile := queries.ReconcileUseCase{
		Ledger:           deps.Ledger,
		Metadata:         deps.Metadata,
		CanonicalGateway: deps.CanonicalGateway,
		UnitDecimals:     deps.UnitDecimals,
		Metrics:          deps.Metrics,
		Logger:           deps.Logger,
	}
	refresher := workers.BoardRefresher{
		Reconcile: reconcile,
		Board:     board,
		Logger:    deps.Logger,
	}
	donate := commands.DonateUseCase{
		Ledger:       deps.Ledger,
		Board:        board,
		Refresher:    refresher,
		Notifier:     deps.Notifier,
		Metrics:      deps.Metrics,
		UnitDecimals: deps.UnitDecimals,
		Logger:       deps.Logger,
	}
	deactivate := commands.DeactivateUseCase{
		Ledger:    deps.Ledger,
		Board:     board,
		Refresher: refresher,
		Notifier:  deps.Notifier,
		Metrics:   deps.Metrics,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Donate:     donate,
			Deactivate: deactivate,
			Refresher:  refresher,
			Board:      board,
			Logger:     deps.Logger,
		},
		Board:     board,
		Refresher: refresher,
	}
}

// NewInMemoryModule wires the module against in-process collaborators:
// a seeded ledger and a map-backed metadata store. Used by tests and by
// local runs without chain connectivity.
func NewInMemoryModule(
	seed []entities.Campaign,
	docs map[string]entities.Metadata,
	canonicalGateway string,
	logger *slog.Logger,
) Module {
	ledger := memory.NewLedger(seed)
	notifier := memory.NewNotifier()
	module := NewModule(Dependencies{
		Ledger:           ledger,
		Metadata:         memory.NewMetadataStore(docs),
		Notifier:         notifier,
		CanonicalGateway: canonicalGateway,
		Logger:           logger,
	})
	module.Ledger = ledger
	module.Notifier = notifier
	return module
}
