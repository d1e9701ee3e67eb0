package workers

import (
	"context"
	"log/slog"

	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/queries"
)

// BoardRefresher runs one reconciliation pass and publishes the result to
// the board. It backs the initial load, the manual refresh endpoint, the
// post-action refresh, and the worker schedule; whichever pass finishes
// last owns the displayed set.
type BoardRefresher struct {
	Reconcile queries.ReconcileUseCase
	Board     *application.Board
	Logger    *slog.Logger
}

func (r BoardRefresher) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)

	r.Board.SetLoading(true)
	defer r.Board.SetLoading(false)

	views, err := r.Reconcile.Execute(ctx)
	if err != nil {
		// Keep the previous set visible; the error carries the retry
		// affordance to the presentation layer.
		r.Board.SetError(err.Error())
		logger.Error("board refresh failed",
			"event", "board_refresh_failed",
			"module", "chain-funding/campaign-board",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	r.Board.ReplaceCampaigns(views)
	return nil
}
