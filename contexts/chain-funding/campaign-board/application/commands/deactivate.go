package commands

import (
	"context"
	"log/slog"

	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/workers"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
	"fundboard/contexts/chain-funding/campaign-board/ports"
)

type DeactivateCommand struct {
	CampaignID int
	// Confirmed carries the user's answer to the confirmation prompt,
	// which lives with the presentation collaborator. A declined prompt
	// makes the whole operation a no-op.
	Confirmed bool
}

type DeactivateResult struct {
	Performed   bool
	TxHash      string
	BlockNumber uint64
}

// DeactivateUseCase submits the deactivation transaction for a campaign.
// Same shape as donate: in-flight flag for the whole attempt, one
// confirmation wait, board refresh on success, notification on failure.
type DeactivateUseCase struct {
	Ledger    ports.LedgerDialer
	Board     *application.Board
	Refresher workers.BoardRefresher
	Notifier  ports.Notifier
	Metrics   ports.MetricsRecorder
	Logger    *slog.Logger
}

func (uc DeactivateUseCase) Execute(ctx context.Context, cmd DeactivateCommand) (DeactivateResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if !cmd.Confirmed {
		logger.Info("deactivation declined",
			"event", "deactivate_declined",
			"module", "chain-funding/campaign-board",
			"layer", "application",
			"campaign_id", cmd.CampaignID,
		)
		return DeactivateResult{Performed: false}, nil
	}

	uc.Board.BeginAction(entities.ActionDeactivate, cmd.CampaignID)
	defer uc.Board.EndAction(entities.ActionDeactivate, cmd.CampaignID)

	client, err := uc.Ledger.Client(ctx)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "deactivate_client_unavailable", err)
		return DeactivateResult{}, domainerrors.ErrClientUnavailable
	}

	handle, err := client.Deactivate(ctx, cmd.CampaignID)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "deactivate_submit_failed", err)
		return DeactivateResult{}, domainerrors.ErrTransactionFailed
	}

	receipt, err := handle.Wait(ctx)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "deactivate_confirmation_failed", err)
		return DeactivateResult{}, domainerrors.ErrTransactionFailed
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAction(entities.ActionDeactivate, true)
	}
	logger.Info("deactivation confirmed",
		"event", "deactivate_confirmed",
		"module", "chain-funding/campaign-board",
		"layer", "application",
		"campaign_id", cmd.CampaignID,
		"tx_hash", receipt.TxHash,
	)

	if err := uc.Refresher.RunOnce(ctx); err != nil {
		logger.Warn("post-deactivation refresh failed",
			"event", "deactivate_refresh_failed",
			"module", "chain-funding/campaign-board",
			"layer", "application",
			"campaign_id", cmd.CampaignID,
			"error", err.Error(),
		)
	}

	return DeactivateResult{Performed: true, TxHash: receipt.TxHash, BlockNumber: receipt.BlockNumber}, nil
}

func (uc DeactivateUseCase) fail(ctx context.Context, logger *slog.Logger, campaignID int, event string, cause error) {
	if uc.Metrics != nil {
		uc.Metrics.RecordAction(entities.ActionDeactivate, false)
	}
	logger.Error("deactivation failed",
		"event", event,
		"module", "chain-funding/campaign-board",
		"layer", "application",
		"campaign_id", campaignID,
		"error", cause.Error(),
	)
	if uc.Notifier != nil {
		uc.Notifier.NotifyFailure(ctx, campaignID, entities.ActionDeactivate, cause.Error())
	}
}
