package commands

import (
	"context"
	"log/slog"

	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/workers"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
	"fundboard/contexts/chain-funding/campaign-board/domain/units"
	"fundboard/contexts/chain-funding/campaign-board/ports"
)

type DonateCommand struct {
	CampaignID int
	// Amount is a positive decimal string in display units, converted to
	// the smallest currency unit before submission.
	Amount string
}

type DonateResult struct {
	TxHash      string
	BlockNumber uint64
}

// DonateUseCase submits one value-transfer transaction, waits for one
// confirmation, and refreshes the board on success. The in-flight flag for
// (donate, campaign id) is set for the whole attempt and always cleared on
// exit, success or failure.
type DonateUseCase struct {
	Ledger       ports.LedgerDialer
	Board        *application.Board
	Refresher    workers.BoardRefresher
	Notifier     ports.Notifier
	Metrics      ports.MetricsRecorder
	UnitDecimals int
	Logger       *slog.Logger
}

func (uc DonateUseCase) Execute(ctx context.Context, cmd DonateCommand) (DonateResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	value, err := units.Parse(cmd.Amount, uc.UnitDecimals)
	if err != nil || value.Sign() <= 0 {
		return DonateResult{}, domainerrors.ErrInvalidAmount
	}

	uc.Board.BeginAction(entities.ActionDonate, cmd.CampaignID)
	defer uc.Board.EndAction(entities.ActionDonate, cmd.CampaignID)

	client, err := uc.Ledger.Client(ctx)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "donate_client_unavailable", err)
		return DonateResult{}, domainerrors.ErrClientUnavailable
	}

	handle, err := client.Donate(ctx, cmd.CampaignID, value)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "donate_submit_failed", err)
		return DonateResult{}, domainerrors.ErrTransactionFailed
	}

	receipt, err := handle.Wait(ctx)
	if err != nil {
		uc.fail(ctx, logger, cmd.CampaignID, "donate_confirmation_failed", err)
		return DonateResult{}, domainerrors.ErrTransactionFailed
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordAction(entities.ActionDonate, true)
	}
	logger.Info("donation confirmed",
		"event", "donate_confirmed",
		"module", "chain-funding/campaign-board",
		"layer", "application",
		"campaign_id", cmd.CampaignID,
		"amount", cmd.Amount,
		"tx_hash", receipt.TxHash,
	)

	if err := uc.Refresher.RunOnce(ctx); err != nil {
		// The donation itself is confirmed; the next pass will converge.
		logger.Warn("post-donation refresh failed",
			"event", "donate_refresh_failed",
			"module", "chain-funding/campaign-board",
			"layer", "application",
			"campaign_id", cmd.CampaignID,
			"error", err.Error(),
		)
	}

	return DonateResult{TxHash: receipt.TxHash, BlockNumber: receipt.BlockNumber}, nil
}

func (uc DonateUseCase) fail(ctx context.Context, logger *slog.Logger, campaignID int, event string, cause error) {
	if uc.Metrics != nil {
		uc.Metrics.RecordAction(entities.ActionDonate, false)
	}
	logger.Error("donation failed",
		"event", event,
		"module", "chain-funding/campaign-board",
		"layer", "application",
		"campaign_id", campaignID,
		"error", cause.Error(),
	)
	if uc.Notifier != nil {
		uc.Notifier.NotifyFailure(ctx, campaignID, entities.ActionDonate, cause.Error())
	}
}
