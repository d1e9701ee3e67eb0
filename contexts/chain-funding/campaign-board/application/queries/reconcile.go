package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/domain/contentref"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
	"fundboard/contexts/chain-funding/campaign-board/domain/units"
	"fundboard/contexts/chain-funding/campaign-board/ports"
)

// ReconcileUseCase runs one full reconciliation pass: fetch the raw campaign
// set from the ledger, resolve metadata per campaign concurrently, and merge
// into an ordered set of display-ready views.
//
// Failure handling is two-tier. Not being able to reach the ledger at all
// aborts the pass with ErrClientUnavailable. A failure while processing a
// single campaign only drops that campaign from the result; concurrent
// siblings are never affected.
type ReconcileUseCase struct {
	Ledger           ports.LedgerDialer
	Metadata         ports.MetadataFetcher
	CanonicalGateway string
	UnitDecimals     int
	Metrics          ports.MetricsRecorder
	Logger           *slog.Logger
}

func (uc ReconcileUseCase) Execute(ctx context.Context) ([]entities.CampaignView, error) {
	logger := application.ResolveLogger(uc.Logger)
	started := time.Now()

	client, err := uc.Ledger.Client(ctx)
	if err != nil {
		logger.Error("ledger client unavailable",
			"event", "reconcile_client_unavailable",
			"module", "chain-funding/campaign-board",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrClientUnavailable, err)
	}

	raw, err := client.ActiveCampaigns(ctx)
	if err != nil {
		logger.Error("raw campaign fetch failed",
			"event", "reconcile_fetch_failed",
			"module", "chain-funding/campaign-board",
			"layer", "application",
			"error", err.Error(),
		)
		return nil, fmt.Errorf("%w: %v", domainerrors.ErrClientUnavailable, err)
	}

	// Settle-all fan-out: one slot per raw campaign keeps the merge in raw
	// sequence order regardless of fetch completion order.
	slots := make([]*entities.CampaignView, len(raw))
	failures := make([]error, len(raw))
	var wg sync.WaitGroup
	for index, campaign := range raw {
		if !campaign.Active {
			continue
		}
		wg.Add(1)
		go func(index int, campaign entities.Campaign) {
			defer wg.Done()
			view, err := uc.buildView(ctx, index, campaign)
			if err != nil {
				failures[index] = err
				return
			}
			slots[index] = &view
		}(index, campaign)
	}
	wg.Wait()

	views := make([]entities.CampaignView, 0, len(raw))
	dropped := 0
	for index, slot := range slots {
		if slot != nil {
			views = append(views, *slot)
			continue
		}
		if failures[index] != nil {
			dropped++
			logger.Warn("campaign dropped from pass",
				"event", "reconcile_campaign_dropped",
				"module", "chain-funding/campaign-board",
				"layer", "application",
				"campaign_id", index,
				"error", failures[index].Error(),
			)
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordReconcilePass(time.Since(started), len(views), dropped)
	}
	logger.Info("reconciliation pass complete",
		"event", "reconcile_complete",
		"module", "chain-funding/campaign-board",
		"layer", "application",
		"raw", len(raw),
		"active", len(views),
		"dropped", dropped,
	)
	return views, nil
}

func (uc ReconcileUseCase) buildView(ctx context.Context, index int, campaign entities.Campaign) (entities.CampaignView, error) {
	target, err := units.Format(campaign.Target, uc.UnitDecimals)
	if err != nil {
		return entities.CampaignView{}, fmt.Errorf("format target: %w", err)
	}
	collected, err := units.Format(campaign.AmountCollected, uc.UnitDecimals)
	if err != nil {
		return entities.CampaignView{}, fmt.Errorf("format amount collected: %w", err)
	}

	view := entities.CampaignView{
		ID:              index,
		Owner:           campaign.Owner,
		Target:          target,
		AmountCollected: collected,
		Deadline:        time.Unix(campaign.Deadline, 0).UTC(),
		Claimed:         campaign.Claimed,
		Active:          campaign.Active,
		Title:           entities.PlaceholderTitle,
		Description:     entities.PlaceholderDescription,
	}

	metadata := uc.Metadata.Fetch(ctx, campaign.MetadataRef)
	if metadata == nil {
		// Degraded, not dropped: all on-chain fields survive.
		return view, nil
	}
	if title := strings.TrimSpace(metadata.Title); title != "" {
		view.Title = title
	}
	if description := strings.TrimSpace(metadata.Description); description != "" {
		view.Description = description
	}
	view.Image = contentref.RewriteImage(uc.CanonicalGateway, strings.TrimSpace(metadata.Image))
	return view, nil
}
