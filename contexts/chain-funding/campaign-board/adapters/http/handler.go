package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/commands"
	"fundboard/contexts/chain-funding/campaign-board/application/workers"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
	httptransport "fundboard/contexts/chain-funding/campaign-board/transport/http"
)

type Handler struct {
	Donate     commands.DonateUseCase
	Deactivate commands.DeactivateUseCase
	Refresher  workers.BoardRefresher
	Board      *application.Board
	Logger     *slog.Logger
}

// BoardHandler godoc
// @Summary Board snapshot
// @Description Returns the current campaign set plus loading/error status and per-campaign action flags.
// @Tags campaign-board
// @Produce json
// @Success 200 {object} httptransport.BoardResponse
// @Router /v1/board [get]
func (h Handler) BoardHandler(_ context.Context) httptransport.BoardResponse {
	return mapSnapshot(h.Board.Snapshot())
}

// RefreshHandler godoc
// @Summary Run a reconciliation pass
// @Description Re-fetches the raw campaign set and metadata and replaces the displayed set.
// @Tags campaign-board
// @Produce json
// @Success 200 {object} httptransport.BoardResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/board/refresh [post]
func (h Handler) RefreshHandler(ctx context.Context) (httptransport.BoardResponse, error) {
	if err := h.Refresher.RunOnce(ctx); err != nil {
		return httptransport.BoardResponse{}, err
	}
	return mapSnapshot(h.Board.Snapshot()), nil
}

// ListCampaignsHandler godoc
// @Summary List active campaigns
// @Tags campaign-board
// @Produce json
// @Success 200 {object} httptransport.ListCampaignsResponse
// @Router /v1/campaigns [get]
func (h Handler) ListCampaignsHandler(_ context.Context) httptransport.ListCampaignsResponse {
	snapshot := h.Board.Snapshot()
	items := make([]httptransport.CampaignDTO, 0, len(snapshot.Campaigns))
	for _, view := range snapshot.Campaigns {
		items = append(items, mapCampaign(view))
	}
	return httptransport.ListCampaignsResponse{Items: items}
}

// GetCampaignHandler godoc
// @Summary Get one campaign
// @Tags campaign-board
// @Produce json
// @Param campaign_id path int true "Campaign id (sequence index within the current pass)"
// @Success 200 {object} httptransport.GetCampaignResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /v1/campaigns/{campaign_id} [get]
func (h Handler) GetCampaignHandler(_ context.Context, campaignID int) (httptransport.GetCampaignResponse, error) {
	view, ok := h.Board.Campaign(campaignID)
	if !ok {
		return httptransport.GetCampaignResponse{}, domainerrors.ErrCampaignNotFound
	}
	return httptransport.GetCampaignResponse{Campaign: mapCampaign(view)}, nil
}

// DonateHandler godoc
// @Summary Donate to a campaign
// @Description Submits a value transfer and waits for one confirmation; the board refreshes on success.
// @Tags campaign-board
// @Accept json
// @Produce json
// @Param campaign_id path int true "Campaign id"
// @Param request body httptransport.DonateRequest true "Donation amount as a positive decimal string"
// @Success 200 {object} httptransport.DonateResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 502 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/donate [post]
func (h Handler) DonateHandler(ctx context.Context, campaignID int, req httptransport.DonateRequest) (httptransport.DonateResponse, error) {
	if _, ok := h.Board.Campaign(campaignID); !ok {
		return httptransport.DonateResponse{}, domainerrors.ErrCampaignNotFound
	}
	// The UI disables the trigger while in flight; the API enforces the
	// same rule for direct callers.
	if h.Board.ActionInFlight(entities.ActionDonate, campaignID) {
		return httptransport.DonateResponse{}, domainerrors.ErrActionInProgress
	}
	result, err := h.Donate.Execute(ctx, commands.DonateCommand{
		CampaignID: campaignID,
		Amount:     req.Amount,
	})
	if err != nil {
		return httptransport.DonateResponse{}, err
	}
	return httptransport.DonateResponse{TxHash: result.TxHash, BlockNumber: result.BlockNumber}, nil
}

// DeactivateHandler godoc
// @Summary Deactivate a campaign
// @Description Requires explicit confirmation; an unconfirmed request is a declined prompt and performs nothing.
// @Tags campaign-board
// @Accept json
// @Produce json
// @Param campaign_id path int true "Campaign id"
// @Param request body httptransport.DeactivateRequest true "Confirmation flag"
// @Success 200 {object} httptransport.DeactivateResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 502 {object} httptransport.ErrorResponse
// @Failure 503 {object} httptransport.ErrorResponse
// @Router /v1/campaigns/{campaign_id}/deactivate [post]
func (h Handler) DeactivateHandler(ctx context.Context, campaignID int, req httptransport.DeactivateRequest) (httptransport.DeactivateResponse, error) {
	if _, ok := h.Board.Campaign(campaignID); !ok {
		return httptransport.DeactivateResponse{}, domainerrors.ErrCampaignNotFound
	}
	if h.Board.ActionInFlight(entities.ActionDeactivate, campaignID) {
		return httptransport.DeactivateResponse{}, domainerrors.ErrActionInProgress
	}
	result, err := h.Deactivate.Execute(ctx, commands.DeactivateCommand{
		CampaignID: campaignID,
		Confirmed:  req.Confirmed,
	})
	if err != nil {
		return httptransport.DeactivateResponse{}, err
	}
	return httptransport.DeactivateResponse{
		Performed:   result.Performed,
		TxHash:      result.TxHash,
		BlockNumber: result.BlockNumber,
	}, nil
}

func mapSnapshot(snapshot application.Snapshot) httptransport.BoardResponse {
	campaigns := make([]httptransport.CampaignDTO, 0, len(snapshot.Campaigns))
	for _, view := range snapshot.Campaigns {
		campaigns = append(campaigns, mapCampaign(view))
	}
	return httptransport.BoardResponse{
		Campaigns: campaigns,
		Loading:   snapshot.Loading,
		Error:     snapshot.Error,
		ActionState: httptransport.ActionStateDTO{
			Donate:     snapshot.Donating,
			Deactivate: snapshot.Deactivating,
		},
	}
}

func mapCampaign(view entities.CampaignView) httptransport.CampaignDTO {
	return httptransport.CampaignDTO{
		ID:              view.ID,
		Owner:           view.Owner,
		Target:          view.Target,
		AmountCollected: view.AmountCollected,
		Deadline:        view.Deadline.UTC().Format(time.RFC3339),
		Claimed:         view.Claimed,
		Active:          view.Active,
		Title:           view.Title,
		Description:     view.Description,
		Image:           view.Image,
	}
}
