package ports

import (
	"context"
	"math/big"
	"time"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

// TxReceipt is returned once a submitted transaction has one confirmation.
type TxReceipt struct {
	TxHash      string
	BlockNumber uint64
}

// TxHandle is a pending transaction. Wait blocks until the transaction is
// confirmed or fails; there is no cancellation beyond the context.
type TxHandle interface {
	Wait(ctx context.Context) (TxReceipt, error)
}

// LedgerClient is the on-chain collaborator.
type LedgerClient interface {
	// ActiveCampaigns returns the full raw campaign set. Despite the name
	// the ledger may include inactive entries; callers filter.
	ActiveCampaigns(ctx context.Context) ([]entities.Campaign, error)
	// Donate submits a value transfer to the campaign at the given
	// sequence index. The value is in the smallest currency unit.
	Donate(ctx context.Context, campaignID int, value *big.Int) (TxHandle, error)
	// Deactivate submits the deactivation transaction for the campaign.
	Deactivate(ctx context.Context, campaignID int) (TxHandle, error)
}

// LedgerDialer obtains a client handle per reconciliation pass or action.
type LedgerDialer interface {
	Client(ctx context.Context) (LedgerClient, error)
}

// MetadataFetcher resolves a content-addressed reference to its JSON
// document. A nil result means "metadata unavailable"; fetch failures are
// never escalated to the caller.
type MetadataFetcher interface {
	Fetch(ctx context.Context, reference string) *entities.Metadata
}

// Notifier surfaces action failures to the user.
type Notifier interface {
	NotifyFailure(ctx context.Context, campaignID int, action entities.ActionKind, message string)
}

// MetricsRecorder receives reconciliation and action telemetry.
type MetricsRecorder interface {
	RecordGatewayRequest(gateway string, success bool)
	RecordReconcilePass(duration time.Duration, active int, dropped int)
	RecordAction(action entities.ActionKind, success bool)
}
