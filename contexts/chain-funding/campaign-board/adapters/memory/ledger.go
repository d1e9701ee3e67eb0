package memory

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
	"fundboard/contexts/chain-funding/campaign-board/ports"

	"github.com/google/uuid"
)

// Ledger is an in-process ledger client used for tests and local runs while
// a chain-backed dialer is wired in deployment. State changes apply when a
// handle's Wait confirms, mirroring how a mined transaction behaves.
type Ledger struct {
	mu        sync.Mutex
	campaigns []entities.Campaign
	height    uint64

	// Failure injection for tests.
	DialErr   error
	SubmitErr error
	WaitErr   error
}

func NewLedger(seed []entities.Campaign) *Ledger {
	campaigns := make([]entities.Campaign, len(seed))
	for i, campaign := range seed {
		campaigns[i] = cloneCampaign(campaign)
	}
	return &Ledger{campaigns: campaigns, height: 1}
}

// Client implements ports.LedgerDialer.
func (l *Ledger) Client(_ context.Context) (ports.LedgerClient, error) {
	if l.DialErr != nil {
		return nil, l.DialErr
	}
	return l, nil
}

func (l *Ledger) ActiveCampaigns(_ context.Context) ([]entities.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]entities.Campaign, len(l.campaigns))
	for i, campaign := range l.campaigns {
		out[i] = cloneCampaign(campaign)
	}
	return out, nil
}

func (l *Ledger) Donate(_ context.Context, campaignID int, value *big.Int) (ports.TxHandle, error) {
	if l.SubmitErr != nil {
		return nil, l.SubmitErr
	}
	if value == nil || value.Sign() <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if campaignID < 0 || campaignID >= len(l.campaigns) {
		return nil, domainerrors.ErrCampaignNotFound
	}
	amount := new(big.Int).Set(value)
	return l.newHandle(func() {
		collected := l.campaigns[campaignID].AmountCollected
		if collected == nil {
			collected = new(big.Int)
		}
		l.campaigns[campaignID].AmountCollected = new(big.Int).Add(collected, amount)
	}), nil
}

func (l *Ledger) Deactivate(_ context.Context, campaignID int) (ports.TxHandle, error) {
	if l.SubmitErr != nil {
		return nil, l.SubmitErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if campaignID < 0 || campaignID >= len(l.campaigns) {
		return nil, domainerrors.ErrCampaignNotFound
	}
	return l.newHandle(func() {
		l.campaigns[campaignID].Active = false
	}), nil
}

// Campaign returns a copy of the raw record, for test assertions.
func (l *Ledger) Campaign(campaignID int) (entities.Campaign, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if campaignID < 0 || campaignID >= len(l.campaigns) {
		return entities.Campaign{}, false
	}
	return cloneCampaign(l.campaigns[campaignID]), true
}

func (l *Ledger) newHandle(apply func()) ports.TxHandle {
	return &txHandle{
		ledger: l,
		hash:   "0x" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		apply:  apply,
	}
}

type txHandle struct {
	ledger *Ledger
	hash   string
	apply  func()
}

func (h *txHandle) Wait(ctx context.Context) (ports.TxReceipt, error) {
	select {
	case <-ctx.Done():
		return ports.TxReceipt{}, ctx.Err()
	default:
	}
	if h.ledger.WaitErr != nil {
		return ports.TxReceipt{}, h.ledger.WaitErr
	}

	h.ledger.mu.Lock()
	defer h.ledger.mu.Unlock()
	h.apply()
	h.ledger.height++
	return ports.TxReceipt{TxHash: h.hash, BlockNumber: h.ledger.height}, nil
}

func cloneCampaign(campaign entities.Campaign) entities.Campaign {
	out := campaign
	if campaign.Target != nil {
		out.Target = new(big.Int).Set(campaign.Target)
	}
	if campaign.AmountCollected != nil {
		out.AmountCollected = new(big.Int).Set(campaign.AmountCollected)
	}
	return out
}
