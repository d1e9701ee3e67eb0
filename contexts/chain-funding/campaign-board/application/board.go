package application

import (
	"sync"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

// Board holds the state exposed to the presentation layer for one session:
// the current view set, the loading/error status of the latest
// reconciliation pass, and the per-campaign in-flight action flags.
//
// The view set is always replaced wholesale, never patched in place, so a
// later pass simply wins over an earlier one. Action flags are keyed per
// (action kind, campaign id); updates to one key never touch another.
type Board struct {
	mu        sync.RWMutex
	campaigns []entities.CampaignView
	loading   bool
	lastError string
	inFlight  map[entities.ActionKind]map[int]bool
}

// Snapshot is a point-in-time copy of the board state. Maps and slices are
// owned by the caller.
type Snapshot struct {
	Campaigns    []entities.CampaignView
	Loading      bool
	Error        string
	Donating     map[int]bool
	Deactivating map[int]bool
}

func NewBoard() *Board {
	return &Board{
		inFlight: map[entities.ActionKind]map[int]bool{
			entities.ActionDonate:     {},
			entities.ActionDeactivate: {},
		},
	}
}

func (b *Board) SetLoading(loading bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = loading
}

func (b *Board) SetError(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastError = message
}

// ReplaceCampaigns swaps in the result of a reconciliation pass and clears
// any previous pass error.
func (b *Board) ReplaceCampaigns(views []entities.CampaignView) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.campaigns = append([]entities.CampaignView(nil), views...)
	b.lastError = ""
}

// Campaign returns the view with the given id from the current set.
func (b *Board) Campaign(campaignID int) (entities.CampaignView, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, view := range b.campaigns {
		if view.ID == campaignID {
			return view, true
		}
	}
	return entities.CampaignView{}, false
}

// BeginAction marks the campaign as in progress for the given action kind.
func (b *Board) BeginAction(action entities.ActionKind, campaignID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	flags, ok := b.inFlight[action]
	if !ok {
		flags = map[int]bool{}
		b.inFlight[action] = flags
	}
	flags[campaignID] = true
}

// EndAction clears the in-flight entry for the campaign. The entry is
// deleted rather than set false; absence means idle.
func (b *Board) EndAction(action entities.ActionKind, campaignID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.inFlight[action], campaignID)
}

func (b *Board) ActionInFlight(action entities.ActionKind, campaignID int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.inFlight[action][campaignID]
}

func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		Campaigns:    append([]entities.CampaignView(nil), b.campaigns...),
		Loading:      b.loading,
		Error:        b.lastError,
		Donating:     copyFlags(b.inFlight[entities.ActionDonate]),
		Deactivating: copyFlags(b.inFlight[entities.ActionDeactivate]),
	}
}

func copyFlags(flags map[int]bool) map[int]bool {
	out := make(map[int]bool, len(flags))
	for id, set := range flags {
		if set {
			out[id] = true
		}
	}
	return out
}
