package memory

import (
	"context"
	"sync"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

type Notice struct {
	CampaignID int
	Action     entities.ActionKind
	Message    string
}

// Notifier records failure notifications for test assertions.
type Notifier struct {
	mu      sync.Mutex
	notices []Notice
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) NotifyFailure(_ context.Context, campaignID int, action entities.ActionKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, Notice{CampaignID: campaignID, Action: action, Message: message})
}

func (n *Notifier) Notices() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}
