package notify

import (
	"context"
	"log/slog"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

// LogNotifier surfaces action failures through the structured log. It stands
// in for a user-facing notification channel when the service runs headless.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) NotifyFailure(_ context.Context, campaignID int, action entities.ActionKind, message string) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("action failure surfaced to user",
		"event", "action_failure_notified",
		"module", "chain-funding/campaign-board",
		"layer", "adapter",
		"campaign_id", campaignID,
		"action", string(action),
		"message", message,
	)
}
