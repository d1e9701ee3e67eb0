package application

import (
	"testing"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

func TestActionFlagsAreKeyedPerKindAndCampaign(t *testing.T) {
	board := NewBoard()

	board.BeginAction(entities.ActionDonate, 1)
	board.BeginAction(entities.ActionDeactivate, 2)

	if !board.ActionInFlight(entities.ActionDonate, 1) {
		t.Fatal("donate flag for campaign 1 should be set")
	}
	if board.ActionInFlight(entities.ActionDonate, 2) {
		t.Fatal("donate flag for campaign 2 should be untouched")
	}
	if board.ActionInFlight(entities.ActionDeactivate, 1) {
		t.Fatal("deactivate flag for campaign 1 should be untouched")
	}

	board.EndAction(entities.ActionDonate, 1)
	if board.ActionInFlight(entities.ActionDonate, 1) {
		t.Fatal("donate flag for campaign 1 should be cleared")
	}
	if !board.ActionInFlight(entities.ActionDeactivate, 2) {
		t.Fatal("clearing one key must not touch another")
	}
}

func TestReplaceCampaignsClearsError(t *testing.T) {
	board := NewBoard()
	board.SetError("ledger unavailable")
	board.ReplaceCampaigns([]entities.CampaignView{{ID: 0, Title: "Rebuild"}})

	snapshot := board.Snapshot()
	if snapshot.Error != "" {
		t.Fatalf("expected error cleared by successful replace, got %q", snapshot.Error)
	}
	if len(snapshot.Campaigns) != 1 || snapshot.Campaigns[0].Title != "Rebuild" {
		t.Fatalf("unexpected campaign set %+v", snapshot.Campaigns)
	}
}

func TestLaterReplaceWins(t *testing.T) {
	board := NewBoard()
	board.ReplaceCampaigns([]entities.CampaignView{{ID: 0}, {ID: 1}})
	board.ReplaceCampaigns([]entities.CampaignView{{ID: 0}})

	if got := len(board.Snapshot().Campaigns); got != 1 {
		t.Fatalf("expected the later set to replace wholesale, got %d campaigns", got)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	board := NewBoard()
	board.ReplaceCampaigns([]entities.CampaignView{{ID: 0, Title: "Original"}})
	board.BeginAction(entities.ActionDonate, 0)

	snapshot := board.Snapshot()
	snapshot.Campaigns[0].Title = "Mutated"
	delete(snapshot.Donating, 0)

	if view, _ := board.Campaign(0); view.Title != "Original" {
		t.Fatal("mutating a snapshot leaked into board state")
	}
	if !board.ActionInFlight(entities.ActionDonate, 0) {
		t.Fatal("mutating a snapshot map leaked into board flags")
	}
}

func TestCampaignLookup(t *testing.T) {
	board := NewBoard()
	board.ReplaceCampaigns([]entities.CampaignView{{ID: 0}, {ID: 2}})

	if _, ok := board.Campaign(2); !ok {
		t.Fatal("expected campaign 2 to be found")
	}
	if _, ok := board.Campaign(1); ok {
		t.Fatal("campaign 1 is not in the set")
	}
}
