package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"fundboard/contexts/chain-funding/campaign-board/adapters/memory"
	application "fundboard/contexts/chain-funding/campaign-board/application"
	"fundboard/contexts/chain-funding/campaign-board/application/queries"
	"fundboard/contexts/chain-funding/campaign-board/application/workers"
	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
	domainerrors "fundboard/contexts/chain-funding/campaign-board/domain/errors"
)

type fixture struct {
	ledger   *memory.Ledger
	notifier *memory.Notifier
	board    *application.Board
	donate   DonateUseCase
	deact    DeactivateUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ledger := memory.NewLedger([]entities.Campaign{
		{
			Owner:           "0xowner-a",
			Target:          big.NewInt(5_000_000_000_000_000_000),
			AmountCollected: big.NewInt(0),
			Deadline:        1_900_000_000,
			Active:          true,
			MetadataRef:     "QmA",
		},
		{
			Owner:           "0xowner-b",
			Target:          big.NewInt(1_000_000_000_000_000_000),
			AmountCollected: big.NewInt(0),
			Deadline:        1_900_000_000,
			Active:          true,
			MetadataRef:     "QmB",
		},
	})
	notifier := memory.NewNotifier()
	board := application.NewBoard()
	refresher := workers.BoardRefresher{
		Reconcile: queries.ReconcileUseCase{
			Ledger:           ledger,
			Metadata:         memory.NewMetadataStore(nil),
			CanonicalGateway: "https://ipfs.io/ipfs/",
			UnitDecimals:     18,
			Logger:           logger,
		},
		Board:  board,
		Logger: logger,
	}
	if err := refresher.RunOnce(context.Background()); err != nil {
		t.Fatalf("initial board load failed: %v", err)
	}

	return fixture{
		ledger:   ledger,
		notifier: notifier,
		board:    board,
		donate: DonateUseCase{
			Ledger:       ledger,
			Board:        board,
			Refresher:    refresher,
			Notifier:     notifier,
			UnitDecimals: 18,
			Logger:       logger,
		},
		deact: DeactivateUseCase{
			Ledger:    ledger,
			Board:     board,
			Refresher: refresher,
			Notifier:  notifier,
			Logger:    logger,
		},
	}
}

func TestDonateConfirmsAndRefreshesBoard(t *testing.T) {
	f := newFixture(t)

	result, err := f.donate.Execute(context.Background(), DonateCommand{CampaignID: 0, Amount: "1.5"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.TxHash == "" || result.BlockNumber == 0 {
		t.Fatalf("expected a confirmed receipt, got %+v", result)
	}

	campaign, _ := f.ledger.Campaign(0)
	if campaign.AmountCollected.Cmp(big.NewInt(1_500_000_000_000_000_000)) != 0 {
		t.Fatalf("ledger amount = %s, want 1.5 units", campaign.AmountCollected)
	}

	// The post-action refresh publishes the new amount to the board.
	view, ok := f.board.Campaign(0)
	if !ok {
		t.Fatal("campaign missing from refreshed board")
	}
	if view.AmountCollected != "1.5" {
		t.Fatalf("board shows %q, want \"1.5\"", view.AmountCollected)
	}
	if f.board.ActionInFlight(entities.ActionDonate, 0) {
		t.Fatal("in-flight flag must clear after success")
	}
	if len(f.notifier.Notices()) != 0 {
		t.Fatalf("no failure notice expected, got %+v", f.notifier.Notices())
	}
}

func TestDonateRejectsBadAmountsBeforeFlaggingInFlight(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []string{"", "0", "-1", "abc", "1.2.3"} {
		_, err := f.donate.Execute(context.Background(), DonateCommand{CampaignID: 0, Amount: amount})
		if !errors.Is(err, domainerrors.ErrInvalidAmount) {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if f.board.ActionInFlight(entities.ActionDonate, 0) {
		t.Fatal("validation failures must not leave an in-flight flag")
	}
	if len(f.notifier.Notices()) != 0 {
		t.Fatal("validation failures are not transaction failures; no notice expected")
	}
}

func TestDonateConfirmationFailureLeavesBoardUntouched(t *testing.T) {
	f := newFixture(t)
	f.ledger.WaitErr = errors.New("transaction reverted")

	_, err := f.donate.Execute(context.Background(), DonateCommand{CampaignID: 0, Amount: "1"})
	if !errors.Is(err, domainerrors.ErrTransactionFailed) {
		t.Fatalf("expected ErrTransactionFailed, got %v", err)
	}

	campaign, _ := f.ledger.Campaign(0)
	if campaign.AmountCollected.Sign() != 0 {
		t.Fatalf("failed donation mutated the ledger: %s", campaign.AmountCollected)
	}
	view, _ := f.board.Campaign(0)
	if view.AmountCollected != "0.0" {
		t.Fatalf("failed donation changed the board: %q", view.AmountCollected)
	}
	if f.board.ActionInFlight(entities.ActionDonate, 0) {
		t.Fatal("in-flight flag must clear after failure")
	}

	notices := f.notifier.Notices()
	if len(notices) != 1 {
		t.Fatalf("expected one failure notice, got %d", len(notices))
	}
	if notices[0].CampaignID != 0 || notices[0].Action != entities.ActionDonate {
		t.Fatalf("unexpected notice %+v", notices[0])
	}
}

func TestDonateDialFailure(t *testing.T) {
	f := newFixture(t)
	f.ledger.DialErr = errors.New("node unreachable")

	_, err := f.donate.Execute(context.Background(), DonateCommand{CampaignID: 0, Amount: "1"})
	if !errors.Is(err, domainerrors.ErrClientUnavailable) {
		t.Fatalf("expected ErrClientUnavailable, got %v", err)
	}
	if len(f.notifier.Notices()) != 1 {
		t.Fatalf("expected one failure notice, got %d", len(f.notifier.Notices()))
	}
}

func TestDeactivateDeclinedIsANoOp(t *testing.T) {
	f := newFixture(t)

	result, err := f.deact.Execute(context.Background(), DeactivateCommand{CampaignID: 0, Confirmed: false})
	if err != nil {
		t.Fatalf("declined prompt must not error: %v", err)
	}
	if result.Performed {
		t.Fatal("declined prompt must not perform the action")
	}
	if campaign, _ := f.ledger.Campaign(0); !campaign.Active {
		t.Fatal("declined prompt must not touch the ledger")
	}
	if f.board.ActionInFlight(entities.ActionDeactivate, 0) {
		t.Fatal("declined prompt must not set an in-flight flag")
	}
}

func TestDeactivateConfirmedRemovesCampaignFromBoard(t *testing.T) {
	f := newFixture(t)

	result, err := f.deact.Execute(context.Background(), DeactivateCommand{CampaignID: 0, Confirmed: true})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !result.Performed || result.TxHash == "" {
		t.Fatalf("expected a confirmed receipt, got %+v", result)
	}

	if campaign, _ := f.ledger.Campaign(0); campaign.Active {
		t.Fatal("campaign still active on the ledger")
	}
	// After the post-action refresh the deactivated campaign drops out of
	// the displayed set; the sibling survives.
	if _, ok := f.board.Campaign(0); ok {
		t.Fatal("deactivated campaign still on the board")
	}
	if _, ok := f.board.Campaign(1); !ok {
		t.Fatal("sibling campaign missing from the board")
	}
}

func TestDeactivateConfirmationFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.ledger.WaitErr = errors.New("transaction reverted")

	_, err := f.deact.Execute(context.Background(), DeactivateCommand{CampaignID: 1, Confirmed: true})
	if !errors.Is(err, domainerrors.ErrTransactionFailed) {
		t.Fatalf("expected ErrTransactionFailed, got %v", err)
	}
	if campaign, _ := f.ledger.Campaign(1); !campaign.Active {
		t.Fatal("failed deactivation mutated the ledger")
	}

	notices := f.notifier.Notices()
	if len(notices) != 1 || notices[0].Action != entities.ActionDeactivate {
		t.Fatalf("expected one deactivate failure notice, got %+v", notices)
	}
	if f.board.ActionInFlight(entities.ActionDeactivate, 1) {
		t.Fatal("in-flight flag must clear after failure")
	}
}
