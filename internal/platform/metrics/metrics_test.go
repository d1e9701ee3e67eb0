package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

func TestRecordersTrackOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.RecordGatewayRequest("https://ipfs.io/ipfs/", true)
	m.RecordGatewayRequest("https://ipfs.io/ipfs/", false)
	m.RecordGatewayRequest("https://ipfs.io/ipfs/", false)
	m.RecordAction(entities.ActionDonate, true)
	m.RecordAction(entities.ActionDeactivate, false)
	m.RecordReconcilePass(250*time.Millisecond, 4, 1)

	if got := testutil.ToFloat64(m.gatewayRequests.WithLabelValues("https://ipfs.io/ipfs/", "failure")); got != 2 {
		t.Fatalf("gateway failure count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.gatewayRequests.WithLabelValues("https://ipfs.io/ipfs/", "success")); got != 1 {
		t.Fatalf("gateway success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.actionsTotal.WithLabelValues("donate", "success")); got != 1 {
		t.Fatalf("donate success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.actionsTotal.WithLabelValues("deactivate", "failure")); got != 1 {
		t.Fatalf("deactivate failure count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.activeCampaigns); got != 4 {
		t.Fatalf("active campaigns gauge = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.droppedTotal); got != 1 {
		t.Fatalf("dropped counter = %v, want 1", got)
	}
}

func TestNewRegistersCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.RecordAction(entities.ActionDonate, true)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	found := false
	for _, family := range families {
		if family.GetName() == "fundboard_actions_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("fundboard_actions_total not registered")
	}
}
