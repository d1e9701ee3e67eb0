package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fundboard/contexts/chain-funding/campaign-board/domain/entities"
)

// Metrics implements the board's MetricsRecorder port on top of a
// prometheus registry.
type Metrics struct {
	gatewayRequests  *prometheus.CounterVec
	reconcileSeconds prometheus.Histogram
	activeCampaigns  prometheus.Gauge
	droppedTotal     prometheus.Counter
	actionsTotal     *prometheus.CounterVec
}

func New(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		gatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundboard_gateway_requests_total",
			Help: "Content-addressed gateway requests by gateway base and outcome.",
		}, []string{"gateway", "outcome"}),
		reconcileSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundboard_reconcile_duration_seconds",
			Help:    "Duration of full reconciliation passes.",
			Buckets: prometheus.DefBuckets,
		}),
		activeCampaigns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fundboard_active_campaigns",
			Help: "Active campaigns in the most recent reconciliation pass.",
		}),
		droppedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundboard_reconcile_dropped_campaigns_total",
			Help: "Campaigns dropped from a pass due to per-campaign failures.",
		}),
		actionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundboard_actions_total",
			Help: "Donate/deactivate transactions by action kind and outcome.",
		}, []string{"action", "outcome"}),
	}
	if registry != nil {
		registry.MustRegister(
			m.gatewayRequests,
			m.reconcileSeconds,
			m.activeCampaigns,
			m.droppedTotal,
			m.actionsTotal,
		)
	}
	return m
}

func (m *Metrics) RecordGatewayRequest(gateway string, success bool) {
	m.gatewayRequests.WithLabelValues(gateway, outcome(success)).Inc()
}

func (m *Metrics) RecordReconcilePass(duration time.Duration, active int, dropped int) {
	m.reconcileSeconds.Observe(duration.Seconds())
	m.activeCampaigns.Set(float64(active))
	m.droppedTotal.Add(float64(dropped))
}

func (m *Metrics) RecordAction(action entities.ActionKind, success bool) {
	m.actionsTotal.WithLabelValues(string(action), outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
