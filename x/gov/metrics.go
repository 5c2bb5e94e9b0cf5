package gov

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const MetricsSubsystem = "gov"

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Number of proposals submitted since process start.
	ProposalsSubmitted metrics.Counter
	// Number of votes cast since process start.
	VotesCast metrics.Counter
	// Number of proposals that reached Executed.
	ProposalsExecuted metrics.Counter
	// Current size of the voter registry.
	RegisteredVoters metrics.Gauge
	// Number of proposals currently in Active status.
	ActiveProposals metrics.Gauge
}

// PrometheusMetrics returns Metrics built using Prometheus client library.
func PrometheusMetrics(namespace string) *Metrics {
	return &Metrics{
		ProposalsSubmitted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proposals_submitted",
			Help:      "Number of proposals submitted.",
		}, []string{}),
		VotesCast: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "votes_cast",
			Help:      "Number of votes cast.",
		}, []string{}),
		ProposalsExecuted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proposals_executed",
			Help:      "Number of proposals executed.",
		}, []string{}),
		RegisteredVoters: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "registered_voters",
			Help:      "Size of the voter registry.",
		}, []string{}),
		ActiveProposals: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "active_proposals",
			Help:      "Number of proposals in Active status.",
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		ProposalsSubmitted: discard.NewCounter(),
		VotesCast:          discard.NewCounter(),
		ProposalsExecuted:  discard.NewCounter(),
		RegisteredVoters:   discard.NewGauge(),
		ActiveProposals:    discard.NewGauge(),
	}
}
