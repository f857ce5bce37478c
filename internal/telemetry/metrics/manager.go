package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterSetsCommitted  *prometheus.CounterVec
	CounterInvalidInputs  *prometheus.CounterVec
	CounterPersonalRecord prometheus.Counter
	CounterRestRequests   *prometheus.CounterVec
	CounterSessions       *prometheus.CounterVec

	// gauges
	GaugeRepDebt *prometheus.GaugeVec

	// histograms
	HistSuggestedLoad     prometheus.Histogram
	HistWorkspaceLoadTime *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("liftload", "test_engine", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("liftload", "test_engine", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterSetsCommitted := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sets_committed",
		Help:      "The total number of committed sets and sides",
	}, []string{"side", "change_of_plans"})
	counterInvalidInputs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "invalid_inputs",
		Help:      "The total number of rejected commits",
	}, []string{"field"})
	counterPersonalRecord := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "personal_records",
		Help:      "The total number of new personal records",
	})
	counterRestRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rest_requests",
		Help:      "The total number of rest intervals requested from the host",
	}, []string{"kind"})
	counterSessions := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions",
		Help:      "Sessions started and completed",
	}, []string{"state"})

	gaugeRepDebt := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rep_debt",
		Help:      "Current rep debt per exercise and target context",
	}, []string{"exercise", "context"})

	histSuggestedLoad := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "suggested_load",
		Help:      "Suggested loads handed to the host",
		Buckets:   prometheus.LinearBuckets(10, 20, 15),
	})
	histWorkspaceLoadTime := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workspace_load_duration_seconds",
		Help:      "Time spent loading workspace files",
		Buckets:   prometheus.DefBuckets,
	}, []string{"file"})

	return &Manager{
		CounterSetsCommitted:  counterSetsCommitted,
		CounterInvalidInputs:  counterInvalidInputs,
		CounterPersonalRecord: counterPersonalRecord,
		CounterRestRequests:   counterRestRequests,
		CounterSessions:       counterSessions,
		GaugeRepDebt:          gaugeRepDebt,
		HistSuggestedLoad:     histSuggestedLoad,
		HistWorkspaceLoadTime: histWorkspaceLoadTime,
	}
}
