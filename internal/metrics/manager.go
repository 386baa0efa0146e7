package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

type Manager struct {
	// counters
	CounterRuns         prometheus.Counter
	CounterRunFailures  prometheus.Counter
	CounterEmailsSent   prometheus.Counter
	CounterRowsAppended prometheus.Counter

	// gauges, overwritten on every run
	GaugeEntries      prometheus.Gauge
	GaugeLastWeight   prometheus.Gauge
	GaugeWeeklyChange prometheus.Gauge

	// histograms
	HistRunDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("weighttracker", "test_run", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("weighttracker", "test_run", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRuns := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "runs",
		Help:      "The total number of report runs",
	})
	counterRunFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "run_failures",
		Help:      "The total number of failed report runs",
	})
	counterEmailsSent := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "emails_sent",
		Help:      "The total number of progress report emails sent",
	})
	counterRowsAppended := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rows_appended",
		Help:      "The total number of next-day rows added to the sheet",
	})

	gaugeEntries := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "entries",
		Help:      "Number of weight entries used in the last run",
	})
	gaugeLastWeight := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "last_weight_kg",
		Help:      "The most recent recorded weight",
	})
	gaugeWeeklyChange := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_change_kg",
		Help:      "The weekly average change computed in the last run",
	})

	histRunDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.1, 0.25, 0.5, 1, 2.5, 5,
				10, 30, 60, 120,
			},
			Name: "run_duration_seconds",
			Help: "Total duration of a single report run in seconds",
		},
	)

	return &Manager{
		CounterRuns:         counterRuns,
		CounterRunFailures:  counterRunFailures,
		CounterEmailsSent:   counterEmailsSent,
		CounterRowsAppended: counterRowsAppended,
		GaugeEntries:        gaugeEntries,
		GaugeLastWeight:     gaugeLastWeight,
		GaugeWeeklyChange:   gaugeWeeklyChange,
		HistRunDuration:     histRunDuration,
	}
}

// Push sends everything gathered in g to the Pushgateway at url under the
// given job name. The tracker exits right after a run, so pushing is the
// only way its metrics outlive the process.
func Push(url, job string, g prometheus.Gatherer) error {
	return push.New(url, job).Gatherer(g).Push()
}
