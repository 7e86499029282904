package monitor_grid

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	Queries             *prometheus.Desc
	Submissions         *prometheus.Desc
	IdempotentHits      *prometheus.Desc
	ResolvedIds         *prometheus.Desc
	Activations         *prometheus.Desc
	QueryErrors         *prometheus.Desc
	FailedSubmissions   *prometheus.Desc
	CorrelationFailures *prometheus.Desc
	DecodeErrors        *prometheus.Desc
	ActivationErrors    *prometheus.Desc
}

func NewCollector() *Collector {
	labels := prometheus.Labels{
		"app": "grid",
	}

	return &Collector{
		Queries:             prometheus.NewDesc("grid_queries", "Storage items read", nil, labels),
		Submissions:         prometheus.NewDesc("grid_submissions", "Extrinsics submitted", nil, labels),
		IdempotentHits:      prometheus.NewDesc("grid_idempotent_hits", "Creations answered without a transaction", nil, labels),
		ResolvedIds:         prometheus.NewDesc("grid_resolved_ids", "Ids resolved from events", nil, labels),
		Activations:         prometheus.NewDesc("grid_activations", "Accounts activated", nil, labels),
		QueryErrors:         prometheus.NewDesc("grid_query_errors", "", nil, labels),
		FailedSubmissions:   prometheus.NewDesc("grid_failed_submissions", "", nil, labels),
		CorrelationFailures: prometheus.NewDesc("grid_correlation_failures", "", nil, labels),
		DecodeErrors:        prometheus.NewDesc("grid_decode_errors", "", nil, labels),
		ActivationErrors:    prometheus.NewDesc("grid_activation_errors", "", nil, labels),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- self.Queries
	ch <- self.Submissions
	ch <- self.IdempotentHits
	ch <- self.ResolvedIds
	ch <- self.Activations
	ch <- self.QueryErrors
	ch <- self.FailedSubmissions
	ch <- self.CorrelationFailures
	ch <- self.DecodeErrors
	ch <- self.ActivationErrors
}

func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	state := &self.monitor.Report.Grid.State
	errors := &self.monitor.Report.Grid.Errors

	ch <- prometheus.MustNewConstMetric(self.Queries, prometheus.CounterValue, float64(state.Queries.Load()))
	ch <- prometheus.MustNewConstMetric(self.Submissions, prometheus.CounterValue, float64(state.Submissions.Load()))
	ch <- prometheus.MustNewConstMetric(self.IdempotentHits, prometheus.CounterValue, float64(state.IdempotentHits.Load()))
	ch <- prometheus.MustNewConstMetric(self.ResolvedIds, prometheus.CounterValue, float64(state.ResolvedIds.Load()))
	ch <- prometheus.MustNewConstMetric(self.Activations, prometheus.CounterValue, float64(state.Activations.Load()))
	ch <- prometheus.MustNewConstMetric(self.QueryErrors, prometheus.CounterValue, float64(errors.QueryErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.FailedSubmissions, prometheus.CounterValue, float64(errors.FailedSubmissions.Load()))
	ch <- prometheus.MustNewConstMetric(self.CorrelationFailures, prometheus.CounterValue, float64(errors.CorrelationFailures.Load()))
	ch <- prometheus.MustNewConstMetric(self.DecodeErrors, prometheus.CounterValue, float64(errors.DecodeErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.ActivationErrors, prometheus.CounterValue, float64(errors.ActivationErrors.Load()))
}
