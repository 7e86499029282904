package monitor_grid

import (
	"github.com/warp-contracts/gridclient/src/utils/monitoring/report"

	"github.com/prometheus/client_golang/prometheus"
)

// Stores monitor counters of the grid client
type Monitor struct {
	Report    report.Report
	collector *Collector
}

func NewMonitor() (self *Monitor) {
	self = new(Monitor)

	self.Report = report.Report{
		Grid: &report.GridReport{},
	}

	self.collector = NewCollector().WithMonitor(self)
	return
}

func (self *Monitor) GetReport() *report.Report {
	return &self.Report
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

// Registry returns a registry exposing only the grid counters
func (self *Monitor) Registry() (registry *prometheus.Registry, err error) {
	registry = prometheus.NewRegistry()
	err = registry.Register(self.collector)
	return
}
