//go:build prometheus

package priority

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a tree's statistics as Prometheus metrics. Register one
// per tree:
//
//	t := priority.New()
//	prometheus.MustRegister(priority.NewCollector(t))
//
// Collect reads the tree without synchronization; when the registry is
// scraped from another goroutine, guard the tree the same way every other
// access is guarded.
type Collector struct {
	tree *PriorityTree

	streams   *prometheus.Desc
	inserts   *prometheus.Desc
	removes   *prometheus.Desc
	blocks    *prometheus.Desc
	unblocks  *prometheus.Desc
	schedules *prometheus.Desc
	deadlocks *prometheus.Desc
}

// NewCollector creates a Prometheus collector for a priority tree.
func NewCollector(t *PriorityTree) *Collector {
	return &Collector{
		tree: t,
		streams: prometheus.NewDesc(
			"priority_tree_streams",
			"Streams currently held in the dependency tree",
			nil, nil,
		),
		inserts: prometheus.NewDesc(
			"priority_tree_inserts_total",
			"Total stream insertions",
			nil, nil,
		),
		removes: prometheus.NewDesc(
			"priority_tree_removes_total",
			"Total stream removals",
			nil, nil,
		),
		blocks: prometheus.NewDesc(
			"priority_tree_blocks_total",
			"Total block operations",
			nil, nil,
		),
		unblocks: prometheus.NewDesc(
			"priority_tree_unblocks_total",
			"Total unblock operations",
			nil, nil,
		),
		schedules: prometheus.NewDesc(
			"priority_tree_schedules_total",
			"Total successful scheduling decisions",
			nil, nil,
		),
		deadlocks: prometheus.NewDesc(
			"priority_tree_deadlocks_total",
			"Total Next calls that found no schedulable stream",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.streams
	ch <- c.inserts
	ch <- c.removes
	ch <- c.blocks
	ch <- c.unblocks
	ch <- c.schedules
	ch <- c.deadlocks
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.tree.Stats()

	ch <- prometheus.MustNewConstMetric(c.streams, prometheus.GaugeValue, float64(st.Streams))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(st.Inserts))
	ch <- prometheus.MustNewConstMetric(c.removes, prometheus.CounterValue, float64(st.Removes))
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.CounterValue, float64(st.Blocks))
	ch <- prometheus.MustNewConstMetric(c.unblocks, prometheus.CounterValue, float64(st.Unblocks))
	ch <- prometheus.MustNewConstMetric(c.schedules, prometheus.CounterValue, float64(st.Schedules))
	ch <- prometheus.MustNewConstMetric(c.deadlocks, prometheus.CounterValue, float64(st.Deadlocks))
}
