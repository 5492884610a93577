//go:build prometheus

package priority

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// The collector reports one metric per counter plus the stream gauge
func TestCollector(t *testing.T) {
	tree := New()
	tree.Insert(1, 0, 16, false)
	tree.Insert(3, 0, 16, false)
	tree.Next()

	c := NewCollector(tree)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	got := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				got[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				got[mf.GetName()] = m.GetCounter().GetValue()
			}
		}
	}

	if got["priority_tree_streams"] != 2 {
		t.Errorf("streams gauge = %v, want 2", got["priority_tree_streams"])
	}
	if got["priority_tree_inserts_total"] != 2 {
		t.Errorf("inserts counter = %v, want 2", got["priority_tree_inserts_total"])
	}
	if got["priority_tree_schedules_total"] != 1 {
		t.Errorf("schedules counter = %v, want 1", got["priority_tree_schedules_total"])
	}
}
