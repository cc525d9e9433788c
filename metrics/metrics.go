// Package metrics counts searches, replans and placement verdicts with
// Prometheus collectors.
//
// A Recorder registers its collectors on a private registry, so several
// Recorders (one per test, say) never collide on the default one. Its
// Observe methods match the hooks exposed by astar, replan and placement
// and are safe for concurrent use.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/placement"
)

// Recorder owns a registry and the collectors on it.
type Recorder struct {
	reg *prometheus.Registry

	searches   *prometheus.CounterVec
	expanded   prometheus.Histogram
	replans    *prometheus.CounterVec
	placements *prometheus.CounterVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		// searches counts search passes by mode and outcome
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_searches_total",
			Help: "Search passes by mode and outcome",
		}, []string{"mode", "outcome"}),
		// expanded tracks nodes expanded per pass
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazepath_search_expanded_nodes",
			Help:    "Nodes expanded per search pass",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8), // 16 to ~260k
		}),
		// replans counts barrier insertions by whether they hit the route
		replans: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_replans_total",
			Help: "Barrier insertions by effect on the accepted route",
		}, []string{"result"}), // "repaired" or "skipped"
		// placements counts candidate verdicts
		placements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazepath_placements_total",
			Help: "Evaluated obstacle placements by outcome",
		}, []string{"outcome"}), // "cut" or "reachable"
	}
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSearch records one search pass; it fits astar.WithOnDone.
func (r *Recorder) ObserveSearch(s astar.Stats) {
	outcome := "found"
	if !s.Found {
		outcome = "no_path"
	}
	r.searches.WithLabelValues(s.Mode.String(), outcome).Inc()
	r.expanded.Observe(float64(s.Expanded))
}

// ObserveReplan records one barrier insertion; it fits replan.WithOnReplan.
func (r *Recorder) ObserveReplan(hit bool) {
	result := "skipped"
	if hit {
		result = "repaired"
	}
	r.replans.WithLabelValues(result).Inc()
}

// ObserveVerdict records one placement; it fits placement.WithOnVerdict.
func (r *Recorder) ObserveVerdict(v placement.Verdict) {
	outcome := "reachable"
	if !v.Reachable {
		outcome = "cut"
	}
	r.placements.WithLabelValues(outcome).Inc()
}

// Snapshot flattens the registry into name{label="value",...} keys.
// Histograms contribute name_count and name_sum.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(labels)
			suffix := ""
			if len(labels) > 0 {
				suffix = "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()+suffix] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				out[mf.GetName()+"_count"+suffix] = float64(m.GetHistogram().GetSampleCount())
				out[mf.GetName()+"_sum"+suffix] = m.GetHistogram().GetSampleSum()
			}
		}
	}

	return out, nil
}
