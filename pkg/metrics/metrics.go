// Package metrics counts evaluation activity and renders it in the
// Prometheus text exposition format.
package metrics

import (
	"io"
	"sort"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric names
const (
	RunsTotal            = "drillcost_runs_total"
	TrialsEvaluatedTotal = "drillcost_trials_evaluated_total"
	TrialsSkippedTotal   = "drillcost_trials_skipped_total"
	EmptyRunsTotal       = "drillcost_empty_runs_total"
	LastScore            = "drillcost_last_performance_score"
)

// Recorder accumulates counters. It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	runs      map[string]float64 // by machine
	evaluated float64
	skipped   float64
	empty     float64
	lastScore float64
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{runs: make(map[string]float64)}
}

// RecordRun counts one successful run.
func (r *Recorder) RecordRun(machine string, evaluated, skipped int, score float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[machine]++
	r.evaluated += float64(evaluated)
	r.skipped += float64(skipped)
	r.lastScore = score
}

// RecordEmptyRun counts a run in which every trial was skipped.
func (r *Recorder) RecordEmptyRun(skipped int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.empty++
	r.skipped += float64(skipped)
}

// Gather returns a snapshot of the counters as metric families.
func (r *Recorder) Gather() []*dto.MetricFamily {
	r.mu.Lock()
	defer r.mu.Unlock()

	machines := make([]string, 0, len(r.runs))
	for machine := range r.runs {
		machines = append(machines, machine)
	}
	sort.Strings(machines)

	runs := make([]*dto.Metric, 0, len(machines))
	for _, machine := range machines {
		runs = append(runs, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: proto.String("machine"), Value: proto.String(machine)}},
			Counter: &dto.Counter{Value: proto.Float64(r.runs[machine])},
		})
	}

	return []*dto.MetricFamily{
		{
			Name:   proto.String(RunsTotal),
			Help:   proto.String("Runs evaluated, by machine type."),
			Type:   dto.MetricType_COUNTER.Enum(),
			Metric: runs,
		},
		counter(TrialsEvaluatedTotal, "Valid trials evaluated.", r.evaluated),
		counter(TrialsSkippedTotal, "Trials skipped for non-positive pressure or depth.", r.skipped),
		counter(EmptyRunsTotal, "Runs rejected because no trial was valid.", r.empty),
		{
			Name:   proto.String(LastScore),
			Help:   proto.String("Overall performance score of the most recent run."),
			Type:   dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(r.lastScore)}}},
		},
	}
}

// WriteText writes the metrics in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	for _, mf := range r.Gather() {
		if len(mf.Metric) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func counter(name, help string, value float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: []*dto.Metric{{Counter: &dto.Counter{Value: proto.Float64(value)}}},
	}
}
