// Package metrics provides Prometheus collectors for a generation run.
//
// Collectors live on a private registry owned by a Metrics value, so that
// every run (and every test) starts from zero and nothing is registered
// globally.
//
// # Basic Usage
//
//	m := metrics.New()
//	s, _ := sampler.New(cfg, catalog, sampler.WithObserver(m))
//	...
//	m.ObserveWrite(elapsed, res.Bytes)
//	for _, sample := range m.Snapshot() {
//	    logger.Info("metric", zap.String("name", sample.Name), zap.Float64("value", sample.Value))
//	}
package metrics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "rostergen"

// Metrics holds the collectors of one run. It implements sampler.Observer.
type Metrics struct {
	registry         *prometheus.Registry
	recordsGenerated *prometheus.CounterVec
	idCollisions     prometheus.Counter
	snodeDepth       *prometheus.CounterVec
	writeSeconds     prometheus.Histogram
	outputBytes      prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		recordsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "Records generated, by business line",
		}, []string{"business_line"}),
		idCollisions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "employee_id_collisions_total",
			Help:      "Employee ID draws that hit an ID already in use",
		}),
		snodeDepth: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snode_depth_total",
			Help:      "Records by assigned SNODE depth",
		}, []string{"depth"}),
		writeSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "write_seconds",
			Help:      "Time spent writing the output file",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		outputBytes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "output_bytes",
			Help:      "Size of the output file in bytes",
		}),
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordGenerated counts one record.
func (m *Metrics) RecordGenerated(businessLine string, depth int) {
	m.recordsGenerated.WithLabelValues(businessLine).Inc()
	m.snodeDepth.WithLabelValues(strconv.Itoa(depth)).Inc()
}

// IDCollision counts one rejected ID draw.
func (m *Metrics) IDCollision() {
	m.idCollisions.Inc()
}

// ObserveWrite records the duration and size of the output write.
func (m *Metrics) ObserveWrite(d time.Duration, bytes int64) {
	m.writeSeconds.Observe(d.Seconds())
	m.outputBytes.Set(float64(bytes))
}

// Sample is one metric value. Histograms contribute their sample count and
// sum as "_count" and "_sum".
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers every collected value, sorted by name then labels.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		name := mf.GetName()
		for _, metric := range mf.GetMetric() {
			labels := formatLabels(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{name, labels, metric.GetCounter().GetValue()})
			case dto.MetricType_GAUGE:
				out = append(out, Sample{name, labels, metric.GetGauge().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out = append(out,
					Sample{name + "_count", labels, float64(h.GetSampleCount())},
					Sample{name + "_sum", labels, h.GetSampleSum()})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.GetName() + "=" + strconv.Quote(p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
