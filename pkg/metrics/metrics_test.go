package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.RecordGenerated("Legal", 12)
	m.RecordGenerated("Legal", 15)
	m.RecordGenerated("Internal Audit", 12)
	m.IDCollision()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.recordsGenerated.WithLabelValues("Legal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.recordsGenerated.WithLabelValues("Internal Audit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.snodeDepth.WithLabelValues("12")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.idCollisions))
}

func TestMetrics_PrivateRegistry(t *testing.T) {
	a, b := New(), New()
	a.IDCollision()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.idCollisions))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.idCollisions))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := New()
	m.RecordGenerated("Legal", 13)
	m.ObserveWrite(250*time.Millisecond, 4096)

	samples, err := m.Snapshot()
	require.NoError(t, err)

	byKey := map[string]float64{}
	for _, s := range samples {
		byKey[s.Name+s.Labels] = s.Value
	}
	assert.Equal(t, 1.0, byKey[`rostergen_records_generated_total{business_line="Legal"}`])
	assert.Equal(t, 1.0, byKey[`rostergen_snode_depth_total{depth="13"}`])
	assert.Equal(t, 0.0, byKey["rostergen_employee_id_collisions_total"])
	assert.Equal(t, 4096.0, byKey["rostergen_output_bytes"])
	assert.Equal(t, 1.0, byKey["rostergen_write_seconds_count"])
	assert.InDelta(t, 0.25, byKey["rostergen_write_seconds_sum"], 1e-9)

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i-1].Name, samples[i].Name)
	}
}

func TestMetrics_Lint(t *testing.T) {
	m := New()
	m.RecordGenerated("Legal", 12)
	problems, err := testutil.GatherAndLint(m.Registry())
	require.NoError(t, err)
	assert.Empty(t, problems)
}
