package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
		m.IncInFlight()
		m.DecInFlight()
		m.RecordDBQuery("select", time.Millisecond, nil)
		m.SetDBPoolStats(1, 1, 0)
		m.IncMaskApplication("builtin")
		m.IncScheduleSaved("created")
	})
}

func TestCounters(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.IncMaskApplication("builtin")
	m.IncMaskApplication("builtin")
	m.IncMaskApplication("pattern")
	m.IncScheduleSaved("completed")
	m.RecordDBQuery("insert", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, counterValue(t, m.maskApplications.WithLabelValues("builtin")))
	assert.Equal(t, 1.0, counterValue(t, m.maskApplications.WithLabelValues("pattern")))
	assert.Equal(t, 1.0, counterValue(t, m.schedulesSaved.WithLabelValues("completed")))
	assert.Equal(t, 1.0, counterValue(t, m.dbQueriesTotal.WithLabelValues("insert", "error")))
}
