package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionOpened()
	m.SessionOpened()
	m.SessionRemoved()
	m.SpawnFailed("start")
	m.SessionExited(0)
	m.SessionExited(0)
	m.SessionExited(137)
	m.Read(10)
	m.Read(0)
	m.Written(4)
	m.IOError("write")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsOpened))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpawnFailures.WithLabelValues("start")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionExits.WithLabelValues("0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionExits.WithLabelValues("137")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.BytesRead))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.BytesWritten))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IOErrors.WithLabelValues("write")))

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 8, count)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionRemoved()
		m.SpawnFailed("dup")
		m.SessionExited(1)
		m.Read(1)
		m.Written(1)
		m.IOError("read")
	})
}
