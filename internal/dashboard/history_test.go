package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanwatch/lanwatch/internal/registry"
)

func TestHistory_RecordsOverallAndPerHost(t *testing.T) {
	h := NewHistory(10)

	rows := []registry.Host{
		{IP: "192.168.1.5", Status: registry.StatusUp, FailCount: 0},
		{IP: "192.168.1.9", Status: registry.StatusUnstable, FailCount: 2},
	}
	h.Record(rows, registry.Counts{Up: 1, Unstable: 1, Total: 2})

	assert.Equal(t, 1, h.Sweeps())
	assert.Equal(t, []float64{50}, h.OverallSeries(5))
	assert.Equal(t, []float64{100}, h.HostSeries("192.168.1.5", 5))
	assert.Equal(t, []float64{0}, h.HostSeries("192.168.1.9", 5))
}

func TestHistory_UnknownHostHasNoSeries(t *testing.T) {
	h := NewHistory(10)

	assert.Nil(t, h.HostSeries("192.168.1.77", 5))
	assert.Equal(t, 0, h.Sweeps())
}

func TestHistory_SeriesAreChronological(t *testing.T) {
	h := NewHistory(10)
	row := []registry.Host{{IP: "192.168.1.5"}}

	// Sweep 1: reachable. Sweep 2: failing. Sweep 3: reachable again.
	h.Record(row, registry.Counts{Up: 1, Total: 1})
	row[0].FailCount = 1
	h.Record(row, registry.Counts{Unstable: 1, Total: 1})
	row[0].FailCount = 0
	h.Record(row, registry.Counts{Up: 1, Total: 1})

	assert.Equal(t, []float64{100, 0, 100}, h.HostSeries("192.168.1.5", 10))
	assert.Equal(t, []float64{100, 0, 100}, h.OverallSeries(10))
	assert.Equal(t, []float64{0, 100}, h.HostSeries("192.168.1.5", 2))
}

func TestHistory_WrapsAroundCapacity(t *testing.T) {
	h := NewHistory(3)
	row := []registry.Host{{IP: "192.168.1.5"}}

	for i := 0; i < 5; i++ {
		// Alternate reachable and failing sweeps, ending reachable.
		row[0].FailCount = i % 2
		h.Record(row, registry.Counts{Total: 1})
	}

	assert.Equal(t, 3, h.Sweeps())
	assert.Equal(t, []float64{100, 0, 100}, h.HostSeries("192.168.1.5", 10))
}

func TestHistory_ZeroSizeGetsDefault(t *testing.T) {
	h := NewHistory(0)
	row := []registry.Host{{IP: "192.168.1.5"}}

	for i := 0; i < DefaultHistorySize+5; i++ {
		h.Record(row, registry.Counts{Up: 1, Total: 1})
	}

	assert.Equal(t, DefaultHistorySize, h.Sweeps())
}

func TestRingBuffer_GetLastClampsToStored(t *testing.T) {
	rb := newRingBuffer(10)
	rb.push(7)
	rb.push(8)

	assert.Equal(t, []float64{7, 8}, rb.getLast(100))
	assert.Nil(t, rb.getLast(0))
}

func TestRingBuffer_EmptyReturnsNil(t *testing.T) {
	rb := newRingBuffer(5)

	assert.Nil(t, rb.getLast(5))
}
