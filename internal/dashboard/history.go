package dashboard

import "github.com/lanwatch/lanwatch/internal/registry"

// DefaultHistorySize is the number of sweep samples kept per series. At the
// default sweep interval this covers roughly the last five minutes.
const DefaultHistorySize = 60

// History keeps rolling reachability series, one sample per completed
// sweep: an overall up-percentage plus a per-host 0/100 series that feeds
// the row sparklines. It is owned by the dashboard model and only touched
// from the Bubble Tea update loop, so it needs no locking.
type History struct {
	size    int
	overall *ringBuffer
	hosts   map[string]*ringBuffer
}

// NewHistory creates a history with the given per-series capacity.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:    size,
		overall: newRingBuffer(size),
		hosts:   make(map[string]*ringBuffer),
	}
}

// Record stores one sweep's outcome. A host counts as reachable this sweep
// when it has no failure streak; unstable and down rows both sample as 0.
func (h *History) Record(rows []registry.Host, counts registry.Counts) {
	h.overall.push(upPercent(counts))

	for _, row := range rows {
		rb, ok := h.hosts[row.IP]
		if !ok {
			rb = newRingBuffer(h.size)
			h.hosts[row.IP] = rb
		}
		if row.FailCount == 0 {
			rb.push(100)
		} else {
			rb.push(0)
		}
	}
}

// OverallSeries returns up to count overall samples, oldest first.
func (h *History) OverallSeries(count int) []float64 {
	return h.overall.getLast(count)
}

// HostSeries returns up to count samples for one host, oldest first.
// Returns nil for hosts that have not been swept yet.
func (h *History) HostSeries(ip string, count int) []float64 {
	rb, ok := h.hosts[ip]
	if !ok {
		return nil
	}
	return rb.getLast(count)
}

// Sweeps returns how many sweeps have been recorded.
func (h *History) Sweeps() int {
	return h.overall.count
}

// ringBuffer is a fixed-size circular buffer of float64 samples.
type ringBuffer struct {
	data  []float64
	head  int
	count int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{data: make([]float64, size)}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % len(r.data)
	if r.count < len(r.data) {
		r.count++
	}
}

// getLast returns the last count values in chronological order.
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points at the next write slot, so the newest sample is at head-1.
	start := (r.head - count + len(r.data)) % len(r.data)
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%len(r.data)]
	}
	return result
}
