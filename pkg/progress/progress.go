// Package progress tracks completion of long renders and estimates the
// time remaining from a moving average of recent throughput.
package progress

import (
	"fmt"
	"io"
	"time"
)

const averageWindow = 32

// updateRecord is one observed (elapsed, work) delta
type updateRecord struct {
	elapsed time.Duration
	work    int
}

// movingAverage keeps the mean of the last averageWindow records
type movingAverage struct {
	entries [averageWindow]updateRecord
	index   int
	count   int
}

func (m *movingAverage) update(record updateRecord) {
	m.entries[m.index] = record
	m.index = (m.index + 1) % averageWindow
	if m.count < averageWindow {
		m.count++
	}
}

func (m *movingAverage) average() updateRecord {
	if m.count == 0 {
		return updateRecord{}
	}
	var sum updateRecord
	for i := 0; i < m.count; i++ {
		sum.elapsed += m.entries[i].elapsed
		sum.work += m.entries[i].work
	}
	return updateRecord{
		elapsed: sum.elapsed / time.Duration(m.count),
		work:    sum.work / m.count,
	}
}

// Tracker measures progress through a fixed amount of work
type Tracker struct {
	min        int
	max        int
	current    int
	start      time.Time
	lastUpdate time.Time
	records    movingAverage
}

// NewTracker creates a tracker for work in [min, max]
func NewTracker(min, max int) *Tracker {
	now := time.Now()
	return &Tracker{
		min:        min,
		max:        max,
		current:    min,
		start:      now,
		lastUpdate: now,
	}
}

// Update records the new completion count
func (t *Tracker) Update(current int) {
	diff := current - t.current
	if diff < 0 {
		diff = 0
	}
	t.current = current

	now := time.Now()
	t.records.update(updateRecord{elapsed: now.Sub(t.lastUpdate), work: diff})
	t.lastUpdate = now
}

// Progress returns completion as a percentage
func (t *Tracker) Progress() float64 {
	if t.max == t.min {
		return 100.0
	}
	return float64(t.current-t.min) / float64(t.max-t.min) * 100.0
}

// Elapsed returns the time since the tracker was created
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ETA estimates the remaining time from recent throughput
func (t *Tracker) ETA() time.Duration {
	avg := t.records.average()
	speed := float64(avg.work) / avg.elapsed.Seconds()
	if speed <= 0 || avg.elapsed <= 0 {
		return 0
	}
	remaining := float64(t.max - t.current)
	return time.Duration(remaining / speed * float64(time.Second))
}

// Max returns the tracked maximum
func (t *Tracker) Max() int {
	return t.max
}

// Reporter emits a human-readable progress line at bounded intervals.
// It implements the renderer's ProgressFunc signature.
type Reporter struct {
	out      io.Writer
	tracker  *Tracker
	interval int
}

// minimumUpdateInterval bounds how often the progress line is rewritten
const minimumUpdateInterval = 512

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out, interval: minimumUpdateInterval}
}

// Update consumes a (current, max) count pair. Output is emitted only
// every interval counts and when the work completes.
func (r *Reporter) Update(current, max int) {
	if r.tracker == nil || r.tracker.Max() != max {
		r.tracker = NewTracker(0, max)
	}

	shouldUpdate := current%r.interval == 0
	reachedMax := current == max
	if !shouldUpdate && !reachedMax {
		return
	}

	r.tracker.Update(current)
	fmt.Fprintf(r.out, "Progress: %6.2f%% | Elapsed: %6.2fs | ETA: %6.2fs\r",
		r.tracker.Progress(),
		r.tracker.Elapsed().Seconds(),
		r.tracker.ETA().Seconds())
	if reachedMax {
		fmt.Fprintln(r.out)
	}
}
