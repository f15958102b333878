package monitor

import "time"

type LogEntry struct {
	StartedAt     time.Time
	ElapsedMillis int64
	URL           string
	Query         string
	// Running totals at the moment the entry was recorded.
	SlowCount  uint64
	TotalCount uint64
}

// slowLog is a fixed-capacity ring of entries, oldest first.
// It is not safe for concurrent use; Monitor guards it with its mutex.
type slowLog struct {
	capacity int
	entries  []LogEntry
	head     int
}

func newSlowLog(capacity int) *slowLog {
	return &slowLog{
		capacity: capacity,
		entries:  make([]LogEntry, 0, min(capacity, 1024)),
	}
}

// push appends e, overwriting the oldest entry once the log is full.
func (l *slowLog) push(e LogEntry) {
	if l.capacity == 0 {
		return
	}
	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, e)
		return
	}
	l.entries[l.head] = e
	l.head = (l.head + 1) % l.capacity
}

// snapshot copies the entries in insertion order.
func (l *slowLog) snapshot() []LogEntry {
	out := make([]LogEntry, 0, len(l.entries))
	out = append(out, l.entries[l.head:]...)
	out = append(out, l.entries[:l.head]...)
	return out
}
