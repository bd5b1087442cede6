package order

import "time"

// HistoryEntry is one line of the append-only status audit trail.
type HistoryEntry struct {
	status    Status
	timestamp time.Time
	note      string
}

// RestoreHistoryEntry reconstructs a history entry from persistence.
// New entries are only ever appended by the aggregate itself.
func RestoreHistoryEntry(status Status, timestamp time.Time, note string) HistoryEntry {
	return HistoryEntry{status: status, timestamp: timestamp, note: note}
}

// Status returns the fulfillment state this entry recorded.
func (e HistoryEntry) Status() Status {
	return e.status
}

// Timestamp returns when the transition was recorded.
func (e HistoryEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the operator-supplied or default note for the transition.
func (e HistoryEntry) Note() string {
	return e.note
}
