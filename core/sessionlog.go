package session

import (
	"sync"
	"time"
)

// Direction tags a log entry with which way the frame travelled.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

const defaultLogCapacity = 512

// LogEntry is one recorded wire event with its derived one-line summary.
type LogEntry struct {
	Time      time.Time
	Direction Direction
	Summary   string
	Size      int
}

// SessionLog records every inbound and outbound event for diagnostic
// display. It is a pure side-channel: bounded (oldest entries dropped)
// so it can never affect protocol correctness.
type SessionLog struct {
	mu       sync.Mutex
	entries  []LogEntry
	capacity int
}

func newSessionLog(capacity int) *SessionLog {
	if capacity <= 0 {
		capacity = defaultLogCapacity
	}
	return &SessionLog{capacity: capacity}
}

func (l *SessionLog) Record(direction Direction, summary string, size int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{
		Time:      time.Now(),
		Direction: direction,
		Summary:   summary,
		Size:      size,
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a point-in-time copy of the recorded log.
func (l *SessionLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *SessionLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
