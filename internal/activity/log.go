// Package activity keeps a bounded, in-memory log of operational events.
// The log is process-lifetime only; a restart starts it empty.
package activity

import (
	"sync"
	"time"

	"github.com/BlackSenju/techhive-automation/internal/obs"
)

// Capacity is the maximum number of entries retained; inserting beyond it
// evicts the oldest entry.
const Capacity = 100

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is one record in the activity log.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Status    Status    `json:"status"`
}

// Log is a fixed-capacity, newest-first event log. Entries are appended by
// routines running on different goroutines, so access is mutex-guarded.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

func NewLog() *Log {
	return &Log{}
}

// Record appends a success entry.
func (l *Log) Record(action, details string) {
	l.record(action, details, StatusSuccess)
}

// RecordError appends an error entry.
func (l *Log) RecordError(action, details string) {
	l.record(action, details, StatusError)
}

func (l *Log) record(action, details string, status Status) {
	e := Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
		Status:    status,
	}

	l.mu.Lock()
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > Capacity {
		l.entries = l.entries[:Capacity]
	}
	l.mu.Unlock()

	if status == StatusError {
		obs.Logger.Error("activity", "action", action, "details", details)
	} else {
		obs.Logger.Info("activity", "action", action, "details", details)
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
