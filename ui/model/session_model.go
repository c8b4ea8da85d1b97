package model

import (
	"sync/atomic"
)

// SessionModel tracks accepted and rejected crop counts for the current run.
// It is decoupled from the UI; presenters should poll Values() and update views.
// Concurrency-safe via atomics because dialog callbacks may fire off the main
// update path. The zero value is ready to use.
type SessionModel struct {
	accepted atomic.Int64
	rejected atomic.Int64
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// Accept records an accepted crop.
func (m *SessionModel) Accept() {
	if m != nil {
		m.accepted.Add(1)
	}
}

// Reject records a rejected crop.
func (m *SessionModel) Reject() {
	if m != nil {
		m.rejected.Add(1)
	}
}

// Values returns the accepted and rejected crop counts.
func (m *SessionModel) Values() (accepted, rejected int) {
	if m == nil {
		return 0, 0
	}
	return int(m.accepted.Load()), int(m.rejected.Load())
}
