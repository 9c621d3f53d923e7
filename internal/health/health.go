// Package health tracks liveness metrics for the portal.
//
// The monitor records uptime and the outcome of the most recent complaint
// submission; the API server exposes it at GET /health for monitoring tools.
package health

import (
	"sync"
	"time"
)

// Status is the payload returned by the /health endpoint.
type Status struct {
	Status           string `json:"status"`
	Uptime           string `json:"uptime"`
	LastSubmitTime   string `json:"last_submit_time"`
	LastSubmitStatus string `json:"last_submit_status"`
}

// Monitor tracks application health metrics.
//
// Thread-safety: all fields are protected by RWMutex; safe for concurrent
// updates from request handlers.
type Monitor struct {
	startTime        time.Time
	lastSubmitTime   time.Time
	lastSubmitStatus string
	mu               sync.RWMutex
}

// NewMonitor creates a health monitor anchored at the current time.
func NewMonitor() *Monitor {
	return &Monitor{
		startTime:        time.Now(),
		lastSubmitStatus: "no submissions yet",
	}
}

// RecordSubmit updates the submission status after a submit attempt.
//
// Call with "success" after a stored complaint, or an error summary after a
// failed one.
func (m *Monitor) RecordSubmit(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSubmitTime = time.Now()
	m.lastSubmitStatus = status
}

// GetStatus returns the current health status.
func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	last := ""
	if !m.lastSubmitTime.IsZero() {
		last = m.lastSubmitTime.Format("2006-01-02 15:04:05")
	}

	return Status{
		Status:           "healthy",
		Uptime:           time.Since(m.startTime).String(),
		LastSubmitTime:   last,
		LastSubmitStatus: m.lastSubmitStatus,
	}
}
