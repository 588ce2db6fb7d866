package seed

import (
	"sync"
	"time"
)

type Snapshot struct {
	Busy       bool       `json:"busy"`
	Message    string     `json:"message"`
	RunID      string     `json:"runId,omitempty"`
	Step       string     `json:"step,omitempty"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Progress is the busy flag and status message of the current or last seed run.
type Progress struct {
	mu sync.Mutex
	s  Snapshot
}

// begin marks a run as started. It returns false if another run is in flight.
func (p *Progress) begin(runID, message string, at time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.s.Busy {
		return false
	}
	p.s = Snapshot{Busy: true, Message: message, RunID: runID, StartedAt: &at}
	return true
}

func (p *Progress) step(name string) {
	p.mu.Lock()
	p.s.Step = name
	p.mu.Unlock()
}

func (p *Progress) finish(message string, at time.Time) {
	p.mu.Lock()
	p.s.Busy = false
	p.s.Message = message
	p.s.Step = ""
	p.s.FinishedAt = &at
	p.mu.Unlock()
}

func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.s
}
