package database

import (
	"time"
)

type RunResult struct {
	RunID      string
	ChatID     int64
	Watermark  int64
	LastID     int64
	DryRun     bool
	Removed    []string
	Outcomes   []*Outcome
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r *RunResult) Count(state OutcomeState) int {
	count := 0

	for _, o := range r.Outcomes {
		if o.State == state {
			count++
		}
	}

	return count
}

type CheckResult struct {
	Chat   *Chat
	Latest *Message
}
