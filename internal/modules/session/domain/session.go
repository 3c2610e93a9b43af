package domain

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

func (s Status) Validate() error {
	switch s {
	case StatusRunning, StatusCompleted, StatusAborted:
		return nil
	default:
		return fmt.Errorf("unknown session status: %s", s)
	}
}

// Session is one focus interval. EndTime is nil while the session runs.
// AbortReason is only meaningful for aborted sessions.
type Session struct {
	ID            string
	UserID        string
	StartTime     time.Time
	EndTime       *time.Time
	WorkDuration  int
	BreakDuration int
	Title         string
	Status        Status
	Interruptions int
	AbortReason   string
}

func (s Session) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if s.WorkDuration <= 0 {
		return fmt.Errorf("work duration must be a positive number of minutes")
	}
	if s.BreakDuration <= 0 {
		return fmt.Errorf("break duration must be a positive number of minutes")
	}
	if s.Interruptions < 0 {
		return fmt.Errorf("interruptions must be non-negative")
	}
	return s.Status.Validate()
}
