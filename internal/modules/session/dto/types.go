package dto

import "time"

type StartInput struct {
	UserID        string
	WorkDuration  int
	BreakDuration int
	Title         string
}

type EndInput struct {
	UserID    string
	SessionID string
}

type AbortInput struct {
	UserID    string
	SessionID string
	Reason    string
}

type InterruptInput struct {
	UserID    string
	SessionID string
}

// SessionOutput is also the wire shape of a session record.
type SessionOutput struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	WorkDuration  int        `json:"workDuration"`
	BreakDuration int        `json:"breakDuration"`
	Title         string     `json:"title,omitempty"`
	Status        string     `json:"status"`
	Interruptions int        `json:"interruptions"`
	AbortReason   string     `json:"abortReason,omitempty"`
}
