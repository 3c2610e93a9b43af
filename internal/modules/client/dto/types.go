package dto

import "time"

type StartInput struct {
	WorkDuration  int
	BreakDuration int
	Title         string
}

type Active struct {
	SessionID     string
	Title         string
	StartTime     time.Time
	WorkDuration  int
	BreakDuration int
	Remaining     int
	Clock         string
	Progress      float64
}

// Tick is one poll of the running timer.
type Tick struct {
	Remaining int
	Clock     string
	Progress  float64
	TimeOver  bool
	// AutoEnded is true only on the tick that ended the session.
	AutoEnded bool
}

type Entry struct {
	ID    string
	Type  string
	Value string
}

type AddInput struct {
	Websites []string
	Apps     []string
}

type AddOutput struct {
	Inserted   []Entry
	Duplicates []Entry
}
