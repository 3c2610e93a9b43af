package domain

import (
	"fmt"
	"time"
)

type Kind string

const (
	KindStart     Kind = "start"
	KindEnd       Kind = "end"
	KindAbort     Kind = "abort"
	KindBreakOver Kind = "break_over"
	KindTest      Kind = "test"
)

func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindStart, KindEnd, KindAbort, KindBreakOver, KindTest:
		return k, nil
	}
	return "", fmt.Errorf("unknown notification kind %q", raw)
}

// Pattern is a beep sequence. Each step plays for Duration scaled by the step
// factor and is followed by Gap.
type Pattern struct {
	Frequency float64
	Duration  time.Duration
	Steps     []float64
	Gap       time.Duration
}

const stepGap = 100 * time.Millisecond

func PatternFor(kind Kind) Pattern {
	switch kind {
	case KindStart:
		return Pattern{Frequency: 800, Duration: 300 * time.Millisecond, Steps: []float64{1, 0.2, 1}, Gap: stepGap}
	case KindEnd, KindBreakOver:
		return Pattern{Frequency: 600, Duration: 500 * time.Millisecond, Steps: []float64{1, 0.1, 1, 0.1, 1}, Gap: stepGap}
	case KindAbort:
		return Pattern{Frequency: 400, Duration: 800 * time.Millisecond, Steps: []float64{1}, Gap: stepGap}
	case KindTest:
		return Pattern{Frequency: 700, Duration: 400 * time.Millisecond, Steps: []float64{1, 0.2, 1}, Gap: stepGap}
	}
	return Pattern{Frequency: 600, Duration: 300 * time.Millisecond, Steps: []float64{1}, Gap: stepGap}
}

// Event is one thing worth telling the user about.
type Event struct {
	Kind    Kind
	Minutes int
	Title   string
}

type Message struct {
	Title string
	Body  string
}

func (e Event) Message() Message {
	switch e.Kind {
	case KindStart:
		title := "Focus Session Started"
		if e.Title != "" {
			title += ": " + e.Title
		}
		return Message{
			Title: title,
			Body:  fmt.Sprintf("Your %d-minute focus session has begun. Stay focused!", e.Minutes),
		}
	case KindEnd:
		return Message{Title: "Focus Time Complete!", Body: "Great job! Your focus time is over. It's break time now."}
	case KindAbort:
		return Message{Title: "Session Aborted", Body: "Your focus session has been aborted. You can start a new one anytime."}
	case KindBreakOver:
		return Message{Title: "Break Time Over", Body: "Your break is complete. Ready to start another focus session?"}
	default:
		return Message{Title: "Test Notification", Body: "This is a test notification from FocusFlow. You're all set!"}
	}
}
