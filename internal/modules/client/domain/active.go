package domain

import (
	"fmt"
	"time"
)

// ActiveSession is the client's cached view of the running session.
type ActiveSession struct {
	SessionID     string    `json:"sessionId"`
	UserID        string    `json:"userId"`
	StartTime     time.Time `json:"startTime"`
	WorkDuration  int       `json:"workDuration"`
	BreakDuration int       `json:"breakDuration"`
	Title         string    `json:"title,omitempty"`
}

func (a ActiveSession) Total() time.Duration {
	return time.Duration(a.WorkDuration) * time.Minute
}

// Remaining is the whole seconds left in the work phase, rounded up and
// never negative.
func (a ActiveSession) Remaining(now time.Time) int {
	return ceilSeconds(a.Total() - now.Sub(a.StartTime))
}

// BreakRemaining counts the break that follows the work phase. It equals the
// full break until the work phase is over.
func (a ActiveSession) BreakRemaining(now time.Time) int {
	end := a.StartTime.Add(a.Total() + time.Duration(a.BreakDuration)*time.Minute)
	left := ceilSeconds(end.Sub(now))
	full := a.BreakDuration * 60
	if left > full {
		return full
	}
	return left
}

// Progress is the elapsed fraction of the work phase in [0, 1].
func (a ActiveSession) Progress(now time.Time) float64 {
	total := a.Total()
	if total <= 0 {
		return 1
	}
	elapsed := now.Sub(a.StartTime)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	}
	return float64(elapsed) / float64(total)
}

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// Tick is one poll of the work timer.
type Tick struct {
	Remaining int
	Progress  float64
	TimeOver  bool
	AutoEnded bool
}
