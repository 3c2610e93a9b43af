package domain_test

import (
	"testing"
	"time"

	"focusflow/internal/modules/client/domain"
)

func session() domain.ActiveSession {
	return domain.ActiveSession{
		SessionID:     "s1",
		StartTime:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		WorkDuration:  25,
		BreakDuration: 5,
	}
}

func TestRemainingRoundsUp(t *testing.T) {
	t.Parallel()
	s := session()
	cases := []struct {
		offset time.Duration
		want   int
	}{
		{0, 1500},
		{500 * time.Millisecond, 1500},
		{time.Second, 1499},
		{24*time.Minute + 59*time.Second + 100*time.Millisecond, 1},
		{25 * time.Minute, 0},
		{40 * time.Minute, 0},
		{-time.Minute, 1560},
	}
	for _, tc := range cases {
		if got := s.Remaining(s.StartTime.Add(tc.offset)); got != tc.want {
			t.Fatalf("offset %s: expected %d, got %d", tc.offset, tc.want, got)
		}
	}
}

func TestBreakRemaining(t *testing.T) {
	t.Parallel()
	s := session()
	if got := s.BreakRemaining(s.StartTime.Add(10 * time.Minute)); got != 300 {
		t.Fatalf("expected full break during work, got %d", got)
	}
	if got := s.BreakRemaining(s.StartTime.Add(27 * time.Minute)); got != 180 {
		t.Fatalf("expected 180 seconds of break left, got %d", got)
	}
	if got := s.BreakRemaining(s.StartTime.Add(31 * time.Minute)); got != 0 {
		t.Fatalf("expected break over, got %d", got)
	}
}

func TestProgressIsClamped(t *testing.T) {
	t.Parallel()
	s := session()
	if got := s.Progress(s.StartTime.Add(-time.Minute)); got != 0 {
		t.Fatalf("expected 0 before start, got %v", got)
	}
	if got := s.Progress(s.StartTime.Add(5 * time.Minute)); got != 0.2 {
		t.Fatalf("expected 0.2, got %v", got)
	}
	if got := s.Progress(s.StartTime.Add(time.Hour)); got != 1 {
		t.Fatalf("expected 1 after the work phase, got %v", got)
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()
	cases := map[int]string{0: "00:00", 59: "00:59", 61: "01:01", 1500: "25:00", 7200: "120:00", -3: "00:00"}
	for in, want := range cases {
		if got := domain.FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d): expected %q, got %q", in, want, got)
		}
	}
}
