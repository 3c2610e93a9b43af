package domain_test

import (
	"testing"
	"time"

	"focusflow/internal/modules/notify/domain"
)

func TestStartMessageIncludesTitleAndMinutes(t *testing.T) {
	t.Parallel()
	msg := domain.Event{Kind: domain.KindStart, Minutes: 25, Title: "Essay"}.Message()
	if msg.Title != "Focus Session Started: Essay" {
		t.Fatalf("unexpected title %q", msg.Title)
	}
	if msg.Body != "Your 25-minute focus session has begun. Stay focused!" {
		t.Fatalf("unexpected body %q", msg.Body)
	}
	if got := (domain.Event{Kind: domain.KindStart, Minutes: 5}).Message().Title; got != "Focus Session Started" {
		t.Fatalf("untitled session should not carry a suffix, got %q", got)
	}
}

func TestPatterns(t *testing.T) {
	t.Parallel()
	cases := map[domain.Kind]struct {
		freq  float64
		dur   time.Duration
		beeps int
	}{
		domain.KindStart: {800, 300 * time.Millisecond, 3},
		domain.KindEnd:   {600, 500 * time.Millisecond, 5},
		domain.KindAbort: {400, 800 * time.Millisecond, 1},
		domain.KindTest:  {700, 400 * time.Millisecond, 3},
	}
	for kind, want := range cases {
		p := domain.PatternFor(kind)
		if p.Frequency != want.freq || p.Duration != want.dur || len(p.Steps) != want.beeps {
			t.Fatalf("%s: unexpected pattern %+v", kind, p)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	if k, err := domain.ParseKind("abort"); err != nil || k != domain.KindAbort {
		t.Fatalf("expected abort, got %q (%v)", k, err)
	}
	if _, err := domain.ParseKind("ring"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
