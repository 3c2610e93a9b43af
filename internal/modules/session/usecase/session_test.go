package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sessionout "focusflow/internal/modules/session/adapter/out"
	sessiondto "focusflow/internal/modules/session/dto"
	sessionin "focusflow/internal/modules/session/port/in"
	"focusflow/internal/modules/session/service"
	"focusflow/internal/modules/session/usecase"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/sqlitedb"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return fmt.Sprintf("sess-%d", s.n)
}

func newUsecase(t *testing.T, times ...time.Time) sessionin.Usecase {
	t.Helper()
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "focusflow.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	svc := service.NewSessionService(&fakeClock{values: times}, &seqID{}, sessionout.NewSQLiteSessionStore(db))
	return usecase.NewInteractor(svc)
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
}

func TestSessionLifecycleWithInterruptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(t, at(9, 0), at(9, 25))

	start, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u1", WorkDuration: 25, BreakDuration: 5, Title: "  Write report "})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if start.Status != "running" || start.Interruptions != 0 || start.EndTime != nil {
		t.Fatalf("unexpected new session: %+v", start)
	}
	if start.Title != "Write report" {
		t.Fatalf("expected trimmed title, got %q", start.Title)
	}

	active, err := uc.GetActive(ctx, "u1")
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.ID != start.ID {
		t.Fatalf("expected active %s, got %s", start.ID, active.ID)
	}

	for i := 0; i < 2; i++ {
		if _, err := uc.RecordInterruption(ctx, sessiondto.InterruptInput{UserID: "u1", SessionID: start.ID}); err != nil {
			t.Fatalf("interrupt: %v", err)
		}
	}

	end, err := uc.End(ctx, sessiondto.EndInput{UserID: "u1", SessionID: start.ID})
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if end.Status != "completed" || end.Interruptions != 2 {
		t.Fatalf("unexpected ended session: %+v", end)
	}
	if end.EndTime == nil || !end.EndTime.Equal(at(9, 25)) {
		t.Fatalf("expected end time 09:25, got %v", end.EndTime)
	}
	if _, err := uc.GetActive(ctx, "u1"); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session, got %v", err)
	}
}

func TestEndAfterAbortRewritesToCompleted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(t, at(9, 0), at(9, 10), at(9, 30))

	start, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u1", WorkDuration: 25, BreakDuration: 5})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	aborted, err := uc.Abort(ctx, sessiondto.AbortInput{UserID: "u1", SessionID: start.ID, Reason: "phone call"})
	if err != nil {
		t.Fatalf("abort: %v", err)
	}
	if aborted.Status != "aborted" || aborted.AbortReason != "phone call" || !aborted.EndTime.Equal(at(9, 10)) {
		t.Fatalf("unexpected aborted session: %+v", aborted)
	}

	ended, err := uc.End(ctx, sessiondto.EndInput{UserID: "u1", SessionID: start.ID})
	if err != nil {
		t.Fatalf("end after abort: %v", err)
	}
	if ended.Status != "completed" {
		t.Fatalf("expected completed, got %s", ended.Status)
	}
	if !ended.EndTime.Equal(at(9, 30)) {
		t.Fatalf("expected new end time, got %v", ended.EndTime)
	}
}

func TestStartValidationAndOwnership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(t, at(9, 0))

	for _, in := range []sessiondto.StartInput{
		{UserID: "u1", BreakDuration: 5},
		{UserID: "u1", WorkDuration: 25},
		{UserID: "u1", WorkDuration: -1, BreakDuration: 5},
	} {
		if _, err := uc.Start(ctx, in); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", in, err)
		}
	}

	start, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u1", WorkDuration: 25, BreakDuration: 5})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.End(ctx, sessiondto.EndInput{UserID: "u2", SessionID: start.ID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("foreign end must be not found, got %v", err)
	}
	if _, err := uc.RecordInterruption(ctx, sessiondto.InterruptInput{UserID: "u1", SessionID: "missing"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown interrupt must be not found, got %v", err)
	}
	if _, err := uc.Abort(ctx, sessiondto.AbortInput{UserID: "u1"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing session id must be invalid, got %v", err)
	}
}

func TestConcurrentRunningSessionsReturnLatestAndListAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc := newUsecase(t, at(9, 0), at(9, 5), at(10, 0))

	first, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u1", WorkDuration: 25, BreakDuration: 5})
	if err != nil {
		t.Fatalf("start first: %v", err)
	}
	second, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u1", WorkDuration: 50, BreakDuration: 10})
	if err != nil {
		t.Fatalf("second start is allowed: %v", err)
	}
	if _, err := uc.Start(ctx, sessiondto.StartInput{UserID: "u2", WorkDuration: 25, BreakDuration: 5}); err != nil {
		t.Fatalf("other user start: %v", err)
	}

	active, err := uc.GetActive(ctx, "u1")
	if err != nil {
		t.Fatalf("get active: %v", err)
	}
	if active.ID != second.ID {
		t.Fatalf("expected latest running %s, got %s", second.ID, active.ID)
	}

	all, err := uc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("expected both u1 sessions in start order, got %+v", all)
	}
}
