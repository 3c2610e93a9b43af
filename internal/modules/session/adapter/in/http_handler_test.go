package in_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sessionin "focusflow/internal/modules/session/adapter/in"
	sessiondto "focusflow/internal/modules/session/dto"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/httpx"
)

type fakeUsecase struct {
	active     *sessiondto.SessionOutput
	lastStart  sessiondto.StartInput
	lastAbort  sessiondto.AbortInput
	interrupts []string
}

func (f *fakeUsecase) Start(_ context.Context, in sessiondto.StartInput) (sessiondto.SessionOutput, error) {
	f.lastStart = in
	if in.WorkDuration <= 0 {
		return sessiondto.SessionOutput{}, apperrors.New(apperrors.ErrInvalidInput, "work duration must be a positive number of minutes")
	}
	return sessiondto.SessionOutput{ID: "s1", UserID: in.UserID, Status: "running", WorkDuration: in.WorkDuration}, nil
}

func (f *fakeUsecase) End(_ context.Context, in sessiondto.EndInput) (sessiondto.SessionOutput, error) {
	if in.SessionID != "s1" {
		return sessiondto.SessionOutput{}, apperrors.New(apperrors.ErrNotFound, "Session not found")
	}
	return sessiondto.SessionOutput{ID: "s1", Status: "completed"}, nil
}

func (f *fakeUsecase) Abort(_ context.Context, in sessiondto.AbortInput) (sessiondto.SessionOutput, error) {
	f.lastAbort = in
	return sessiondto.SessionOutput{ID: in.SessionID, Status: "aborted", AbortReason: in.Reason}, nil
}

func (f *fakeUsecase) RecordInterruption(_ context.Context, in sessiondto.InterruptInput) (sessiondto.SessionOutput, error) {
	f.interrupts = append(f.interrupts, in.SessionID)
	return sessiondto.SessionOutput{ID: in.SessionID, Interruptions: len(f.interrupts)}, nil
}

func (f *fakeUsecase) GetActive(context.Context, string) (sessiondto.SessionOutput, error) {
	if f.active == nil {
		return sessiondto.SessionOutput{}, apperrors.ErrNoActiveSession
	}
	return *f.active, nil
}

func (f *fakeUsecase) List(context.Context, string) ([]sessiondto.SessionOutput, error) {
	return nil, nil
}

func passAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(httpx.WithUserID(r.Context(), "u1")))
	})
}

func newServer(uc *fakeUsecase) *http.ServeMux {
	mux := http.NewServeMux()
	sessionin.NewHTTPHandler(uc).Register(mux, passAuth)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	decoded := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, decoded
}

func TestStartRespondsCreatedAndAcceptsTaskAlias(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	rec, body := do(t, newServer(uc), http.MethodPost, "/session/start", `{"workDuration":25,"breakDuration":5,"task":"Read"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if body["message"] != "Session started" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if uc.lastStart.Title != "Read" || uc.lastStart.UserID != "u1" {
		t.Fatalf("unexpected start input %+v", uc.lastStart)
	}
}

func TestStartValidationIsBadRequest(t *testing.T) {
	t.Parallel()
	rec, _ := do(t, newServer(&fakeUsecase{}), http.MethodPost, "/session/start", `{"breakDuration":5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	rec, _ = do(t, newServer(&fakeUsecase{}), http.MethodPost, "/session/start", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
}

func TestEndAbortInterruptResponses(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	mux := newServer(uc)

	rec, body := do(t, mux, http.MethodPost, "/session/end", `{"sessionId":"s1"}`)
	if rec.Code != http.StatusOK || body["message"] != "Session completed" {
		t.Fatalf("end: %d %v", rec.Code, body)
	}
	rec, body = do(t, mux, http.MethodPost, "/session/end", `{"sessionId":"zzz"}`)
	if rec.Code != http.StatusNotFound || body["message"] != "Session not found" {
		t.Fatalf("end unknown: %d %v", rec.Code, body)
	}
	rec, body = do(t, mux, http.MethodPost, "/session/abort", `{"sessionId":"s1","abortReason":"meeting"}`)
	if rec.Code != http.StatusOK || body["message"] != "Session aborted" || uc.lastAbort.Reason != "meeting" {
		t.Fatalf("abort: %d %v %+v", rec.Code, body, uc.lastAbort)
	}
	rec, body = do(t, mux, http.MethodPatch, "/session/interrupt/s1", ``)
	if rec.Code != http.StatusOK || body["message"] != "Interruption recorded" {
		t.Fatalf("interrupt: %d %v", rec.Code, body)
	}
	if len(uc.interrupts) != 1 || uc.interrupts[0] != "s1" {
		t.Fatalf("expected path id to reach usecase, got %v", uc.interrupts)
	}
}

func TestActiveReturnsNullWhenIdle(t *testing.T) {
	t.Parallel()
	uc := &fakeUsecase{}
	mux := newServer(uc)
	rec, body := do(t, mux, http.MethodGet, "/session/active", ``)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if v, ok := body["session"]; !ok || v != nil {
		t.Fatalf("expected session:null, got %v", body)
	}

	uc.active = &sessiondto.SessionOutput{ID: "s9", StartTime: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), Status: "running"}
	_, body = do(t, mux, http.MethodGet, "/session/active", ``)
	session, ok := body["session"].(map[string]any)
	if !ok || session["id"] != "s9" || session["status"] != "running" {
		t.Fatalf("expected running session, got %v", body)
	}
}
