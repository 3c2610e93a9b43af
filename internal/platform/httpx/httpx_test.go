package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusflow/internal/platform/httpx"
	apperrors "focusflow/internal/platform/errors"
)

type fakeAuth map[string]string

func (f fakeAuth) Authenticate(_ context.Context, token string) (string, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return "", apperrors.New(apperrors.ErrUnauthorized, "Invalid token")
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	handler := httpx.RequireAuth(fakeAuth{"good": "user-1"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"user": httpx.UserID(r.Context())})
	}))

	cases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", status: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "valid", header: "Bearer good", status: http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/session/active", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.status, rec.Code)
		}
	}
}

func TestWriteErrorStatusMapping(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.New(apperrors.ErrInvalidInput, "No valid items provided"), http.StatusBadRequest, "No valid items provided"},
		{apperrors.New(apperrors.ErrNotFound, "Session not found"), http.StatusNotFound, "Session not found"},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{errors.New("disk full"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		httpx.WriteError(rec, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		body := httpx.ErrorBody{}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Message != tc.message {
			t.Fatalf("expected message %q, got %q", tc.message, body.Message)
		}
	}
}
