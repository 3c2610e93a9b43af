package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"

	apperrors "focusflow/internal/platform/errors"
)

type ctxKey struct{}

// Authenticator resolves a bearer token to the owning user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps err onto the status taxonomy: invalid input 400,
// unauthorized 401, not found 404, everything else 500.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Message: apperrors.Message(err, "Invalid request")})
	case errors.Is(err, apperrors.ErrUnauthorized):
		WriteJSON(w, http.StatusUnauthorized, ErrorBody{Message: apperrors.Message(err, "Unauthorized")})
	case errors.Is(err, apperrors.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, ErrorBody{Message: apperrors.Message(err, "Not found")})
	default:
		WriteJSON(w, http.StatusInternalServerError, ErrorBody{Message: "Internal server error", Error: err.Error()})
	}
}

// DecodeJSON reads a JSON request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperrors.New(apperrors.ErrInvalidInput, "Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, fmt.Sprintf("Malformed JSON body: %v", err))
	}
	return nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved user id on the request context.
func RequireAuth(auth Authenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			WriteError(w, apperrors.New(apperrors.ErrUnauthorized, "Unauthorized"))
			return
		}
		userID, err := auth.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			WriteError(w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogRequests writes one line per request.
func LogRequests(log hclog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(started))
	})
}
