package in

import (
	"errors"
	"net/http"

	sessiondto "focusflow/internal/modules/session/dto"
	sessionin "focusflow/internal/modules/session/port/in"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase sessionin.Usecase
}

func NewHTTPHandler(usecase sessionin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

type startRequest struct {
	WorkDuration  int    `json:"workDuration"`
	BreakDuration int    `json:"breakDuration"`
	Title         string `json:"title"`
	Task          string `json:"task"`
}

type sessionRequest struct {
	SessionID   string `json:"sessionId"`
	AbortReason string `json:"abortReason"`
}

type sessionResponse struct {
	Message string                   `json:"message"`
	Session sessiondto.SessionOutput `json:"session"`
}

type activeResponse struct {
	Session *sessiondto.SessionOutput `json:"session"`
}

// Register mounts the session routes behind auth.
func (h HTTPHandler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("POST /session/start", auth(http.HandlerFunc(h.start)))
	mux.Handle("POST /session/end", auth(http.HandlerFunc(h.end)))
	mux.Handle("POST /session/abort", auth(http.HandlerFunc(h.abort)))
	mux.Handle("PATCH /session/interrupt/{id}", auth(http.HandlerFunc(h.interrupt)))
	mux.Handle("GET /session/active", auth(http.HandlerFunc(h.active)))
}

func (h HTTPHandler) start(w http.ResponseWriter, r *http.Request) {
	req := startRequest{}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	title := req.Title
	if title == "" {
		title = req.Task
	}
	out, err := h.usecase.Start(r.Context(), sessiondto.StartInput{
		UserID:        httpx.UserID(r.Context()),
		WorkDuration:  req.WorkDuration,
		BreakDuration: req.BreakDuration,
		Title:         title,
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sessionResponse{Message: "Session started", Session: out})
}

func (h HTTPHandler) end(w http.ResponseWriter, r *http.Request) {
	req := sessionRequest{}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	out, err := h.usecase.End(r.Context(), sessiondto.EndInput{UserID: httpx.UserID(r.Context()), SessionID: req.SessionID})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse{Message: "Session completed", Session: out})
}

func (h HTTPHandler) abort(w http.ResponseWriter, r *http.Request) {
	req := sessionRequest{}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	out, err := h.usecase.Abort(r.Context(), sessiondto.AbortInput{
		UserID:    httpx.UserID(r.Context()),
		SessionID: req.SessionID,
		Reason:    req.AbortReason,
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse{Message: "Session aborted", Session: out})
}

func (h HTTPHandler) interrupt(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.RecordInterruption(r.Context(), sessiondto.InterruptInput{
		UserID:    httpx.UserID(r.Context()),
		SessionID: r.PathValue("id"),
	})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse{Message: "Interruption recorded", Session: out})
}

func (h HTTPHandler) active(w http.ResponseWriter, r *http.Request) {
	out, err := h.usecase.GetActive(r.Context(), httpx.UserID(r.Context()))
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		httpx.WriteJSON(w, http.StatusOK, activeResponse{})
		return
	}
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, activeResponse{Session: &out})
}
