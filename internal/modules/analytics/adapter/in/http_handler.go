package in

import (
	"net/http"

	analyticsin "focusflow/internal/modules/analytics/port/in"
	"focusflow/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase analyticsin.Usecase
}

func NewHTTPHandler(usecase analyticsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /session/analytics", auth(http.HandlerFunc(h.analytics)))
}

func (h HTTPHandler) analytics(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.usecase.GetAnalytics(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bundle)
}
