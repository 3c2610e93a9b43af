package in

import (
	"net/http"

	"focusflow/internal/modules/blocklist/dto"
	blocklistin "focusflow/internal/modules/blocklist/port/in"
	"focusflow/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase blocklistin.Usecase
}

func NewHTTPHandler(usecase blocklistin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

// addRequest accepts either a single {type, value} pair or the bulk
// {website: [], app: []} form.
type addRequest struct {
	Type    string   `json:"type"`
	Value   string   `json:"value"`
	Website []string `json:"website"`
	App     []string `json:"app"`
}

type addResponse struct {
	Message    string            `json:"message"`
	Inserted   []dto.EntryOutput `json:"inserted"`
	Duplicates []dto.EntryOutput `json:"duplicates"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h HTTPHandler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /blocklist", auth(http.HandlerFunc(h.list)))
	mux.Handle("POST /blocklist", auth(http.HandlerFunc(h.add)))
	mux.Handle("DELETE /blocklist/{id}", auth(http.HandlerFunc(h.remove)))
}

func (h HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.usecase.List(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

func (h HTTPHandler) add(w http.ResponseWriter, r *http.Request) {
	req := addRequest{}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	websites, apps := req.Website, req.App
	if req.Type != "" && req.Value != "" {
		websites, apps = nil, nil
		switch req.Type {
		case "website":
			websites = []string{req.Value}
		case "app":
			apps = []string{req.Value}
		}
	}
	out, err := h.usecase.Add(r.Context(), dto.AddInput{UserID: httpx.UserID(r.Context()), Websites: websites, Apps: apps})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, addResponse{Message: "Blocklist processed", Inserted: out.Inserted, Duplicates: out.Duplicates})
}

func (h HTTPHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.usecase.Remove(r.Context(), httpx.UserID(r.Context()), r.PathValue("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Removed from blocklist"})
}
