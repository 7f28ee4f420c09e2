package goods

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/logging"
)

type Handler struct {
	svc *goods.Service
}

func NewHandler(svc *goods.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/purpose", h.setPurpose)
}

// MetaRoutes serves the static reference data shown around the board.
func (h *Handler) MetaRoutes(r chi.Router) {
	r.Get("/purposes", h.purposes)
	r.Get("/voyage", h.voyage)
}

// FilterFromRequest reads the purpose and q query parameters.
func FilterFromRequest(r *http.Request) (goods.Filter, error) {
	purpose, err := goods.ParsePurposeFilter(r.URL.Query().Get("purpose"))
	if err != nil {
		return goods.Filter{}, err
	}

	return goods.Filter{Purpose: purpose, Query: r.URL.Query().Get("q")}, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := FilterFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.svc.Visible(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := listResponse{Total: len(records)}

	if s := r.URL.Query().Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			http.Error(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}

		pageRecords, totalPages := goods.Page(records, page)
		resp.Goods = toResponseList(pageRecords, (page-1)*goods.PageSize+1)
		resp.Page = page
		resp.PageSize = goods.PageSize
		resp.TotalPages = totalPages
	} else {
		resp.Goods = toResponseList(records, 1)
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	records, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	for i, rec := range records {
		if rec.ID == id {
			writeJSON(w, r, http.StatusOK, toResponse(i+1, rec))
			return
		}
	}

	http.Error(w, "goods not found", http.StatusNotFound)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, toCountsResponse(counts))
}

type setPurposeRequest struct {
	Purpose goods.Purpose `json:"purpose"`
}

func (h *Handler) setPurpose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req setPurposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.svc.SetPurpose(r.Context(), id, req.Purpose)
	if err != nil {
		if errors.Is(err, goods.ErrInvalidPurpose) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if !updated {
		http.Error(w, "goods not found", http.StatusNotFound)
		return
	}

	logging.FromContext(r.Context()).Info("transport purpose changed", "id", id, "purpose", req.Purpose)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) purposes(w http.ResponseWriter, r *http.Request) {
	resp := make([]purposeOptionResponse, len(goods.PurposeOptions))
	for i, o := range goods.PurposeOptions {
		resp[i] = purposeOptionResponse{Value: o.Purpose, Label: o.Label, Color: o.Color}
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) voyage(w http.ResponseWriter, r *http.Request) {
	resp := make([]voyageFieldResponse, len(goods.DefaultVoyage))
	for i, f := range goods.DefaultVoyage {
		resp[i] = voyageFieldResponse{Label: f.Label, Value: f.Value}
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}
