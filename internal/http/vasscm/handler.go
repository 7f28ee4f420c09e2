package vasscm

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/logging"
	"github.com/MrJamesThe3rd/pcs/internal/vasscm"
)

type Handler struct {
	submitter vasscm.Submitter
	goodsSvc  *goods.Service
}

func NewHandler(submitter vasscm.Submitter, goodsSvc *goods.Service) *Handler {
	return &Handler{submitter: submitter, goodsSvc: goodsSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
}

type receiptResponse struct {
	ID          uuid.UUID `json:"id"`
	Count       int       `json:"count"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// submit hands the full board (not the filtered view) to the submitter.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	records, err := h.goodsSvc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	receipt, err := h.submitter.Submit(r.Context(), records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)

	if err := json.NewEncoder(w).Encode(receiptResponse{
		ID:          receipt.ID,
		Count:       receipt.Count,
		SubmittedAt: receipt.SubmittedAt,
	}); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}
