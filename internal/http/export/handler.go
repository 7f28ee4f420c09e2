package export

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pcs/internal/export"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
	goodsHandler "github.com/MrJamesThe3rd/pcs/internal/http/goods"
	"github.com/MrJamesThe3rd/pcs/internal/logging"
)

type Handler struct {
	svc      *export.Service
	goodsSvc *goods.Service
}

func NewHandler(svc *export.Service, goodsSvc *goods.Service) *Handler {
	return &Handler{svc: svc, goodsSvc: goodsSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

// download streams the currently visible goods as CSV. It accepts the same
// purpose and q parameters as the list endpoint.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter, err := goodsHandler.FilterFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.goodsSvc.Visible(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Buffer so a write failure can still become a 500.
	var buf bytes.Buffer
	if err := h.svc.WriteCSV(&buf, records); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.svc.Filename()))

	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.FromContext(r.Context()).Error("failed to write csv", "error", err)
	}
}
