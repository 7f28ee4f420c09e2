package goods

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
)

type recordResponse struct {
	Seq           int             `json:"seq"`
	ID            string          `json:"id"`
	ManifestNo    string          `json:"manifest_no"`
	HouseBill     string          `json:"house_bill"`
	ContainerNo   string          `json:"container_no"`
	SealNo        string          `json:"seal_no"`
	Commodity     string          `json:"commodity"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	Weight        decimal.Decimal `json:"weight"`
	DischargePort string          `json:"discharge_port"`
	Status        goods.Status    `json:"status"`
	StatusColor   string          `json:"status_color"`
	Destination   string          `json:"destination"`
	Purpose       goods.Purpose   `json:"transport_purpose"`
}

type listResponse struct {
	Goods      []recordResponse `json:"goods"`
	Total      int              `json:"total"`
	Page       int              `json:"page,omitempty"`
	PageSize   int              `json:"page_size,omitempty"`
	TotalPages int              `json:"total_pages,omitempty"`
}

type purposeCountResponse struct {
	Purpose goods.Purpose `json:"purpose"`
	Label   string        `json:"label"`
	Color   string        `json:"color"`
	Count   int           `json:"count"`
}

type purposeOptionResponse struct {
	Value goods.Purpose `json:"value"`
	Label string        `json:"label"`
	Color string        `json:"color"`
}

type voyageFieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func toResponse(seq int, r *goods.Record) recordResponse {
	return recordResponse{
		Seq:           seq,
		ID:            r.ID,
		ManifestNo:    r.ManifestNo,
		HouseBill:     r.HouseBill,
		ContainerNo:   r.ContainerNo,
		SealNo:        r.SealNo,
		Commodity:     r.Commodity,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		Weight:        r.Weight,
		DischargePort: r.DischargePort,
		Status:        r.Status,
		StatusColor:   goods.StatusColors[r.Status],
		Destination:   r.Destination,
		Purpose:       r.Purpose,
	}
}

// toResponseList numbers records starting at firstSeq.
func toResponseList(records []*goods.Record, firstSeq int) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, r := range records {
		resp[i] = toResponse(firstSeq+i, r)
	}

	return resp
}

func toCountsResponse(counts []goods.PurposeCount) []purposeCountResponse {
	resp := make([]purposeCountResponse, len(counts))
	for i, c := range counts {
		resp[i] = purposeCountResponse{
			Purpose: c.Purpose,
			Label:   c.Label,
			Color:   c.Color,
			Count:   c.Count,
		}
	}

	return resp
}
