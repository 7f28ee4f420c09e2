package goods

import "github.com/shopspring/decimal"

// Seed returns the default board contents used when no manifest file is configured.
func Seed() []*Record {
	return []*Record{
		{
			ID:            "1",
			ManifestNo:    "MNF-230045",
			HouseBill:     "HBL-7821",
			ContainerNo:   "TCNU1234567",
			SealNo:        "SL1234",
			Commodity:     "Linh kiện điện tử",
			Quantity:      decimal.NewFromInt(120),
			Unit:          "thùng",
			Weight:        decimal.NewFromInt(8500),
			DischargePort: "VNHPH",
			Status:        StatusArrived,
			Destination:   "Hải Phòng",
			Purpose:       PurposeImport,
		},
		{
			ID:            "2",
			ManifestNo:    "MNF-230049",
			HouseBill:     "HBL-7923",
			ContainerNo:   "TCLU7654321",
			SealNo:        "SL2231",
			Commodity:     "Máy móc thiết bị",
			Quantity:      decimal.NewFromInt(5),
			Unit:          "container",
			Weight:        decimal.NewFromInt(12600),
			DischargePort: "VNSGN",
			Status:        StatusReady,
			Destination:   "Singapore",
			Purpose:       PurposeTransit,
		},
		{
			ID:            "3",
			ManifestNo:    "MNF-230051",
			HouseBill:     "HBL-8001",
			ContainerNo:   "MSCU4567890",
			SealNo:        "SL9988",
			Commodity:     "Dệt may",
			Quantity:      decimal.NewFromInt(300),
			Unit:          "kiện",
			Weight:        decimal.NewFromInt(6400),
			DischargePort: "VNHPH",
			Status:        StatusPending,
			Destination:   "Hà Nội",
			Purpose:       PurposeTransshipment,
		},
		{
			ID:            "4",
			ManifestNo:    "MNF-230052",
			HouseBill:     "HBL-8007",
			ContainerNo:   "TEMU7894561",
			SealNo:        "SL1100",
			Commodity:     "Nông sản khô",
			Quantity:      decimal.NewFromInt(180),
			Unit:          "bao",
			Weight:        decimal.NewFromInt(4300),
			DischargePort: "VNSGN",
			Status:        StatusReady,
			Destination:   "ROB - Giữ lại tàu",
			Purpose:       PurposeROB,
		},
	}
}

// VoyageField is one label/value line of the voyage panel.
type VoyageField struct {
	Label string
	Value string
}

// DefaultVoyage is the fixed voyage information shown above the board.
var DefaultVoyage = []VoyageField{
	{Label: "Tàu/Chuyến", Value: "YM ULTIMATE / 012W"},
	{Label: "Cảng dỡ dự kiến", Value: "Hải Phòng (VNHPH)"},
	{Label: "Ngày cập nhật", Value: "12/03/2024 09:30"},
	{Label: "Đối soát eMNF", Value: "Đã nhận từ eMNF"},
	{Label: "Luồng xử lý", Value: "eMNF → VASSCM → PCS → KBC"},
	{Label: "Ghi chú", Value: "Cho phép chọn 4 mục đích vận chuyển"},
}
