package manifest

// Column header names shared by the manifest parser and the CSV export.
// The parser matches headers case-sensitively after trimming whitespace.
const (
	ColID            = "ID"
	ColSeq           = "STT"
	ColManifestNo    = "Mã manifest"
	ColHouseBill     = "House B/L"
	ColContainerNo   = "Số container"
	ColSealNo        = "Niêm chì"
	ColCommodity     = "Mô tả hàng hóa"
	ColQuantity      = "SL"
	ColUnit          = "Đơn vị"
	ColWeight        = "Khối lượng (kg)"
	ColDischargePort = "Cảng dỡ"
	ColStatus        = "Trạng thái"
	ColDestination   = "Điểm đến"
	ColPurpose       = "Mục đích vận chuyển"
)

// Header is the column order written by the export and preferred by the parser.
var Header = []string{
	ColSeq,
	ColID,
	ColManifestNo,
	ColHouseBill,
	ColContainerNo,
	ColSealNo,
	ColCommodity,
	ColQuantity,
	ColUnit,
	ColWeight,
	ColDischargePort,
	ColStatus,
	ColDestination,
	ColPurpose,
}

// requiredCols must all be present for a row to be taken as the header.
var requiredCols = []string{
	ColManifestNo,
	ColHouseBill,
	ColContainerNo,
	ColCommodity,
	ColQuantity,
	ColWeight,
	ColStatus,
	ColPurpose,
}
