package manifest_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/manifest"
)

const header = "ID;Mã manifest;House B/L;Số container;Niêm chì;Mô tả hàng hóa;SL;Đơn vị;Khối lượng (kg);Cảng dỡ;Trạng thái;Điểm đến;Mục đích vận chuyển\n"

func TestParser_Manifest(t *testing.T) {
	csv := `Danh sách hàng hoá dự kiến dỡ;YM ULTIMATE / 012W
Ngày xuất;12/03/2024 09:30

` + header + `1;MNF-230045;HBL-7821;TCNU1234567;SL1234;Linh kiện điện tử;120;thùng;8.500;VNHPH;Arrived;Hải Phòng;import
2;MNF-230049;HBL-7923;TCLU7654321;SL2231;Máy móc thiết bị;5;container;12.600,5;VNSGN;Ready;Singapore;Quá cảnh
`

	records, err := manifest.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "TCNU1234567", records[0].ContainerNo)
	assert.Equal(t, "Linh kiện điện tử", records[0].Commodity)
	assert.True(t, decimal.NewFromInt(8500).Equal(records[0].Weight))
	assert.True(t, decimal.NewFromInt(120).Equal(records[0].Quantity))
	assert.Equal(t, goods.StatusArrived, records[0].Status)
	assert.Equal(t, goods.PurposeImport, records[0].Purpose)

	assert.True(t, decimal.RequireFromString("12600.5").Equal(records[1].Weight))
	assert.Equal(t, goods.PurposeTransit, records[1].Purpose)
}

func TestParser_AssignsIDWhenMissing(t *testing.T) {
	csv := strings.Replace(header, "ID;", "", 1) +
		"MNF-1;HBL-1;CONT1;SL1;Gạo;10;bao;1.000;VNHPH;Pending;Hà Nội;ROB\n" +
		"MNF-2;HBL-2;CONT2;SL2;Cà phê;20;bao;2.000;VNHPH;Pending;Hà Nội;rob\n"

	records, err := manifest.NewParser().Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.NotEmpty(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.Equal(t, goods.PurposeROB, records[0].Purpose)
	assert.Equal(t, goods.PurposeROB, records[1].Purpose)
}

func TestParser_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(header+"7;MNF-7;HBL-7;CONT7;SL7;Dệt may;1;kiện;10;VNHPH;Ready;Hà Nội;transit\n")...)

	records, err := manifest.NewParser().Parse(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7", records[0].ID)
	assert.Equal(t, "Hà Nội", records[0].Destination)
	assert.Equal(t, goods.PurposeTransit, records[0].Purpose)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{
			name:    "NoHeader",
			csv:     "a;b;c\n1;2;3\n",
			wantErr: "no manifest header found",
		},
		{
			name:    "UnknownPurpose",
			csv:     header + "1;M;H;C;S;X;1;u;1;P;Ready;D;export\n",
			wantErr: "row 2: invalid transport purpose",
		},
		{
			name:    "UnknownStatus",
			csv:     header + "1;M;H;C;S;X;1;u;1;P;Lost;D;import\n",
			wantErr: "row 2: invalid status",
		},
		{
			name:    "NegativeWeight",
			csv:     header + "1;M;H;C;S;X;1;u;-5;P;Ready;D;import\n",
			wantErr: "row 2: weight: negative value",
		},
		{
			name:    "MissingQuantity",
			csv:     header + "1;M;H;C;S;X;;u;5;P;Ready;D;import\n",
			wantErr: "row 2: quantity: missing value",
		},
		{
			name: "DuplicateID",
			csv: header +
				"1;M;H;C;S;X;1;u;1;P;Ready;D;import\n" +
				"1;M;H;C;S;X;1;u;1;P;Ready;D;import\n",
			wantErr: "duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.NewParser().Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_ErrorReportsFileLine(t *testing.T) {
	csv := `Danh sách hàng hoá dự kiến dỡ;YM ULTIMATE / 012W
Ngày xuất;12/03/2024 09:30

` + header + `1;M;H;C;S;X;1;u;1;P;Ready;D;import
2;M;H;C;S;X;1;u;1;P;Ready;D;export
`

	_, err := manifest.NewParser().Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 6: invalid transport purpose")
}

func TestParser_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"9;M;H;C;S;X;1;u;1;P;Ready;D;import\n\n"), 0o644))

	records, err := manifest.NewParser().LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9", records[0].ID)

	_, err = manifest.NewParser().LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFormatVNNumber(t *testing.T) {
	assert.Equal(t, "8500", manifest.FormatVNNumber(decimal.NewFromInt(8500)))
	assert.Equal(t, "12,5", manifest.FormatVNNumber(decimal.RequireFromString("12.5")))
}

func TestLoadSeed_Default(t *testing.T) {
	records, err := manifest.LoadSeed("")
	require.NoError(t, err)
	assert.Equal(t, goods.Seed(), records)
}
