package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/pcs/internal/encoding"
	"github.com/MrJamesThe3rd/pcs/internal/goods"
)

var ErrNoHeader = errors.New("no manifest header found")

// Parser reads semicolon-separated manifest exports into goods records.
// Leading preamble rows (vessel info, export timestamps) are skipped until a
// row carrying all required column headers is found.
type Parser struct {
	newID func() string
}

func NewParser() *Parser {
	return &Parser{newID: uuid.NewString}
}

// LoadFile parses the manifest at path.
func (p *Parser) LoadFile(path string) ([]*goods.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

func (p *Parser) Parse(r io.Reader) ([]*goods.Record, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	// lines[i] is the file line rows[i] starts on; the reader skips blank lines.
	var (
		rows  [][]string
		lines []int
	)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, row)
		lines = append(lines, line)
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("%w: expected columns %s", ErrNoHeader, strings.Join(requiredCols, ", "))
	}

	return p.parseRows(cols, rows[headerIdx+1:], lines[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		if hasAll(cols, requiredCols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func hasAll(cols colIndex, names []string) bool {
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows. lines holds the 1-based file line of each row.
func (p *Parser) parseRows(cols colIndex, rows [][]string, lines []int) ([]*goods.Record, error) {
	var records []*goods.Record

	seen := make(map[string]int)

	for i, row := range rows {
		rowNum := lines[i]

		if isBlank(row) {
			continue
		}

		rec, err := p.parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if prev, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("row %d: duplicate id %q (first seen on row %d)", rowNum, rec.ID, prev)
		}

		seen[rec.ID] = rowNum
		records = append(records, rec)
	}

	return records, nil
}

func (p *Parser) parseRow(cols colIndex, row []string) (*goods.Record, error) {
	get := func(name string) string {
		idx, ok := cols[name]
		if !ok {
			return ""
		}

		return cellValue(row, idx)
	}

	quantity, err := parseAmount(get(ColQuantity))
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}

	weight, err := parseAmount(get(ColWeight))
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}

	status, err := goods.ParseStatus(get(ColStatus))
	if err != nil {
		return nil, err
	}

	purpose, err := parsePurposeCell(get(ColPurpose))
	if err != nil {
		return nil, err
	}

	id := get(ColID)
	if id == "" {
		id = p.newID()
	}

	return &goods.Record{
		ID:            id,
		ManifestNo:    get(ColManifestNo),
		HouseBill:     get(ColHouseBill),
		ContainerNo:   get(ColContainerNo),
		SealNo:        get(ColSealNo),
		Commodity:     get(ColCommodity),
		Quantity:      quantity,
		Unit:          get(ColUnit),
		Weight:        weight,
		DischargePort: get(ColDischargePort),
		Status:        status,
		Destination:   get(ColDestination),
		Purpose:       purpose,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, errors.New("missing value")
	}

	d, err := parseVNNumber(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative value %s", s)
	}

	return d, nil
}

// parsePurposeCell accepts either the purpose value ("rob") or its label ("ROB", "Quá cảnh").
func parsePurposeCell(s string) (goods.Purpose, error) {
	for _, o := range goods.PurposeOptions {
		if strings.EqualFold(s, o.Label) {
			return o.Purpose, nil
		}
	}

	return goods.ParsePurpose(strings.ToLower(s))
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

// LoadSeed returns the records of the manifest at path, or the built-in seed when path is empty.
func LoadSeed(path string) ([]*goods.Record, error) {
	if path == "" {
		return goods.Seed(), nil
	}

	records, err := NewParser().LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading seed %s: %w", path, err)
	}

	return records, nil
}
