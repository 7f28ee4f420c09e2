package goods

import (
	"fmt"
	"strings"
)

// PurposeFilter is either FilterAll or one of the transport purposes.
type PurposeFilter string

const FilterAll PurposeFilter = "all"

// ParsePurposeFilter accepts "all" (or an empty string) and the four purposes.
func ParsePurposeFilter(s string) (PurposeFilter, error) {
	if s == "" || PurposeFilter(s) == FilterAll {
		return FilterAll, nil
	}

	p, err := ParsePurpose(s)
	if err != nil {
		return "", fmt.Errorf("purpose filter: %w", err)
	}

	return PurposeFilter(p), nil
}

// FilterOptions is the purpose filter cycle used by the toolbar: "all" first, then PurposeOptions order.
func FilterOptions() []PurposeFilter {
	opts := make([]PurposeFilter, 0, len(PurposeOptions)+1)
	opts = append(opts, FilterAll)

	for _, o := range PurposeOptions {
		opts = append(opts, PurposeFilter(o.Purpose))
	}

	return opts
}

func (f PurposeFilter) Label() string {
	if f == FilterAll {
		return "Tất cả mục đích"
	}

	return Purpose(f).Label()
}

// Filter holds the toolbar state applied to the store.
type Filter struct {
	Purpose PurposeFilter
	Query   string
}

func (f Filter) matchesPurpose(r *Record) bool {
	return f.Purpose == "" || f.Purpose == FilterAll || Purpose(f.Purpose) == r.Purpose
}

// searchText is the lower-cased haystack a query is matched against.
func searchText(r *Record) string {
	return strings.ToLower(r.ContainerNo + " " + r.HouseBill + " " + r.Commodity)
}

// VisibleRecords returns the records that pass both the purpose and the search test,
// in their original order. The input slice is never modified.
func VisibleRecords(records []*Record, f Filter) []*Record {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	visible := make([]*Record, 0, len(records))

	for _, r := range records {
		if !f.matchesPurpose(r) {
			continue
		}

		if !strings.Contains(searchText(r), query) {
			continue
		}

		visible = append(visible, r)
	}

	return visible
}

// PurposeCount is the number of records carrying one purpose.
type PurposeCount struct {
	PurposeOption
	Count int
}

// PurposeCounts counts records per purpose, one entry per PurposeOptions entry in the same order.
func PurposeCounts(records []*Record) []PurposeCount {
	byPurpose := make(map[Purpose]int, len(PurposeOptions))
	for _, r := range records {
		byPurpose[r.Purpose]++
	}

	counts := make([]PurposeCount, len(PurposeOptions))
	for i, o := range PurposeOptions {
		counts[i] = PurposeCount{PurposeOption: o, Count: byPurpose[o.Purpose]}
	}

	return counts
}

// PageSize is the fixed number of rows shown per table page.
const PageSize = 5

// Page returns the 1-based page of records and the total page count.
// Pages past the end yield an empty slice.
func Page(records []*Record, page int) ([]*Record, int) {
	total := (len(records) + PageSize - 1) / PageSize
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(records) {
		return []*Record{}, total
	}

	end := min(start+PageSize, len(records))

	return records[start:end], total
}
