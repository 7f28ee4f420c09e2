package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/pcs/internal/goods"
	"github.com/MrJamesThe3rd/pcs/internal/manifest"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// Service writes the goods board as semicolon-separated CSV.
type Service struct {
	goods  *goods.Service
	now    func() time.Time
	create func(path string) (io.WriteCloser, error)
}

func NewService(goodsService *goods.Service) *Service {
	return &Service{
		goods:  goodsService,
		now:    time.Now,
		create: func(path string) (io.WriteCloser, error) { return os.Create(path) },
	}
}

// WriteCSV writes a UTF-8 BOM, the header row and one row per record.
// The STT column is the 1-based position within records.
func (s *Service) WriteCSV(w io.Writer, records []*goods.Record) error {
	if _, err := w.Write(bomUTF8); err != nil {
		return fmt.Errorf("writing bom: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(manifest.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		row := []string{
			strconv.Itoa(i + 1),
			r.ID,
			r.ManifestNo,
			r.HouseBill,
			r.ContainerNo,
			r.SealNo,
			r.Commodity,
			manifest.FormatVNNumber(r.Quantity),
			r.Unit,
			manifest.FormatVNNumber(r.Weight),
			r.DischargePort,
			string(r.Status),
			r.Destination,
			string(r.Purpose),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Export writes the records visible under filter to goods_YYYYMMDD.csv in outputDir
// and returns the file path. The directory is created if missing.
func (s *Service) Export(ctx context.Context, filter goods.Filter, outputDir string) (string, int, error) {
	records, err := s.goods.Visible(ctx, filter)
	if err != nil {
		return "", 0, fmt.Errorf("listing goods: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, s.Filename())

	f, err := s.create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}

	if err := s.WriteCSV(f, records); err != nil {
		_ = f.Close()
		return "", 0, err
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("closing file: %w", err)
	}

	return path, len(records), nil
}

// Filename is the download name for an export made now.
func (s *Service) Filename() string {
	return fmt.Sprintf("goods_%s.csv", s.now().Format("20060102"))
}
