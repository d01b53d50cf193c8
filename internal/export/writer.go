// Package export writes the run output files: the JSON document, the XLSX
// report and the error screenshot.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	fullJSON        = "offers.json"
	fullReport      = "offers.xlsx"
	partialJSON     = "offers_partial.json"
	partialReport   = "offers_partial.xlsx"
	screenshotName  = "error-screenshot.png"
	sheetName       = "Offers"
	headerFillColor = "E0E0E0"
	dirPerm         = 0o755
	filePerm        = 0o644
)

// ErrNoReport is returned by LatestReport before any report was written.
var ErrNoReport = errors.New("no report has been generated yet")

var columns = []struct {
	title string
	width float64
}{
	{"Destino", 22},
	{"Duración", 12},
	{"Barco", 20},
	{"Puerto", 20},
	{"Moneda", 8},
	{"Precio", 10},
	{"Fechas", 40},
	{"Promoción", 24},
	{"URL", 50},
	{"Página", 8},
}

// Writer stores output files under one directory.
type Writer struct {
	log *slog.Logger
	dir string

	mu     sync.Mutex
	latest string
}

func NewWriter(log *slog.Logger, dir string) *Writer {
	return &Writer{log: log, dir: dir}
}

// Export writes the run document and, when it has offers, the XLSX report.
// Partial runs go to their own files so a complete export is never replaced
// by a truncated one.
func (w *Writer) Export(ctx context.Context, result *models.ScrapeResult) error {
	const opn = "export.Export"

	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return fmt.Errorf("%s: failed to create output directory: %w", opn, err)
	}

	jsonName, reportName := fullJSON, fullReport
	if result.IsPartial() {
		jsonName, reportName = partialJSON, partialReport
	}

	jsonPath := filepath.Join(w.dir, jsonName)
	if err := writeJSON(jsonPath, result); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}
	w.log.InfoContext(ctx, "Run document saved", "op", opn, "path", jsonPath, "offers", result.TotalCount)

	if len(result.Offers) == 0 {
		return nil
	}

	reportPath := filepath.Join(w.dir, reportName)
	if err := writeReport(reportPath, result.Offers); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}
	w.log.InfoContext(ctx, "Report saved", "op", opn, "path", reportPath)

	w.mu.Lock()
	w.latest = reportPath
	w.mu.Unlock()

	return nil
}

// SaveScreenshot implements scraper.Diagnostics.
func (w *Writer) SaveScreenshot(_ context.Context, png []byte) (string, error) {
	const opn = "export.SaveScreenshot"

	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%s: failed to create output directory: %w", opn, err)
	}

	path := filepath.Join(w.dir, screenshotName)
	if err := os.WriteFile(path, png, filePerm); err != nil {
		return "", fmt.Errorf("%s: %w", opn, err)
	}

	return path, nil
}

// LatestReport returns the path of the most recent XLSX report. Reports left
// by a previous process are found on disk.
func (w *Writer) LatestReport() (string, error) {
	w.mu.Lock()
	latest := w.latest
	w.mu.Unlock()

	if latest != "" {
		return latest, nil
	}

	var (
		found  string
		newest int64
	)
	for _, name := range []string{fullReport, partialReport} {
		info, err := os.Stat(filepath.Join(w.dir, name))
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); found == "" || mod > newest {
			found, newest = filepath.Join(w.dir, name), mod
		}
	}

	if found == "" {
		return "", ErrNoReport
	}

	return found, nil
}

func writeJSON(path string, result *models.ScrapeResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode run document: %w", err)
	}

	if err = os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write run document: %w", err)
	}

	return nil
}

func writeReport(path string, offers []models.Offer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close report: %w", cErr)
		}
	}()

	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err = writeHeader(f); err != nil {
		return err
	}

	for idx, o := range offers {
		cell, cErr := excelize.CoordinatesToCellName(1, idx+2)
		if cErr != nil {
			return fmt.Errorf("failed to resolve row %d: %w", idx+2, cErr)
		}

		row := []any{
			o.Destination,
			o.Duration,
			o.Ship,
			o.DeparturePort,
			o.Currency,
			o.Price,
			o.JoinedDates(),
			deref(o.Promotion),
			deref(o.ItineraryURL),
			o.Page,
		}
		if err = f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", idx+2, err)
		}
	}

	if err = wrapBody(f, len(offers)); err != nil {
		return err
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for idx, col := range columns {
		cell, cErr := excelize.CoordinatesToCellName(idx+1, 1)
		if cErr != nil {
			return fmt.Errorf("failed to resolve header cell: %w", cErr)
		}
		if err = f.SetCellValue(sheetName, cell, col.title); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err = f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}

		name, cErr := excelize.ColumnNumberToName(idx + 1)
		if cErr != nil {
			return fmt.Errorf("failed to resolve column: %w", cErr)
		}
		if err = f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}

func wrapBody(f *excelize.File, rows int) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create body style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(columns), rows+1)
	if err != nil {
		return fmt.Errorf("failed to resolve last cell: %w", err)
	}

	if err = f.SetCellStyle(sheetName, "A2", last, style); err != nil {
		return fmt.Errorf("failed to style rows: %w", err)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
