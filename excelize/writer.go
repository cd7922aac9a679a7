// Package excelize provides a spreadsheet-based implementation of
// ngoscan.RecordWriter. Each run writes one timestamped .xlsx file
// with a header row and one row per organization, in processing order.
package excelize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/ngoscan"
	"github.com/xuri/excelize/v2"
)

// sheetName is the worksheet records are written to.
const sheetName = "Sheet1"

// Ensure Writer implements ngoscan.RecordWriter at compile time.
var _ ngoscan.RecordWriter = (*Writer)(nil)

// Writer writes contact records to a timestamped Excel workbook in a
// directory.
type Writer struct {
	dir string
	now func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the clock used for output file names. Intended
// for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a new Writer that writes workbooks into dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteRecords writes the records in order and returns the path of the
// created workbook. Every record is validated before anything is
// written; a partially valid batch produces no file.
func (w *Writer) WriteRecords(ctx context.Context, records []*ngoscan.ContactRecord) (string, error) {
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return "", err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	columns := ngoscan.Columns()
	if err := f.SetSheetRow(sheetName, "A1", &columns); err != nil {
		return "", ngoscan.Errorf(ngoscan.EINTERNAL, "writing header row: %v", err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", ngoscan.Errorf(ngoscan.EINTERNAL, "row %d: %v", i+2, err)
		}
		row := record.Row()
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", ngoscan.Errorf(ngoscan.EINTERNAL, "writing row %d: %v", i+2, err)
		}
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", ngoscan.Errorf(ngoscan.EINTERNAL, "creating output dir %q: %v", w.dir, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("ngo_contacts_%s.xlsx", w.now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", ngoscan.Errorf(ngoscan.EINTERNAL, "saving %q: %v", path, err)
	}
	return path, nil
}
