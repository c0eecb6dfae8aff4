// Package sheet reads translation tables from spreadsheets and CSV files.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/lifei6671/i18ntree"
)

// ErrNoHeader is returned for a table without a header row.
var ErrNoHeader = errors.New("sheet: missing header row")

// Read loads the table at path. CSV files are read by extension; anything
// else is opened as a workbook, using sheetName or the first sheet when
// sheetName is empty. The first row holds the headers.
func Read(path, sheetName string) (*i18ntree.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("sheet: %s has no sheets", path)
		}
		sheetName = sheets[0]
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("sheet: read %s!%s: %w", path, sheetName, err)
	}
	return FromRows(rows)
}

// Sheets lists the sheet names of a workbook.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// ReadCSV loads a comma separated table from r.
func ReadCSV(r io.Reader) (*i18ntree.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: read CSV: %w", err)
	}
	return FromRows(rows)
}

// FromRows turns raw rows into a table. Headers are trimmed and NFC
// normalized; cells past the end of a short row are absent from its record.
func FromRows(rows [][]string) (*i18ntree.Table, error) {
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = norm.NFC.String(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	t := &i18ntree.Table{Headers: headers, Rows: make([]i18ntree.Record, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		rec := make(i18ntree.Record, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(row) {
				continue
			}
			rec[h] = row[i]
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
