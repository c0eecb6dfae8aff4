package i18ntree

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// headerRows is the number of sheet rows above the first record; warnings
// report sheet row numbers.
const headerRows = 1

// Record is one table row: column header to cell value.
type Record map[string]any

// Table is a tabular source: its headers in sheet order and its rows.
type Table struct {
	Headers []string
	Rows    []Record
}

// LocaleColumn is a column selected by the locale prefix.
type LocaleColumn struct {
	// Header is the original column header.
	Header string
	// Code is the header without the prefix, trimmed.
	Code string
}

// LocaleColumns picks the headers starting with prefix, ignoring case.
// Headers whose code is empty after trimming are skipped.
func LocaleColumns(headers []string, prefix string) []LocaleColumn {
	var cols []LocaleColumn
	for _, h := range headers {
		if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
			continue
		}
		code := strings.TrimSpace(h[len(prefix):])
		if code == "" {
			continue
		}
		cols = append(cols, LocaleColumn{Header: h, Code: code})
	}
	return cols
}

// Warning is a recovered builder failure for one (row, key, column) triple.
type Warning struct {
	Row    int
	Column string
	Key    string
	Err    error

	keyIndex int
	colIndex int
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d, column %q, key %q: %v", w.Row, w.Column, w.Key, w.Err)
}

// Projection holds one tree per locale column, keyed by column header.
type Projection struct {
	Trees    map[string]*Node
	Warnings []Warning
}

// Project builds one document tree per locale column from rows.
//
// Each key cell may hold several keys separated by opts.Delimiters; rows
// without keys are skipped. Blank cells never create or overwrite a path.
// Builder errors are collected as warnings and never stop the run.
func Project(rows []Record, keyColumn string, localeColumns []string, opts Options) (*Projection, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	if len(localeColumns) == 0 {
		return nil, ErrNoLocaleColumns
	}

	// Split key cells once; the slices are shared read-only by all locales.
	keys := make([][]string, len(rows))
	for i, row := range rows {
		keys[i] = SplitKeys(cellString(row[keyColumn]), opts.Delimiters)
	}

	trees := make([]*Node, len(localeColumns))
	warnings := make([][]Warning, len(localeColumns))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for ci, column := range localeColumns {
		ci, column := ci, column
		g.Go(func() error {
			trees[ci], warnings[ci] = projectLocale(rows, keys, column, ci, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p := &Projection{Trees: make(map[string]*Node, len(localeColumns))}
	for ci, column := range localeColumns {
		p.Trees[column] = trees[ci]
		p.Warnings = append(p.Warnings, warnings[ci]...)
	}
	sort.SliceStable(p.Warnings, func(i, j int) bool {
		a, b := p.Warnings[i], p.Warnings[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.keyIndex != b.keyIndex {
			return a.keyIndex < b.keyIndex
		}
		return a.colIndex < b.colIndex
	})
	return p, nil
}

func projectLocale(rows []Record, keys [][]string, column string, colIndex int, opts Options) (*Node, []Warning) {
	tree := NewObject()
	buildOpts := opts.buildOptions()

	var warnings []Warning
	for ri, row := range rows {
		if len(keys[ri]) == 0 {
			continue
		}
		value := cellString(row[column])
		if strings.TrimSpace(value) == "" {
			continue
		}
		for ki, key := range keys[ri] {
			if err := SetDeep(tree, key, value, buildOpts...); err != nil {
				warnings = append(warnings, Warning{
					Row:      ri + 1 + headerRows,
					Column:   column,
					Key:      key,
					Err:      err,
					keyIndex: ki,
					colIndex: colIndex,
				})
			}
		}
	}
	return tree, warnings
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
