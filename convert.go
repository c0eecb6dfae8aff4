package i18ntree

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Output is the result for one locale column.
type Output struct {
	Column string
	Locale string
	Tree   *Node
	// Report is nil when no reference was given.
	Report *Report
}

// Result is what a conversion run yields: outputs in header order and the
// warnings recovered while building.
type Result struct {
	Outputs  []Output
	Warnings []Warning
}

// Convert builds one tree per locale column of table. When reference is not
// nil every tree is then aligned with it using opts.Missing.
//
// Source errors (no rows, no locale columns, unknown key column) abort
// before any output is produced.
func Convert(table *Table, reference *Node, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if table == nil || len(table.Rows) == 0 {
		return nil, ErrNoRows
	}
	if !slices.Contains(table.Headers, opts.KeyColumn) {
		return nil, fmt.Errorf("key column %q not found in headers", opts.KeyColumn)
	}
	cols := LocaleColumns(table.Headers, opts.LocalePrefix)
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no header starts with %q", ErrNoLocaleColumns, opts.LocalePrefix)
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	p, err := Project(table.Rows, opts.KeyColumn, headers, opts)
	if err != nil {
		return nil, err
	}

	outputs := make([]Output, len(cols))
	var g errgroup.Group
	for i, c := range cols {
		i, c := i, c
		g.Go(func() error {
			out := Output{Column: c.Header, Locale: c.Code, Tree: p.Trees[c.Header]}
			if reference != nil {
				out.Tree, out.Report = Reorder(reference, out.Tree, opts.Missing)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Outputs: outputs, Warnings: p.Warnings}, nil
}
