package table

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pfrederiksen/leaguetab/internal/htmltable"
)

// NormalizeOptions controls how a raw grid becomes a Table.
type NormalizeOptions struct {
	// PromoteHeader handles grids whose row 0 is an unusable spanner
	// row: row 0 is discarded and row 1 is promoted to column names.
	// When false, row 0 is already the header row.
	PromoteHeader bool
	// ColumnCount truncates the table to its first N columns so every
	// source converges on a common schema width.
	ColumnCount int
	// NumericFrom is the 0-based column index from which values are
	// coerced to numbers. Columns before it stay text.
	NumericFrom int
	// NumericTo is the 0-based index one past the last numeric
	// column. Zero means the numeric range runs to ColumnCount.
	NumericTo int
}

// SchemaError reports a grid too narrow to reach the expected column count.
type SchemaError struct {
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("expected %d columns, grid has %d", e.Want, e.Got)
}

// NeedsPromotion reports whether a grid's first row looks unusable as
// column names, signaled by an empty first cell. This is a content
// heuristic observed on specific source pages; prefer setting
// NormalizeOptions.PromoteHeader explicitly per source and use this
// only when building descriptors for unknown pages.
func NeedsPromotion(g htmltable.Grid) bool {
	if len(g) == 0 || len(g[0]) == 0 {
		return false
	}
	return strings.TrimSpace(g[0][0]) == ""
}

// Normalize converts a raw cell grid into a tidy Table: optional header
// promotion, canonical column names, truncation to ColumnCount columns,
// and numeric coercion from NumericFrom onward. Coercion is best-effort;
// unparseable cells become Missing and never fail the normalization.
func Normalize(g htmltable.Grid, opts NormalizeOptions) (*Table, error) {
	if len(g) == 0 {
		return nil, &SchemaError{Want: opts.ColumnCount, Got: 0}
	}

	header := g[0]
	data := g[1:]
	if opts.PromoteHeader {
		// Row 0 is a spanner row; the true header is row 1.
		if len(g) < 2 {
			return nil, &SchemaError{Want: opts.ColumnCount, Got: len(g[0])}
		}
		header = g[1]
		data = g[2:]
	}
	if len(header) < opts.ColumnCount {
		return nil, &SchemaError{Want: opts.ColumnCount, Got: len(header)}
	}

	cols := CanonicalNames(header[:opts.ColumnCount])

	numericTo := opts.NumericTo
	if numericTo <= 0 || numericTo > opts.ColumnCount {
		numericTo = opts.ColumnCount
	}

	t := New(cols...)
	for _, raw := range data {
		row := make([]Value, opts.ColumnCount)
		for i := 0; i < opts.ColumnCount; i++ {
			cell := ""
			if i < len(raw) {
				cell = raw[i]
			}
			if i >= opts.NumericFrom && i < numericTo {
				row[i] = Coerce(cell)
			} else {
				row[i] = Text(strings.TrimSpace(cell))
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// CanonicalNames standardizes column names: lowercase, runs of
// non-alphanumeric characters collapsed to single underscores, edge
// underscores trimmed, and duplicate names disambiguated with a
// numeric suffix ("gf", "gf_2", ...). An empty name becomes "col".
func CanonicalNames(names []string) []string {
	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		c := nonAlnum.ReplaceAllString(strings.ToLower(name), "_")
		c = strings.Trim(c, "_")
		if c == "" {
			c = "col"
		}
		seen[c]++
		if n := seen[c]; n > 1 {
			c = fmt.Sprintf("%s_%d", c, n)
		}
		out[i] = c
	}
	return out
}
