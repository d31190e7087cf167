package htmltable

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Grid is a row-major grid of cell text for one table.
type Grid [][]string

// ParseError reports a document without usable tables, or a request
// for a table position the document does not have.
type ParseError struct {
	TableIndex int // 1-based requested position, 0 when not applicable
	NumTables  int
	Err        error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing tables: %v", e.Err)
	}
	if e.TableIndex > 0 {
		return fmt.Sprintf("table %d requested, page has %d tables", e.TableIndex, e.NumTables)
	}
	return "no tables found in document"
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extract parses an HTML document and returns every table as a Grid,
// in document order. Short rows are padded with empty cells to the
// widest row in their table. Returns a ParseError if the document has
// no tables.
func Extract(r io.Reader) ([]Grid, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	grids := make([]Grid, 0)
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		grid := make(Grid, 0)
		width := 0
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			row := make([]string, 0)
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, strings.TrimSpace(cell.Text()))
			})
			if len(row) == 0 {
				return
			}
			if len(row) > width {
				width = len(row)
			}
			grid = append(grid, row)
		})
		if len(grid) == 0 {
			return
		}
		// Pad ragged rows so positional access is always in range.
		for i, row := range grid {
			for len(row) < width {
				row = append(row, "")
			}
			grid[i] = row
		}
		grids = append(grids, grid)
	})

	if len(grids) == 0 {
		return nil, &ParseError{}
	}
	return grids, nil
}

// Select returns the table at the given 1-based position, or a
// ParseError naming the requested index and how many tables exist.
func Select(grids []Grid, index int) (Grid, error) {
	if index < 1 || index > len(grids) {
		return nil, &ParseError{TableIndex: index, NumTables: len(grids)}
	}
	return grids[index-1], nil
}
