package cli

import (
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/pfrederiksen/leaguetab/internal/table"
)

// previewRows caps how many rows a table preview renders.
const previewRows = 10

// RenderPreview renders the first rows of a tidy table for terminal
// inspection.
func RenderPreview(w io.Writer, title string, t *table.Table) {
	fmt.Fprintf(w, "\n%s (%d rows)\n", title, len(t.Rows))

	pt := prettytable.NewWriter()
	pt.SetOutputMirror(w)

	header := make(prettytable.Row, len(t.Cols))
	for i, c := range t.Cols {
		header[i] = c
	}
	pt.AppendHeader(header)

	for i, row := range t.Rows {
		if i >= previewRows {
			break
		}
		pr := make(prettytable.Row, len(row))
		for j, v := range row {
			pr[j] = v.String()
		}
		pt.AppendRow(pr)
	}

	pt.SetStyle(prettytable.StyleRounded)
	pt.Render()
}
