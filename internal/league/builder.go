package league

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pfrederiksen/leaguetab/internal/htmltable"
	"github.com/pfrederiksen/leaguetab/internal/logger"
	"github.com/pfrederiksen/leaguetab/internal/table"
)

// Fetcher fetches a page body by URL. Satisfied by fetch.Client.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Policy decides what a failed league does to the rest of a build.
type Policy int

const (
	// AbortOnError stops the build at the first failed league. This is
	// the default: a partial cross-league dataset silently misleads
	// comparative analysis.
	AbortOnError Policy = iota
	// SkipFailed logs the failed league and continues with the rest.
	SkipFailed
)

// LeagueError wraps a failure with the league and table it came from,
// so a failed multi-league build names its source.
type LeagueError struct {
	Label      string
	TableIndex int
	Err        error
}

func (e *LeagueError) Error() string {
	return fmt.Sprintf("league %q (table %d): %v", e.Label, e.TableIndex, e.Err)
}

func (e *LeagueError) Unwrap() error { return e.Err }

// Builder runs the fetch → extract → normalize pipeline over an
// ordered source list and concatenates the per-league tables.
type Builder struct {
	Fetcher Fetcher
	BaseURL string
	OnError Policy
	Log     *logger.Logger
}

// NewBuilder creates a Builder with the default base URL, abort-on-error
// policy, and default logger.
func NewBuilder(f Fetcher) *Builder {
	return &Builder{
		Fetcher: f,
		BaseURL: DefaultBaseURL,
		OnError: AbortOnError,
	}
}

// Build scrapes every source in order and returns the combined table.
// The combined table's first column is "league", holding each row's
// source label; the remaining columns are the sources' normalized
// columns, which every successful source must agree on.
//
// Under AbortOnError, the first failed league aborts the build with a
// *LeagueError. Under SkipFailed, failed leagues are logged and their
// rows are simply absent from the result.
func (b *Builder) Build(ctx context.Context, sources []Source) (*table.Table, error) {
	var combined *table.Table

	for _, src := range sources {
		t, err := b.buildOne(ctx, src)
		if err != nil {
			lerr := &LeagueError{Label: src.Label, TableIndex: src.TableIndex, Err: err}
			if b.OnError == SkipFailed {
				b.log().Warn("skipping failed league", logger.Fields{
					"league": src.Label,
					"error":  lerr.Error(),
				})
				continue
			}
			return nil, lerr
		}

		if combined == nil {
			combined = table.New(append([]string{"league"}, t.Cols...)...)
		} else if err := sameSchema(combined.Cols[1:], t.Cols); err != nil {
			lerr := &LeagueError{Label: src.Label, TableIndex: src.TableIndex, Err: err}
			if b.OnError == SkipFailed {
				b.log().Warn("skipping league with mismatched schema", logger.Fields{
					"league": src.Label,
					"error":  lerr.Error(),
				})
				continue
			}
			return nil, lerr
		}

		for _, row := range t.Rows {
			tagged := make([]table.Value, 0, len(row)+1)
			tagged = append(tagged, table.Text(src.Label))
			tagged = append(tagged, row...)
			combined.Rows = append(combined.Rows, tagged)
		}
		b.log().Info("scraped league", logger.Fields{
			"league": src.Label,
			"rows":   len(t.Rows),
		})
	}

	if combined == nil {
		combined = table.New("league")
	}
	return combined, nil
}

// buildOne runs one source through the pipeline.
func (b *Builder) buildOne(ctx context.Context, src Source) (*table.Table, error) {
	baseURL := b.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	body, err := b.Fetcher.Get(ctx, src.URL(baseURL))
	if err != nil {
		return nil, err
	}

	grids, err := htmltable.Extract(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	grid, err := htmltable.Select(grids, src.TableIndex)
	if err != nil {
		return nil, err
	}

	return table.Normalize(grid, table.NormalizeOptions{
		PromoteHeader: src.PromoteHeader,
		ColumnCount:   src.ColumnCount,
		NumericFrom: src.NumericFrom - 1,
		// 1-based inclusive bound equals the 0-based exclusive one.
		NumericTo: src.NumericTo,
	})
}

// sameSchema checks that a source's columns match the accumulator's.
func sameSchema(want, got []string) error {
	if len(want) != len(got) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("column %d is %q, expected %q", i+1, got[i], want[i])
		}
	}
	return nil
}

func (b *Builder) log() *logger.Logger {
	if b.Log != nil {
		return b.Log
	}
	return logger.Default()
}
