package league

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pfrederiksen/leaguetab/internal/fetch"
	"github.com/pfrederiksen/leaguetab/internal/htmltable"
	"github.com/pfrederiksen/leaguetab/internal/table"
)

// fixtureServer serves testdata pages under /en/comps/<source_id>.
func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Base(r.URL.Path) + ".html"
		data, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
}

func testBuilder(srv *httptest.Server) *Builder {
	b := NewBuilder(fetch.New(fetch.WithInterval(0)))
	b.BaseURL = srv.URL
	return b
}

func TestBuilder_Build(t *testing.T) {
	srv := fixtureServer(t)
	defer srv.Close()

	sources := []Source{
		{Label: "League A", SourceID: "league_a", TableIndex: 1, ColumnCount: 5, NumericFrom: 2},
		{Label: "League B", SourceID: "league_b", TableIndex: 2, ColumnCount: 5, NumericFrom: 2},
	}

	combined, err := testBuilder(srv).Build(context.Background(), sources)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantCols := []string{"league", "squad", "mp", "gf", "ga", "pts"}
	if !reflect.DeepEqual(combined.Cols, wantCols) {
		t.Errorf("Cols = %v, want %v", combined.Cols, wantCols)
	}
	if len(combined.Rows) != 5 {
		t.Fatalf("row count = %d, want 5", len(combined.Rows))
	}

	// every row's league value is one of the source labels, and both
	// labels appear since both leagues succeeded
	leagues := make(map[string]int)
	for _, row := range combined.Rows {
		leagues[row[0].Text]++
	}
	want := map[string]int{"League A": 2, "League B": 3}
	if !reflect.DeepEqual(leagues, want) {
		t.Errorf("league counts = %v, want %v", leagues, want)
	}

	// numeric coercion applied; placeholder degraded to missing
	if combined.Rows[0][3] != table.Number(91) {
		t.Errorf("gf cell = %+v, want 91", combined.Rows[0][3])
	}
	last := combined.Rows[len(combined.Rows)-1]
	if !last[3].IsMissing() {
		t.Errorf("dash cell = %+v, want missing", last[3])
	}
}

func TestBuilder_AbortOnError(t *testing.T) {
	srv := fixtureServer(t)
	defer srv.Close()

	sources := []Source{
		{Label: "League A", SourceID: "league_a", TableIndex: 1, ColumnCount: 5, NumericFrom: 2},
		{Label: "Missing League", SourceID: "nowhere", TableIndex: 1, ColumnCount: 5, NumericFrom: 2},
	}

	_, err := testBuilder(srv).Build(context.Background(), sources)
	var lerr *LeagueError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LeagueError", err)
	}
	if lerr.Label != "Missing League" {
		t.Errorf("failed league = %q, want Missing League", lerr.Label)
	}
	var ferr *fetch.Error
	if !errors.As(err, &ferr) {
		t.Errorf("expected wrapped *fetch.Error, got %v", err)
	}
}

func TestBuilder_SkipFailed(t *testing.T) {
	srv := fixtureServer(t)
	defer srv.Close()

	sources := []Source{
		{Label: "League A", SourceID: "league_a", TableIndex: 1, ColumnCount: 5, NumericFrom: 2},
		{Label: "Missing League", SourceID: "nowhere", TableIndex: 1, ColumnCount: 5, NumericFrom: 2},
		{Label: "League B", SourceID: "league_b", TableIndex: 2, ColumnCount: 5, NumericFrom: 2},
	}

	b := testBuilder(srv)
	b.OnError = SkipFailed
	combined, err := b.Build(context.Background(), sources)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	leagues := make(map[string]bool)
	for _, row := range combined.Rows {
		leagues[row[0].Text] = true
	}
	if leagues["Missing League"] {
		t.Error("failed league's rows present in combined table")
	}
	if !leagues["League A"] || !leagues["League B"] {
		t.Errorf("succeeded leagues missing from combined table: %v", leagues)
	}
}

func TestBuilder_TableIndexOutOfRange(t *testing.T) {
	srv := fixtureServer(t)
	defer srv.Close()

	sources := []Source{
		{Label: "League A", SourceID: "league_a", TableIndex: 7, ColumnCount: 5, NumericFrom: 2},
	}

	_, err := testBuilder(srv).Build(context.Background(), sources)
	var lerr *LeagueError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LeagueError", err)
	}
	var perr *htmltable.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected wrapped *htmltable.ParseError, got %v", err)
	}
	if perr.TableIndex != 7 {
		t.Errorf("TableIndex = %d, want 7", perr.TableIndex)
	}
}

func TestBuilder_EmptySources(t *testing.T) {
	srv := fixtureServer(t)
	defer srv.Close()

	combined, err := testBuilder(srv).Build(context.Background(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(combined.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(combined.Rows))
	}
}

func TestSource_URL(t *testing.T) {
	s := Source{SourceID: "9/Premier-League-Stats"}
	got := s.URL("https://fbref.com")
	want := "https://fbref.com/en/comps/9/Premier-League-Stats"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
