package htmltable

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

func loadFixture(t *testing.T, name string) []Grid {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	grids, err := Extract(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	return grids
}

func TestExtract_DocumentOrder(t *testing.T) {
	grids := loadFixture(t, "standings_page.html")

	if len(grids) != 3 {
		t.Fatalf("got %d tables, want 3", len(grids))
	}

	wantFirst := Grid{
		{"Squad", "MP", "GF", "GA", "Pts"},
		{"Arsenal", "38", "91", "29", "89"},
		{"Liverpool", "38", "86", "41", "82"},
		{"Everton", "38", "40", "51", "48"},
	}
	if !reflect.DeepEqual(grids[0], wantFirst) {
		t.Errorf("first table = %v, want %v", grids[0], wantFirst)
	}

	if len(grids[2]) != 1 || grids[2][0][0] != "Updated nightly" {
		t.Errorf("third table = %v, want the notes table", grids[2])
	}
}

func TestExtract_PadsRaggedRows(t *testing.T) {
	grids := loadFixture(t, "standings_page.html")

	homeAway := grids[1]
	for i, row := range homeAway {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3 after padding", i, len(row))
		}
	}
	// the short Liverpool row ends in a padded empty cell
	last := homeAway[len(homeAway)-1]
	if last[0] != "Liverpool" || last[2] != "" {
		t.Errorf("padded row = %v, want trailing empty cell", last)
	}
}

func TestExtract_NoTables(t *testing.T) {
	_, err := Extract(strings.NewReader("<html><body><p>no tables here</p></body></html>"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestSelect(t *testing.T) {
	grids := loadFixture(t, "standings_page.html")

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{"first table", 1, false},
		{"last table", 3, false},
		{"index past end", 7, true},
		{"zero index", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Select(grids, tt.index)
			if tt.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("error = %v, want *ParseError", err)
				}
				if perr.TableIndex != tt.index || perr.NumTables != 3 {
					t.Errorf("ParseError = %+v, want index %d of 3", perr, tt.index)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if g == nil {
				t.Error("Select() returned nil grid")
			}
		})
	}
}
