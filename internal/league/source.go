package league

// Source describes one competition's stats page and the schema its
// table should be normalized to. TableIndex, NumericFrom, and
// NumericTo are 1-based, matching how a reader counts tables and
// columns on the page.
type Source struct {
	// Label is the human-readable league name carried into the
	// combined table's league column.
	Label string
	// SourceID is the path suffix identifying the page, appended to
	// the base URL after /en/comps/.
	SourceID string
	// TableIndex is the 1-based position of the target table among
	// the page's tables.
	TableIndex int
	// ColumnCount truncates the normalized table to this many columns.
	ColumnCount int
	// NumericFrom is the 1-based column from which values are numeric.
	NumericFrom int
	// NumericTo is the 1-based last numeric column. Zero means the
	// numeric range runs to ColumnCount.
	NumericTo int
	// PromoteHeader marks pages whose table carries a spanner row
	// above the real header.
	PromoteHeader bool
}

// DefaultBaseURL is the stats site all shipped sources point at.
const DefaultBaseURL = "https://fbref.com"

// URL builds the page URL for this source against a base URL.
func (s Source) URL(baseURL string) string {
	return baseURL + "/en/comps/" + s.SourceID
}

// SquadSources returns the squad standard-stats pages for the big five
// European leagues, in display order. The stats tables on these pages
// sit under a spanner header row, so every source promotes.
func SquadSources() []Source {
	return []Source{
		{Label: "Premier League", SourceID: "9/stats/Premier-League-Stats", TableIndex: 1, ColumnCount: 16, NumericFrom: 2, PromoteHeader: true},
		{Label: "La Liga", SourceID: "12/stats/La-Liga-Stats", TableIndex: 1, ColumnCount: 16, NumericFrom: 2, PromoteHeader: true},
		{Label: "Serie A", SourceID: "11/stats/Serie-A-Stats", TableIndex: 1, ColumnCount: 16, NumericFrom: 2, PromoteHeader: true},
		{Label: "Bundesliga", SourceID: "20/stats/Bundesliga-Stats", TableIndex: 1, ColumnCount: 16, NumericFrom: 2, PromoteHeader: true},
		{Label: "Ligue 1", SourceID: "13/stats/Ligue-1-Stats", TableIndex: 1, ColumnCount: 16, NumericFrom: 2, PromoteHeader: true},
	}
}

// StandingsSources returns the league-table pages for the big five.
// The standings table has a clean single header row; the numeric range
// stops before the top-team-scorer column, which stays text for the
// scorer split downstream.
func StandingsSources() []Source {
	return []Source{
		{Label: "Premier League", SourceID: "9/Premier-League-Stats", TableIndex: 1, ColumnCount: 17, NumericFrom: 3, NumericTo: 16},
		{Label: "La Liga", SourceID: "12/La-Liga-Stats", TableIndex: 1, ColumnCount: 17, NumericFrom: 3, NumericTo: 16},
		{Label: "Serie A", SourceID: "11/Serie-A-Stats", TableIndex: 1, ColumnCount: 17, NumericFrom: 3, NumericTo: 16},
		{Label: "Bundesliga", SourceID: "20/Bundesliga-Stats", TableIndex: 1, ColumnCount: 17, NumericFrom: 3, NumericTo: 16},
		{Label: "Ligue 1", SourceID: "13/Ligue-1-Stats", TableIndex: 1, ColumnCount: 17, NumericFrom: 3, NumericTo: 16},
	}
}
