package derive

import (
	"regexp"
	"strconv"

	"github.com/pfrederiksen/leaguetab/internal/logger"
	"github.com/pfrederiksen/leaguetab/internal/table"
)

// Canonical source-column names after normalization of the squad
// standard-stats table.
const (
	colGoals   = "gls"
	colMatches = "mp"
	colAssists = "ast"
	colMinutes = "min"
	colPlayers = "pl"
	colYellow  = "crdy"
	colRed     = "crdr"
)

// colScorer is the standings table's combined "name - count" cell.
const colScorer = "top_team_scorer"

// Ratio divides two values. The result is missing when either input is
// missing or the divisor is zero; never a fault.
func Ratio(num, den table.Value) table.Value {
	if num.Kind != table.KindNumber || den.Kind != table.KindNumber || den.Num == 0 {
		return table.Missing
	}
	return table.Number(num.Num / den.Num)
}

// WeightedSum computes a + weight*b, missing when either input is missing.
func WeightedSum(a, b table.Value, weight float64) table.Value {
	if a.Kind != table.KindNumber || b.Kind != table.KindNumber {
		return table.Missing
	}
	return table.Number(a.Num + weight*b.Num)
}

var scorerPattern = regexp.MustCompile(`^(.+?)\s*-\s*(\d+)$`)

// SplitScorer splits a combined "Name - 25" cell into a name value and
// a numeric goal count. Cells that don't match the pattern (e.g.
// "Vacant") yield missing for both, not an error.
func SplitScorer(v table.Value) (name, goals table.Value) {
	if v.Kind != table.KindText {
		return table.Missing, table.Missing
	}
	m := scorerPattern.FindStringSubmatch(v.Text)
	if m == nil {
		return table.Missing, table.Missing
	}
	n, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return table.Missing, table.Missing
	}
	return table.Text(m[1]), table.Number(n)
}

// SquadMetrics appends the derived per-squad columns:
//
//	goals_per_game     = gls / mp
//	assist_rate        = ast / gls   (missing when gls is 0)
//	discipline_score   = crdy + 2*crdr
//	minutes_per_player = min / pl
func SquadMetrics(t *table.Table, log *logger.Logger) {
	addColumn(t, log, "goals_per_game", func(row []table.Value, at func(string) table.Value) table.Value {
		return Ratio(at(colGoals), at(colMatches))
	})
	addColumn(t, log, "assist_rate", func(row []table.Value, at func(string) table.Value) table.Value {
		return Ratio(at(colAssists), at(colGoals))
	})
	addColumn(t, log, "discipline_score", func(row []table.Value, at func(string) table.Value) table.Value {
		return WeightedSum(at(colYellow), at(colRed), 2)
	})
	addColumn(t, log, "minutes_per_player", func(row []table.Value, at func(string) table.Value) table.Value {
		return Ratio(at(colMinutes), at(colPlayers))
	})
}

// StandingsMetrics splits the top-team-scorer cell into
// top_scorer_name and top_scorer_goals columns.
func StandingsMetrics(t *table.Table, log *logger.Logger) {
	idx := t.ColIndex(colScorer)
	if idx < 0 {
		warnMissingColumn(log, colScorer)
	}

	names := make([]table.Value, len(t.Rows))
	goals := make([]table.Value, len(t.Rows))
	for i, row := range t.Rows {
		if idx < 0 {
			names[i], goals[i] = table.Missing, table.Missing
			continue
		}
		names[i], goals[i] = SplitScorer(row[idx])
	}
	t.AddColumn("top_scorer_name", names)  //nolint:errcheck // length matches by construction
	t.AddColumn("top_scorer_goals", goals) //nolint:errcheck
}

// addColumn appends one derived column computed per row. Source columns
// are resolved once; a missing source makes every derived cell missing.
func addColumn(t *table.Table, log *logger.Logger, name string, f func(row []table.Value, at func(string) table.Value) table.Value) {
	indexes := make(map[string]int)
	missingWarned := make(map[string]bool)

	values := make([]table.Value, len(t.Rows))
	for i, row := range t.Rows {
		at := func(col string) table.Value {
			idx, ok := indexes[col]
			if !ok {
				idx = t.ColIndex(col)
				indexes[col] = idx
				if idx < 0 && !missingWarned[col] {
					missingWarned[col] = true
					warnMissingColumn(log, col)
				}
			}
			if idx < 0 {
				return table.Missing
			}
			return row[idx]
		}
		values[i] = f(row, at)
	}
	t.AddColumn(name, values) //nolint:errcheck // length matches by construction
}

func warnMissingColumn(log *logger.Logger, col string) {
	if log == nil {
		log = logger.Default()
	}
	log.Warn("source column not found, derived values will be missing", logger.Fields{
		"column": col,
	})
}
