// Package storage writes tidy-table artifacts as flat CSV files.
//
// Each run fully overwrites its output files; there is no incremental
// append and no state carried between runs. Files hold one header row
// of canonical column names and one row per team, with missing values
// serialized as empty cells.
package storage
