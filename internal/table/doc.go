// Package table provides the tidy-table data model and the normalization
// pass that turns raw scraped cell grids into uniform, typed tables.
//
// A Table is a list of canonical column names plus row-major cell values.
// Cells are tagged Values (text, number, or missing) so that best-effort
// numeric coercion can degrade a single malformed cell to missing without
// aborting a whole import. Normalization handles header promotion for
// tables whose first row is not usable as column names, canonicalizes
// column names, truncates every table to a common width, and coerces a
// configured column range to numbers.
package table
