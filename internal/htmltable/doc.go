// Package htmltable extracts HTML tables into plain 2D cell grids.
//
// Every <table> element in a document is converted, in document order,
// into a Grid of trimmed cell text. Ragged rows (from merged or spanning
// cells) are padded with empty cells to the widest row observed in that
// table, so downstream positional indexing never goes out of range.
package htmltable
