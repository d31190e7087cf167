// Package derive computes post-processing columns over combined tables.
//
// All metrics are per-row arithmetic on the canonical stat columns, plus
// one text transform splitting a combined "name - count" scorer cell.
// Derivation is best-effort throughout: a missing or zero-divisor input
// yields a missing cell, never a failure, and a table without a source
// column gets an all-missing derived column with a single warning.
package derive
