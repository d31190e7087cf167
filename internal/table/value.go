package table

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind discriminates the three states a cell value can be in.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindMissing
)

// Value is a single table cell: text, a number, or missing.
// Missing is the result of a failed numeric coercion (e.g. a "—"
// placeholder in a stats column) and serializes as an empty string.
type Value struct {
	Kind Kind
	Text string
	Num  float64
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Missing is the missing-value marker.
var Missing = Value{Kind: KindMissing}

// IsMissing reports whether the value is the missing marker.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// String renders the value for output. Numbers that are whole render
// without a decimal point; missing renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		if v.Num == float64(int64(v.Num)) {
			return strconv.FormatInt(int64(v.Num), 10)
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// decoration matches everything that is not part of a number, so that
// cells like "1,234", "90'", or "+7" still parse.
var decoration = regexp.MustCompile(`[^0-9.\-+eE]`)

// Coerce parses a cell's text into a numeric Value. It never fails:
// a cell that cannot be parsed (placeholder dashes, vacant entries,
// free text) becomes Missing rather than an error, so one malformed
// cell can never abort a league's import.
func Coerce(s string) Value {
	cleaned := decoration.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" {
		return Missing
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return Missing
	}
	return Number(n)
}

// CoerceValue applies Coerce to a text value. Numbers and missing
// values pass through unchanged, which makes coercion idempotent.
func CoerceValue(v Value) Value {
	if v.Kind != KindText {
		return v
	}
	return Coerce(v.Text)
}
