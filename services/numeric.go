// Package services holds the quotation domain model: line-item tables,
// total aggregation, payload building and document generation.
package services

import (
	"strconv"
	"strings"
)

// ParsedNumeric wraps a raw user-entered numeric string together with its
// parsed value. Parsing never fails: anything that is not a plain number
// (including the empty string) parses to zero, while the raw text is kept
// verbatim for redisplay.
type ParsedNumeric struct {
	raw string
}

// Numeric wraps a raw string for lax numeric interpretation.
func Numeric(raw string) ParsedNumeric {
	return ParsedNumeric{raw: raw}
}

// Raw returns the original text exactly as entered.
func (p ParsedNumeric) Raw() string {
	return p.raw
}

// Float returns the parsed value, or 0 when the raw text is not a number.
func (p ParsedNumeric) Float() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// IsNumber reports whether the raw text parses as a number.
// The empty string is not a number.
func (p ParsedNumeric) IsNumber() bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(p.raw), 64)
	return err == nil
}
