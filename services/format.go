package services

import (
	"math"
	"strconv"
)

// FormatAmount renders a document amount: zero becomes the empty string,
// whole values drop their decimals, everything else keeps exactly two.
func FormatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatRs prefixes a non-zero amount with the rupee marker used across the
// quotation documents.
func FormatRs(v float64) string {
	s := FormatAmount(v)
	if s == "" {
		return ""
	}
	return "Rs. " + s
}
