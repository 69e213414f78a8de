package services

import (
	"strings"
)

// AmountInWords converts a whole rupee amount to English words, e.g.
// 1999 → "One Thousand Nine Hundred Ninety Nine Rupees Only".
// Callers round fractional amounts before converting. Amounts of a billion
// or more fall out of the million recursion as "N Thousand Million ...".
func AmountInWords(n int) string {
	if n == 0 {
		return "Zero Rupees Only"
	}
	if n < 0 {
		return "Minus " + AmountInWords(-n)
	}
	return numberWords(n) + " Rupees Only"
}

// numberWords reduces n band by band: millions, thousands, hundreds, then
// tens and ones. Fragments are space-joined with empty tails trimmed away.
func numberWords(n int) string {
	switch {
	case n >= 1000000:
		return strings.TrimSpace(numberWords(n/1000000) + " Million " + numberWords(n%1000000))
	case n >= 1000:
		return strings.TrimSpace(numberWords(n/1000) + " Thousand " + numberWords(n%1000))
	case n >= 100:
		return strings.TrimSpace(onesWords[n/100] + " Hundred " + numberWords(n%100))
	case n >= 20:
		return strings.TrimSpace(tensWords[n/10] + " " + onesWords[n%10])
	default:
		return onesWords[n]
	}
}

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
