// Package words renders monetary amounts as invoice legends using the
// Indian numbering convention (crore, lakh, thousand).
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	lakh  = 100_000
	crore = 10_000_000
)

// Convert narrates a non-negative amount as an invoice legend, e.g.
// 129800 -> "One Lakh Twenty-Nine Thousand Eight Hundred Rupees Only".
// Zero, negative and sub-paise amounts narrate as the empty string; callers
// must treat "" as "no narration available", not as "amount is zero".
func Convert(amount decimal.Decimal) string {
	if amount.Sign() <= 0 {
		return ""
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise >= 100 {
		// Rounding carried the fraction into a whole rupee.
		rupees++
		paise = 0
	}

	var parts []string
	if rupees > 0 {
		parts = append(parts, integerWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, integerWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " and ") + " Only"
}

func integerWords(n int64) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + "-" + ones[n%10]
	case n < 1000:
		return joinMagnitude(n, 100, "Hundred")
	case n < lakh:
		return joinMagnitude(n, 1000, "Thousand")
	case n < crore:
		return joinMagnitude(n, lakh, "Lakh")
	default:
		return joinMagnitude(n, crore, "Crore")
	}
}

func joinMagnitude(n, unit int64, label string) string {
	head := integerWords(n/unit) + " " + label
	if remainder := n % unit; remainder != 0 {
		return head + " " + integerWords(remainder)
	}
	return head
}
