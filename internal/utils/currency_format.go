package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rupeeSymbol prefixes every formatted amount, matching the portal fixtures.
const rupeeSymbol = "₹"

// FormatINR renders an amount for display with the rupee symbol, Indian digit
// grouping and exactly two decimal places: 550000 -> "₹5,50,000.00".
// Formatting is a display concern only; arithmetic always happens on the raw
// decimal values.
func FormatINR(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupIndian(parts[0])

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(rupeeSymbol)
	b.WriteString(grouped)
	b.WriteString(".")
	b.WriteString(parts[1])
	return b.String()
}

// groupIndian inserts commas in the Indian numbering pattern: the last three
// digits form one group, every preceding pair forms another (12,34,56,789).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}
