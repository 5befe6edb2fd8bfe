// Package approval holds the tiered approval-threshold policy shared by the
// batch and row-level payroll flows.
package approval

import "github.com/shopspring/decimal"

// Threshold tiers, evaluated highest first. Lower bounds are inclusive.
var (
	tierFive  = decimal.NewFromInt(500000)
	tierThree = decimal.NewFromInt(100000)
)

// RequiredApprovers returns how many distinct approvers must sign off on a
// payroll total before it may be approved:
//
//	total >= 500000            -> 5
//	100000 <= total < 500000   -> 3
//	total < 100000             -> 1
//
// Zero or negative totals yield 1; amounts are sums of positive entries so
// negative totals are not expected, and the policy does not validate them.
func RequiredApprovers(total decimal.Decimal) int {
	switch {
	case total.GreaterThanOrEqual(tierFive):
		return 5
	case total.GreaterThanOrEqual(tierThree):
		return 3
	default:
		return 1
	}
}
