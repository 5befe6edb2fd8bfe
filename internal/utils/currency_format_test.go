package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "₹0.00"},
		{"below one thousand", "950", "₹950.00"},
		{"four digits", "2500", "₹2,500.00"},
		{"five digits", "25000", "₹25,000.00"},
		{"lakh grouping", "550000", "₹5,50,000.00"},
		{"crore grouping", "12345678.9", "₹1,23,45,678.90"},
		{"rounds to two places", "99.999", "₹100.00"},
		{"negative", "-15000", "-₹15,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, FormatINR(amount))
		})
	}
}
