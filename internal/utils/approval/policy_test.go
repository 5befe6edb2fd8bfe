package approval_test

import (
	"testing"

	"github.com/paydeck/bank_portal_app/internal/utils/approval"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequiredApprovers(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  int
	}{
		{"zero", "0", 1},
		{"negative still yields one", "-50", 1},
		{"small amount", "25000", 1},
		{"just below middle tier", "99999.99", 1},
		{"exactly middle tier boundary", "100000", 3},
		{"inside middle tier", "250000", 3},
		{"just below top tier", "499999.99", 3},
		{"exactly top tier boundary", "500000", 5},
		{"above top tier", "600000", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			assert.Equal(t, tt.want, approval.RequiredApprovers(total))
		})
	}
}
