package domain_test

import (
	"testing"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pendingRow(amount int64, approvalsLeft int) domain.PayrollRow {
	return domain.PayrollRow{
		RowID:         "row-1",
		Name:          "Asha Verma",
		Department:    "Technology",
		Period:        "31 Aug",
		Amount:        decimal.NewFromInt(amount),
		Status:        domain.RowPending,
		ApprovalsLeft: approvalsLeft,
	}
}

func TestPayrollRow_ApproveCountsDownThenApproves(t *testing.T) {
	row := pendingRow(600000, 5)

	for want := 4; want >= 1; want-- {
		assert.True(t, row.Approve())
		assert.Equal(t, domain.RowPending, row.Status)
		assert.Equal(t, want, row.ApprovalsLeft)
	}

	assert.True(t, row.Approve())
	assert.Equal(t, domain.RowApproved, row.Status)
	assert.Equal(t, 0, row.ApprovalsLeft)
	assert.True(t, row.Terminal())
}

func TestPayrollRow_SingleApprovalRow(t *testing.T) {
	row := pendingRow(25000, 1)

	assert.True(t, row.Approve())
	assert.Equal(t, domain.RowApproved, row.Status)
	assert.Equal(t, 0, row.ApprovalsLeft)
}

func TestPayrollRow_RejectFreezesFromAnyPendingPoint(t *testing.T) {
	row := pendingRow(600000, 5)

	assert.True(t, row.Approve()) // 4 left, still pending
	assert.True(t, row.Reject())
	assert.Equal(t, domain.RowRejected, row.Status)
	assert.Equal(t, 0, row.ApprovalsLeft)
	assert.True(t, row.Terminal())
}

func TestPayrollRow_TerminalRowsIgnoreFurtherActions(t *testing.T) {
	tests := []struct {
		name   string
		status domain.RowStatus
	}{
		{"approved row", domain.RowApproved},
		{"rejected row", domain.RowRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := pendingRow(50000, 0)
			row.Status = tt.status

			assert.False(t, row.Approve())
			assert.False(t, row.Reject())
			assert.Equal(t, tt.status, row.Status)
			assert.Equal(t, 0, row.ApprovalsLeft)
		})
	}
}
