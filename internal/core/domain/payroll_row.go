package domain

import (
	"github.com/shopspring/decimal"
)

// RowStatus is the state of a row in the standalone payroll approval queue.
type RowStatus string

const (
	RowPending  RowStatus = "Pending"
	RowApproved RowStatus = "Approved"
	RowRejected RowStatus = "Reject"
)

// PayrollRow is an independently approvable payroll entry. Unlike the batch
// flow, each row tracks its own remaining approval count, initialized from
// the row's own amount. Each approve call counts as one of the required
// approvals; the row does not record who cast it.
type PayrollRow struct {
	RowID         string          `json:"rowId"`
	Name          string          `json:"name"`
	Department    string          `json:"department"`
	Period        string          `json:"period"`
	Amount        decimal.Decimal `json:"amount"`
	Status        RowStatus       `json:"status"`
	ApprovalsLeft int             `json:"approvalsLeft"`
}

// Approve casts one approval. It is a no-op on a non-pending row. The row
// transitions to Approved on the last required approval and stays Pending
// with a decremented counter otherwise. It reports whether the call changed
// the row.
func (r *PayrollRow) Approve() bool {
	if r.Status != RowPending {
		return false
	}
	if r.ApprovalsLeft > 1 {
		r.ApprovalsLeft--
		return true
	}
	r.Status = RowApproved
	r.ApprovalsLeft = 0
	return true
}

// Reject moves a pending row to the terminal Reject state and zeroes the
// remaining approval count. No-op on non-pending rows. It reports whether the
// call changed the row.
func (r *PayrollRow) Reject() bool {
	if r.Status != RowPending {
		return false
	}
	r.Status = RowRejected
	r.ApprovalsLeft = 0
	return true
}

// Terminal reports whether no further approve/reject action is possible.
func (r PayrollRow) Terminal() bool {
	return r.Status != RowPending
}
