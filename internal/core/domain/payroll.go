package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollTransaction is a single payee entry. While a payroll run is being
// assembled it lives in the draft working set and may be edited or deleted;
// once snapshotted into a Batch it is immutable.
type PayrollTransaction struct {
	ID            string          `json:"id"` // assigned at creation
	BankID        string          `json:"bankId"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
}

// Approver is an entry in the fixed approver directory.
type Approver struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// BatchStatus is the lifecycle state of a payroll batch.
type BatchStatus string

const (
	BatchPending  BatchStatus = "pending"
	BatchApproved BatchStatus = "approved"
)

// Batch is a snapshot group of payroll transactions submitted for approval as
// one unit. RequiredApprovals is fixed from TotalAmount at creation and never
// recomputed. The approver set is fixed at submission; approval is a single
// all-or-nothing action.
type Batch struct {
	BatchID           string               `json:"batchId"`
	Transactions      []PayrollTransaction `json:"transactions"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
	Approvers         []Approver           `json:"approvers"`
	Status            BatchStatus          `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
	ApprovedAt        *time.Time           `json:"approvedAt,omitempty"`
	RequiredApprovals int                  `json:"requiredApprovals"`
}
