package dto

import (
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils"
	"github.com/paydeck/bank_portal_app/internal/utils/approval"
	"github.com/paydeck/bank_portal_app/internal/utils/csvimport"
	"github.com/shopspring/decimal"
)

// CreatePayrollTransactionRequest is the single-entry payroll form. All five
// fields are mandatory.
type CreatePayrollTransactionRequest struct {
	BankID        string          `json:"bankId" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Remarks       string          `json:"remarks" binding:"required"`
}

// CreateBatchRequest submits the current draft working set for approval with
// the selected approver set.
type CreateBatchRequest struct {
	ApproverIDs []string `json:"approverIds" binding:"required,min=1"`
}

// PayrollTransactionResponse is one payroll entry, draft or batched.
type PayrollTransactionResponse struct {
	ID              string          `json:"id"`
	BankID          string          `json:"bankId"`
	AccountNumber   string          `json:"accountNumber"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	Remarks         string          `json:"remarks"`
}

// DraftListResponse is the working set with its running total and the
// approver count that total currently requires.
type DraftListResponse struct {
	Transactions      []PayrollTransactionResponse `json:"transactions"`
	TotalAmount       decimal.Decimal              `json:"totalAmount"`
	RequiredApprovals int                          `json:"requiredApprovals"`
}

// BatchResponse is one payroll batch, pending or in history.
type BatchResponse struct {
	BatchID              string                       `json:"batchId"`
	Transactions         []PayrollTransactionResponse `json:"transactions"`
	TotalAmount          decimal.Decimal              `json:"totalAmount"`
	TotalAmountFormatted string                       `json:"totalAmountFormatted"`
	Approvers            []ApproverResponse           `json:"approvers"`
	Status               string                       `json:"status"`
	CreatedAt            string                       `json:"createdAt"`
	ApprovedAt           string                       `json:"approvedAt,omitempty"`
	RequiredApprovals    int                          `json:"requiredApprovals"`
}

// BatchHistoryResponse is one page of approved batches.
type BatchHistoryResponse struct {
	Batches    []BatchResponse `json:"batches"`
	TotalPages int             `json:"totalPages"`
}

// ImportRowResponse is one previewed CSV row, valid or flagged.
type ImportRowResponse struct {
	Line          int             `json:"line"`
	BankID        string          `json:"bankId"`
	AccountNumber string          `json:"accountNumber"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks"`
	IsValid       bool            `json:"isValid"`
	Reason        string          `json:"reason,omitempty"`
}

// ImportPreviewResponse is the flagged preview of an uploaded payroll CSV.
type ImportPreviewResponse struct {
	Rows         []ImportRowResponse `json:"rows"`
	ValidCount   int                 `json:"validCount"`
	InvalidCount int                 `json:"invalidCount"`
}

// ImportCommitResponse reports the result of committing an upload's valid rows.
type ImportCommitResponse struct {
	Added   []PayrollTransactionResponse `json:"added"`
	Skipped int                          `json:"skipped"`
}

// ToPayrollTransactionResponse converts a domain payroll transaction to its DTO.
func ToPayrollTransactionResponse(txn *domain.PayrollTransaction) PayrollTransactionResponse {
	return PayrollTransactionResponse{
		ID:              txn.ID,
		BankID:          txn.BankID,
		AccountNumber:   txn.AccountNumber,
		Name:            txn.Name,
		Amount:          txn.Amount,
		AmountFormatted: utils.FormatINR(txn.Amount),
		Remarks:         txn.Remarks,
	}
}

// ToPayrollTransactionResponses converts a slice of payroll transactions.
func ToPayrollTransactionResponses(txns []domain.PayrollTransaction) []PayrollTransactionResponse {
	responses := make([]PayrollTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToPayrollTransactionResponse(&txns[i])
	}
	return responses
}

// ToDraftListResponse assembles the working set response, deriving the total
// and the approver count the current total would require.
func ToDraftListResponse(txns []domain.PayrollTransaction) DraftListResponse {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}
	return DraftListResponse{
		Transactions:      ToPayrollTransactionResponses(txns),
		TotalAmount:       total,
		RequiredApprovals: approval.RequiredApprovers(total),
	}
}

// ToBatchResponse converts a domain.Batch to its DTO.
func ToBatchResponse(b *domain.Batch) BatchResponse {
	resp := BatchResponse{
		BatchID:              b.BatchID,
		Transactions:         ToPayrollTransactionResponses(b.Transactions),
		TotalAmount:          b.TotalAmount,
		TotalAmountFormatted: utils.FormatINR(b.TotalAmount),
		Approvers:            ToApproverResponses(b.Approvers),
		Status:               string(b.Status),
		CreatedAt:            b.CreatedAt.Format(TimestampLayout),
		RequiredApprovals:    b.RequiredApprovals,
	}
	if b.ApprovedAt != nil {
		resp.ApprovedAt = b.ApprovedAt.Format(TimestampLayout)
	}
	return resp
}

// ToBatchResponses converts a slice of batches.
func ToBatchResponses(batches []domain.Batch) []BatchResponse {
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i])
	}
	return responses
}

// ToImportPreviewResponse converts parsed CSV rows to the flagged preview.
func ToImportPreviewResponse(rows []csvimport.Row) ImportPreviewResponse {
	resp := ImportPreviewResponse{Rows: make([]ImportRowResponse, len(rows))}
	for i, row := range rows {
		resp.Rows[i] = ImportRowResponse{
			Line:          row.Line,
			BankID:        row.BankID,
			AccountNumber: row.AccountNumber,
			Name:          row.Name,
			Amount:        row.Amount,
			Remarks:       row.Remarks,
			IsValid:       row.Valid,
			Reason:        row.Reason,
		}
		if row.Valid {
			resp.ValidCount++
		} else {
			resp.InvalidCount++
		}
	}
	return resp
}
