package dto

import (
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils"
	"github.com/shopspring/decimal"
)

// PayrollRowResponse is one row of the standalone approval queue.
type PayrollRowResponse struct {
	RowID           string          `json:"rowId"`
	Name            string          `json:"name"`
	Department      string          `json:"department"`
	Period          string          `json:"period"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amountFormatted"`
	Status          string          `json:"status"`
	ApprovalsLeft   int             `json:"approvalsLeft"`
}

// PayrollRowActionResponse reports an approve/reject call's outcome; Changed
// is false when the action was a no-op on a terminal row.
type PayrollRowActionResponse struct {
	Row     PayrollRowResponse `json:"row"`
	Changed bool               `json:"changed"`
}

// ToPayrollRowResponse converts a domain.PayrollRow to its DTO.
func ToPayrollRowResponse(r *domain.PayrollRow) PayrollRowResponse {
	return PayrollRowResponse{
		RowID:           r.RowID,
		Name:            r.Name,
		Department:      r.Department,
		Period:          r.Period,
		Amount:          r.Amount,
		AmountFormatted: utils.FormatINR(r.Amount),
		Status:          string(r.Status),
		ApprovalsLeft:   r.ApprovalsLeft,
	}
}

// ToPayrollRowResponses converts a slice of queue rows.
func ToPayrollRowResponses(rows []domain.PayrollRow) []PayrollRowResponse {
	responses := make([]PayrollRowResponse, len(rows))
	for i := range rows {
		responses[i] = ToPayrollRowResponse(&rows[i])
	}
	return responses
}
