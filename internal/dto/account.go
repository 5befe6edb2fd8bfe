package dto

import (
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AccountListItemResponse is one row of the account selection carousel.
type AccountListItemResponse struct {
	Company       string `json:"company"`
	AccountNumber string `json:"accountNumber"`
	Role          string `json:"role"`
	Department    string `json:"department"`
	Status        string `json:"status"`
	LastLogin     string `json:"lastLogin"`
}

// AccountSummaryResponse is the statement header block of one account.
type AccountSummaryResponse struct {
	AccountType             string          `json:"accountType"`
	IFSC                    string          `json:"ifsc"`
	MICR                    string          `json:"micr"`
	Nomination              string          `json:"nomination"`
	CurrentBalance          decimal.Decimal `json:"currentBalance"`
	CurrentBalanceFormatted string          `json:"currentBalanceFormatted"`
	AsOnDate                string          `json:"asOnDate"`
	StatementFrom           string          `json:"statementFrom"`
	StatementTo             string          `json:"statementTo"`
}

// AccountResponse is the full account record with its statement header.
type AccountResponse struct {
	AccountListItemResponse
	Summary AccountSummaryResponse `json:"accountSummary"`
}

// ToAccountListItemResponse converts a domain.Account to its carousel row DTO.
func ToAccountListItemResponse(acc *domain.Account) AccountListItemResponse {
	return AccountListItemResponse{
		Company:       acc.Company,
		AccountNumber: acc.AccountNumber,
		Role:          acc.Role,
		Department:    acc.Department,
		Status:        string(acc.Status),
		LastLogin:     acc.LastLogin,
	}
}

// ToAccountListItemResponses converts a slice of accounts to carousel rows.
func ToAccountListItemResponses(accs []domain.Account) []AccountListItemResponse {
	responses := make([]AccountListItemResponse, len(accs))
	for i := range accs {
		responses[i] = ToAccountListItemResponse(&accs[i])
	}
	return responses
}

// ToAccountSummaryResponse converts a domain.AccountSummary to its DTO.
func ToAccountSummaryResponse(s *domain.AccountSummary) AccountSummaryResponse {
	return AccountSummaryResponse{
		AccountType:             s.AccountType,
		IFSC:                    s.IFSC,
		MICR:                    s.MICR,
		Nomination:              s.Nomination,
		CurrentBalance:          s.CurrentBalance,
		CurrentBalanceFormatted: utils.FormatINR(s.CurrentBalance),
		AsOnDate:                s.AsOnDate.Format(DateLayout),
		StatementFrom:           s.StatementRange.From.Format(DateLayout),
		StatementTo:             s.StatementRange.To.Format(DateLayout),
	}
}

// ToAccountResponse converts a domain.Account to the full account DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountListItemResponse: ToAccountListItemResponse(acc),
		Summary:                 ToAccountSummaryResponse(&acc.Summary),
	}
}
