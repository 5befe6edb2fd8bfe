package dto

import (
	"time"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils"
	"github.com/paydeck/bank_portal_app/internal/utils/statement"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used in query params and responses.
const DateLayout = "2006-01-02"

// StatementQuery carries the projector parameters as query string fields.
// Date strings that do not parse are treated as "no bound", never rejected.
type StatementQuery struct {
	From      string `form:"from"`
	To        string `form:"to"`
	Type      string `form:"type"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	View      string `form:"view"`
	PageSize  int    `form:"pageSize"`
	Page      int    `form:"page"`
}

// ToParams converts the query into projector parameters, applying the
// defaults the statement screens use: date-descending sort, all transactions,
// no pagination unless a page size is given.
func (q StatementQuery) ToParams() statement.Params {
	params := statement.Params{
		Filter: statement.Filter{
			Type:   statement.TypeFilter(q.Type),
			Search: q.Search,
		},
		Sort: statement.Sort{
			By:    statement.SortKey(q.SortBy),
			Order: statement.SortOrder(q.SortOrder),
		},
		View: statement.ViewMode(q.View),
	}

	if from, err := time.Parse(DateLayout, q.From); err == nil {
		params.Filter.From = &from
	}
	if to, err := time.Parse(DateLayout, q.To); err == nil {
		params.Filter.To = &to
	}
	if q.PageSize > 0 {
		page := q.Page
		if page <= 0 {
			page = 1
		}
		params.Page = &statement.Page{Size: q.PageSize, Number: page}
	}
	return params
}

// TransactionResponse is one visible statement line.
type TransactionResponse struct {
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	Reference        string          `json:"reference"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	AmountFormatted  string          `json:"amountFormatted"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceFormatted string          `json:"balanceFormatted"`
}

// StatementResponse is the projected statement window plus its derived
// balances and aggregates.
type StatementResponse struct {
	AccountNumber             string                `json:"accountNumber"`
	Summary                   AccountSummaryResponse `json:"accountSummary"`
	Transactions              []TransactionResponse `json:"transactions"`
	OpeningBalance            decimal.Decimal       `json:"openingBalance"`
	OpeningBalanceFormatted   string                `json:"openingBalanceFormatted"`
	ClosingBalance            decimal.Decimal       `json:"closingBalance"`
	ClosingBalanceFormatted   string                `json:"closingBalanceFormatted"`
	TotalCredits              decimal.Decimal       `json:"totalCredits"`
	TotalDebits               decimal.Decimal       `json:"totalDebits"`
	CreditCount               int                   `json:"creditCount"`
	DebitCount                int                   `json:"debitCount"`
	FilteredCount             int                   `json:"filteredCount"`
	TotalPages                int                   `json:"totalPages"`
}

// ToTransactionResponse converts a domain.Transaction to its statement line DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Date:             txn.Date.Format(DateLayout),
		Description:      txn.Description,
		Reference:        txn.Reference,
		Type:             string(txn.Type),
		Amount:           txn.Amount,
		AmountFormatted:  utils.FormatINR(txn.Amount),
		Balance:          txn.Balance,
		BalanceFormatted: utils.FormatINR(txn.Balance),
	}
}

// ToStatementResponse assembles the full statement response from the account
// and its projection.
func ToStatementResponse(acc *domain.Account, proj *statement.Projection) StatementResponse {
	txns := make([]TransactionResponse, len(proj.Visible))
	for i := range proj.Visible {
		txns[i] = ToTransactionResponse(&proj.Visible[i])
	}

	return StatementResponse{
		AccountNumber:           acc.AccountNumber,
		Summary:                 ToAccountSummaryResponse(&acc.Summary),
		Transactions:            txns,
		OpeningBalance:          proj.OpeningBalance,
		OpeningBalanceFormatted: utils.FormatINR(proj.OpeningBalance),
		ClosingBalance:          proj.ClosingBalance,
		ClosingBalanceFormatted: utils.FormatINR(proj.ClosingBalance),
		TotalCredits:            proj.TotalCredits,
		TotalDebits:             proj.TotalDebits,
		CreditCount:             proj.CreditCount,
		DebitCount:              proj.DebitCount,
		FilteredCount:           proj.FilteredCount,
		TotalPages:              proj.TotalPages,
	}
}
