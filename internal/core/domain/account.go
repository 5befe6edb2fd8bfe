package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the demo portal's account state flag.
type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

// DateRange is an inclusive calendar date interval.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// AccountSummary holds the statement header details for one account.
// The transaction slice is in insertion order, not necessarily chronological;
// consumers re-sort on demand.
type AccountSummary struct {
	AccountType    string          `json:"accountType"` // Savings, Current, ...
	IFSC           string          `json:"ifsc"`
	MICR           string          `json:"micr"`
	Nomination     string          `json:"nomination"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AsOnDate       time.Time       `json:"asOnDate"`
	StatementRange DateRange       `json:"statementRange"`
	Transactions   []Transaction   `json:"transactions"`
}

// Account is one selectable demo account. Constructed once from fixtures at
// process start and never mutated afterwards.
type Account struct {
	Company       string         `json:"company"`
	AccountNumber string         `json:"accountNumber"` // unique
	Role          string         `json:"role"`
	Department    string         `json:"department"`
	Status        AccountStatus  `json:"status"`
	LastLogin     string         `json:"lastLogin"`
	Summary       AccountSummary `json:"accountSummary"`
}
