package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a statement transaction is a Credit or a Debit.
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
)

// Transaction is a single statement line. Amount and Balance are non-negative
// magnitudes; the direction is carried by Type. Balance is the running account
// balance immediately after this transaction posted.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"` // unique id, e.g. TXN10001
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for credits, negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
