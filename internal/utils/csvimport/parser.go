// Package csvimport parses the payroll bulk-upload CSV format:
//
//	Bank ID,Account Number,Name,Amount,Remarks
//
// The header row is read but its column names are not validated. Invalid rows
// are kept in the preview with a reason so the caller can flag them; only
// valid rows are eligible for commit.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const numFields = 5

const (
	colBankID = iota
	colAccountNumber
	colName
	colAmount
	colRemarks
)

// Row is one parsed payroll entry. Amount is only meaningful when Valid is
// true; Reason explains the first validation failure otherwise.
type Row struct {
	Line          int // 1-based line number in the file, header included
	BankID        string
	AccountNumber string
	Name          string
	Amount        decimal.Decimal
	Remarks       string
	Valid         bool
	Reason        string
}

// Parse reads a payroll CSV and returns every data row, valid or not. It
// returns an error wrapping apperrors.ErrParse only when the input cannot be
// read as CSV at all; per-row problems are reported on the row itself.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading payroll CSV: %v", apperrors.ErrParse, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		rows = append(rows, parseRow(i+2, rec))
	}
	return rows, nil
}

func parseRow(line int, rec []string) Row {
	row := Row{Line: line}

	if len(rec) != numFields {
		row.Reason = fmt.Sprintf("expected %d fields, got %d", numFields, len(rec))
		return row
	}

	row.BankID = strings.TrimSpace(rec[colBankID])
	row.AccountNumber = strings.TrimSpace(rec[colAccountNumber])
	row.Name = strings.TrimSpace(rec[colName])
	row.Remarks = strings.TrimSpace(rec[colRemarks])

	switch {
	case row.BankID == "":
		row.Reason = "bank id is required"
	case row.AccountNumber == "":
		row.Reason = "account number is required"
	case row.Name == "":
		row.Reason = "name is required"
	case row.Remarks == "":
		row.Reason = "remarks is required"
	}
	if row.Reason != "" {
		return row
	}

	amountStr := strings.TrimSpace(rec[colAmount])
	if amountStr == "" {
		row.Reason = "amount is required"
		return row
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		row.Reason = fmt.Sprintf("amount %q is not a number", amountStr)
		return row
	}

	row.Amount = amount
	row.Valid = true
	return row
}

// ValidRows returns only the rows eligible for the commit action.
func ValidRows(rows []Row) []Row {
	var valid []Row
	for _, row := range rows {
		if row.Valid {
			valid = append(valid, row)
		}
	}
	return valid
}
