// Package fixtures holds the demo data the portal boots with. The in-memory
// repositories copy these slices at startup, so callers never share state
// with them.
package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils/approval"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func amt(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// Accounts returns the selectable demo accounts, in display order.
func Accounts() []domain.Account {
	return []domain.Account{
		{
			Company:       "ABC Tech Ltd.",
			AccountNumber: "1234567890",
			Role:          "Manager",
			Department:    "Finance",
			Status:        domain.AccountActive,
			LastLogin:     "2025-08-05 10:30 AM",
			Summary: domain.AccountSummary{
				AccountType:    "Savings",
				IFSC:           "ABCC0001001",
				MICR:           "123456789",
				Nomination:     "Registered",
				CurrentBalance: amt("550000"),
				AsOnDate:       day("2025-08-05"),
				StatementRange: domain.DateRange{From: day("2025-08-01"), To: day("2025-08-05")},
				Transactions: []domain.Transaction{
					{
						Date:        day("2025-08-02"),
						Description: "Salary Credit",
						Reference:   "TXN10001",
						Type:        domain.Credit,
						Amount:      amt("50000"),
						Balance:     amt("550000"),
					},
					{
						Date:        day("2025-08-03"),
						Description: "Vendor Payment",
						Reference:   "TXN10002",
						Type:        domain.Debit,
						Amount:      amt("15000"),
						Balance:     amt("535000"),
					},
				},
			},
		},
		{
			Company:       "XYZ Corp.",
			AccountNumber: "9876543210",
			Role:          "Employee",
			Department:    "Sales",
			Status:        domain.AccountInactive,
			LastLogin:     "2025-07-29 4:45 PM",
			Summary: domain.AccountSummary{
				AccountType:    "Current",
				IFSC:           "ABCC0002002",
				MICR:           "987654321",
				Nomination:     "Not Registered",
				CurrentBalance: amt("200000"),
				AsOnDate:       day("2025-07-29"),
				StatementRange: domain.DateRange{From: day("2025-07-20"), To: day("2025-07-29")},
				Transactions:   []domain.Transaction{},
			},
		},
		{
			Company:       "Innova Systems",
			AccountNumber: "1122334455",
			Role:          "Finance Officer",
			Department:    "Accounts",
			Status:        domain.AccountActive,
			LastLogin:     "2025-08-01 12:15 PM",
			Summary: domain.AccountSummary{
				AccountType:    "Savings",
				IFSC:           "ABCC0003003",
				MICR:           "456789123",
				Nomination:     "Registered",
				CurrentBalance: amt("875000"),
				AsOnDate:       day("2025-08-01"),
				StatementRange: domain.DateRange{From: day("2025-07-25"), To: day("2025-08-01")},
				Transactions: []domain.Transaction{
					{
						Date:        day("2025-07-28"),
						Description: "Invoice Payment",
						Reference:   "TXN30003",
						Type:        domain.Credit,
						Amount:      amt("125000"),
						Balance:     amt("875000"),
					},
				},
			},
		},
		{
			Company:       "DEF Tech Ltd.",
			AccountNumber: "1234567880",
			Role:          "Finance Officer",
			Department:    "Finance",
			Status:        domain.AccountActive,
			LastLogin:     "2025-08-05 10:30 AM",
			Summary: domain.AccountSummary{
				AccountType:    "Savings",
				IFSC:           "ABCC0001201",
				MICR:           "123456779",
				Nomination:     "Registered",
				CurrentBalance: amt("730999"),
				AsOnDate:       day("2025-08-05"),
				StatementRange: domain.DateRange{From: day("2025-08-01"), To: day("2025-08-05")},
				Transactions: []domain.Transaction{
					{
						Date:        day("2025-08-02"),
						Description: "Salary Credit",
						Reference:   "TXN10001",
						Type:        domain.Credit,
						Amount:      amt("50000"),
						Balance:     amt("550000"),
					},
					{
						Date:        day("2025-08-03"),
						Description: "Vendor Payment",
						Reference:   "TXN10002",
						Type:        domain.Debit,
						Amount:      amt("15000"),
						Balance:     amt("535000"),
					},
				},
			},
		},
	}
}

// Approvers returns the people selectable as payroll batch approvers.
func Approvers() []domain.Approver {
	return []domain.Approver{
		{ID: "1", Name: "Ratan Tata", Role: "Chairman", Avatar: "👨‍💼"},
		{ID: "2", Name: "Kiran Mazumdar Shaw", Role: "Executive Chairperson", Avatar: "👩‍💼"},
		{ID: "3", Name: "N. R. Narayana Murthy", Role: "Co-founder", Avatar: "👨‍💻"},
		{ID: "4", Name: "Falguni Nayar", Role: "Manager", Avatar: "👩‍💼"},
		{ID: "5", Name: "Azim Premji", Role: "Manager", Avatar: "👨‍💼"},
		{ID: "6", Name: "Shikha Sharma", Role: "Manager", Avatar: "👩‍💻"},
		{ID: "7", Name: "Uday Kotak", Role: "Manager", Avatar: "👨‍💼"},
		{ID: "8", Name: "Chanda Kochhar", Role: "Manager", Avatar: "👩‍💼"},
		{ID: "9", Name: "Raghuram Rajan", Role: "Manager", Avatar: "👨‍💼"},
		{ID: "10", Name: "Urjit Patel", Role: "Manager", Avatar: "👨‍💼"},
	}
}

// PayrollRows returns the standalone approval queue's starting rows. Pending
// rows get their remaining approval count from the amount tiers; terminal
// rows start at zero.
func PayrollRows() []domain.PayrollRow {
	rows := []domain.PayrollRow{
		{RowID: "2031171", Name: "John", Department: "Technology", Period: "31 Aug", Amount: amt("40000"), Status: domain.RowPending},
		{RowID: "2031172", Name: "Scott", Department: "Technology", Period: "31 Aug", Amount: amt("150000"), Status: domain.RowPending},
		{RowID: "2031173", Name: "Martin", Department: "Technology", Period: "31 Aug", Amount: amt("600000"), Status: domain.RowPending},
		{RowID: "2031174", Name: "James", Department: "Technology", Period: "31 Aug", Amount: amt("40000"), Status: domain.RowApproved},
		{RowID: "2031175", Name: "Nisha", Department: "Technology", Period: "31 Aug", Amount: amt("40000"), Status: domain.RowRejected},
	}
	for i := range rows {
		if rows[i].Status == domain.RowPending {
			rows[i].ApprovalsLeft = approval.RequiredApprovers(rows[i].Amount)
		}
	}
	return rows
}
