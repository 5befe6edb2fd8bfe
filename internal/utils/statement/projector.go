// Package statement computes the visible transaction window of an account
// statement: filtering, sorting, view truncation, pagination, and the derived
// opening/closing balances and credit/debit aggregates.
package statement

import (
	"sort"
	"strings"
	"time"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TypeFilter restricts a projection to one transaction direction.
type TypeFilter string

const (
	TypeAll    TypeFilter = "All"
	TypeCredit TypeFilter = "Credit"
	TypeDebit  TypeFilter = "Debit"
)

// SortKey selects the field a projection is ordered by.
type SortKey string

const (
	SortByDate        SortKey = "date"
	SortByAmount      SortKey = "amount"
	SortByDescription SortKey = "description"
	SortByType        SortKey = "type"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ViewMode selects how many post-sort transactions are shown, independent of
// filtering.
type ViewMode string

const (
	ViewRecent ViewMode = "recent" // first 5
	ViewLast50 ViewMode = "last50" // first 50
	ViewAll    ViewMode = "all"
)

// Filter keeps a transaction iff every set bound matches. Nil date bounds and
// an empty search term mean "no bound".
type Filter struct {
	From   *time.Time
	To     *time.Time
	Type   TypeFilter
	Search string // case-insensitive substring of description or reference
}

// Sort describes the requested ordering. Ties keep their prior relative order.
type Sort struct {
	By    SortKey
	Order SortOrder
}

// Page is an optional slice over the post-view-restriction sequence.
type Page struct {
	Size   int
	Number int // 1-based
}

// Params bundles all projection inputs.
type Params struct {
	Filter Filter
	Sort   Sort
	View   ViewMode
	Page   *Page
}

// Projection is the computed statement window. Aggregates and the derived
// balances cover the whole filtered set, not just the visible page.
type Projection struct {
	Visible        []domain.Transaction
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	CreditCount    int
	DebitCount     int
	FilteredCount  int
	TotalPages     int
}

// Project applies filter, sort, view restriction and pagination over txns and
// derives opening/closing balances and aggregates from the filtered set.
func Project(txns []domain.Transaction, p Params) Projection {
	filtered := applyFilter(txns, p.Filter)

	proj := Projection{
		OpeningBalance: decimal.Zero,
		ClosingBalance: decimal.Zero,
		TotalCredits:   decimal.Zero,
		TotalDebits:    decimal.Zero,
		FilteredCount:  len(filtered),
	}

	for _, txn := range filtered {
		if txn.Type == domain.Credit {
			proj.TotalCredits = proj.TotalCredits.Add(txn.Amount)
			proj.CreditCount++
		} else {
			proj.TotalDebits = proj.TotalDebits.Add(txn.Amount)
			proj.DebitCount++
		}
	}

	proj.OpeningBalance, proj.ClosingBalance = deriveBalances(filtered)

	visible := make([]domain.Transaction, len(filtered))
	copy(visible, filtered)
	applySort(visible, p.Sort)
	visible = applyView(visible, p.View)
	visible, proj.TotalPages = applyPage(visible, p.Page)
	proj.Visible = visible

	return proj
}

func applyFilter(txns []domain.Transaction, f Filter) []domain.Transaction {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var kept []domain.Transaction
	for _, txn := range txns {
		if f.From != nil && txn.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && txn.Date.After(*f.To) {
			continue
		}
		if f.Type != "" && f.Type != TypeAll && TypeFilter(txn.Type) != f.Type {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(txn.Description), search) &&
			!strings.Contains(strings.ToLower(txn.Reference), search) {
			continue
		}
		kept = append(kept, txn)
	}
	return kept
}

func applySort(txns []domain.Transaction, s Sort) {
	key := s.By
	if key == "" {
		key = SortByDate
	}
	desc := s.Order != Ascending

	sort.SliceStable(txns, func(i, j int) bool {
		a, b := txns[i], txns[j]
		if desc {
			a, b = b, a
		}
		switch key {
		case SortByAmount:
			return a.Amount.LessThan(b.Amount)
		case SortByDescription:
			return a.Description < b.Description
		case SortByType:
			return a.Type < b.Type
		default:
			return a.Date.Before(b.Date)
		}
	})
}

func applyView(txns []domain.Transaction, view ViewMode) []domain.Transaction {
	switch view {
	case ViewRecent:
		if len(txns) > 5 {
			return txns[:5]
		}
	case ViewLast50:
		if len(txns) > 50 {
			return txns[:50]
		}
	}
	return txns
}

func applyPage(txns []domain.Transaction, page *Page) ([]domain.Transaction, int) {
	if page == nil || page.Size <= 0 {
		return txns, 1
	}
	totalPages := (len(txns) + page.Size - 1) / page.Size
	if totalPages == 0 {
		totalPages = 1
	}
	start := (page.Number - 1) * page.Size
	if start < 0 || start >= len(txns) {
		return []domain.Transaction{}, totalPages
	}
	end := start + page.Size
	if end > len(txns) {
		end = len(txns)
	}
	return txns[start:end], totalPages
}

// deriveBalances computes the opening and closing balances of the filtered
// set. The closing balance is the stored running balance of the
// chronologically last entry. The opening balance reverses the first entry's
// own effect on its stored balance; this treats each stored balance as a
// point-in-time snapshot and is an approximation, not a ledger
// reconciliation.
func deriveBalances(filtered []domain.Transaction) (opening, closing decimal.Decimal) {
	if len(filtered) == 0 {
		return decimal.Zero, decimal.Zero
	}

	chrono := make([]domain.Transaction, len(filtered))
	copy(chrono, filtered)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Date.Before(chrono[j].Date)
	})

	first := chrono[0]
	if first.Type == domain.Credit {
		opening = first.Balance.Sub(first.Amount)
	} else {
		opening = first.Balance.Add(first.Amount)
	}
	closing = chrono[len(chrono)-1].Balance
	return opening, closing
}
