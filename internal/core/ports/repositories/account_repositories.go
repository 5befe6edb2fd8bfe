package repositories

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// AccountReader defines read operations for the demo account directory.
// Accounts are fixture data; there are no write operations.
type AccountReader interface {
	// ListAccounts returns every selectable account in fixture order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByNumber retrieves one account with its full statement
	// summary. Returns apperrors.ErrNotFound when the number is unknown.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
}
