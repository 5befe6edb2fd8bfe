package services

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// AccountReaderSvc defines read operations over the demo account directory.
type AccountReaderSvc interface {
	// ListAccounts returns every selectable account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// GetAccountByNumber retrieves one account with its statement summary.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
}
