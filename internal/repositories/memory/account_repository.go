// Package memory provides mutex-guarded in-memory repository implementations
// seeded from demo fixtures. Nothing survives a restart; persistence is out
// of scope for the demo portal.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// AccountRepository serves the fixed demo account directory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

// NewAccountRepository creates an account repository over the given fixtures.
func NewAccountRepository(accounts []domain.Account) *AccountRepository {
	return &AccountRepository{accounts: accounts}
}

// ListAccounts returns every account in fixture order.
func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// FindAccountByNumber retrieves one account with its statement summary.
func (r *AccountRepository) FindAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.accounts {
		if r.accounts[i].AccountNumber == accountNumber {
			account := r.accounts[i]
			return &account, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", accountNumber, apperrors.ErrNotFound)
}
