package services

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/utils/statement"
)

// StatementSvcFacade projects the visible statement window of one account.
type StatementSvcFacade interface {
	// ProjectStatement loads the account's transactions and applies the
	// given filter/sort/view/page parameters. The account is returned
	// alongside the projection so callers can render the statement header.
	ProjectStatement(ctx context.Context, accountNumber string, params statement.Params) (*domain.Account, *statement.Projection, error)
}
