package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/middleware"
	"github.com/paydeck/bank_portal_app/internal/utils/statement"
)

// statementService projects statement windows over one account's fixture
// transactions. The projection itself is pure; this service only resolves the
// account.
type statementService struct {
	accountRepo portsrepo.AccountReader
}

// NewStatementService creates a new statement service.
func NewStatementService(accountRepo portsrepo.AccountReader) portssvc.StatementSvcFacade {
	return &statementService{accountRepo: accountRepo}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

func (s *statementService) ProjectStatement(ctx context.Context, accountNumber string, params statement.Params) (*domain.Account, *statement.Projection, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load account %s for statement: %w", accountNumber, err)
	}

	proj := statement.Project(account.Summary.Transactions, params)

	middleware.GetLoggerFromCtx(ctx).Debug("Projected statement",
		slog.String("account_number", accountNumber),
		slog.Int("filtered", proj.FilteredCount),
		slog.Int("visible", len(proj.Visible)),
	)

	return account, &proj, nil
}
