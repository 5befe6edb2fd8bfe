package memory

import (
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	"github.com/paydeck/bank_portal_app/internal/platform/fixtures"
)

// NewRepositoryProvider builds the full repository set over the demo
// fixtures. Everything lives in memory for the lifetime of the process.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    NewAccountRepository(fixtures.Accounts()),
		ApproverRepo:   NewApproverRepository(fixtures.Approvers()),
		PayrollRepo:    NewPayrollRepository(),
		PayrollRowRepo: NewPayrollRowRepository(fixtures.PayrollRows()),
	}
}
