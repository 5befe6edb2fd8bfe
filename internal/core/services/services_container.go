package services

import (
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:    NewAccountService(repos.AccountRepo),
		Statement:  NewStatementService(repos.AccountRepo),
		Approver:   NewApproverService(repos.ApproverRepo),
		Payroll:    NewPayrollService(repos.PayrollRepo, repos.ApproverRepo),
		PayrollRow: NewPayrollRowService(repos.PayrollRowRepo),
	}
}
