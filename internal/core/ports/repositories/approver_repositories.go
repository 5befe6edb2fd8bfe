package repositories

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// ApproverReader defines read operations over the fixed approver directory.
type ApproverReader interface {
	// ListApprovers returns the whole directory in fixture order.
	ListApprovers(ctx context.Context) ([]domain.Approver, error)

	// FindApproversByIDs resolves a set of approver IDs. Duplicate IDs
	// collapse to one approver. Returns apperrors.ErrNotFound naming the
	// first unknown ID.
	FindApproversByIDs(ctx context.Context, ids []string) ([]domain.Approver, error)
}

// ApproverRepositoryFacade combines all approver repository interfaces.
type ApproverRepositoryFacade interface {
	ApproverReader
}
