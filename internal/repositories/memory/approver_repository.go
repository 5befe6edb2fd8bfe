package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// ApproverRepository serves the fixed approver directory.
type ApproverRepository struct {
	mu        sync.RWMutex
	approvers []domain.Approver
}

// NewApproverRepository creates an approver repository over the given fixtures.
func NewApproverRepository(approvers []domain.Approver) *ApproverRepository {
	return &ApproverRepository{approvers: approvers}
}

// ListApprovers returns the whole directory in fixture order.
func (r *ApproverRepository) ListApprovers(_ context.Context) ([]domain.Approver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Approver, len(r.approvers))
	copy(out, r.approvers)
	return out, nil
}

// FindApproversByIDs resolves a set of approver IDs, collapsing duplicates.
func (r *ApproverRepository) FindApproversByIDs(_ context.Context, ids []string) ([]domain.Approver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[string]domain.Approver, len(r.approvers))
	for _, approver := range r.approvers {
		byID[approver.ID] = approver
	}

	seen := make(map[string]struct{}, len(ids))
	resolved := make([]domain.Approver, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		approver, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("approver %s: %w", id, apperrors.ErrNotFound)
		}
		resolved = append(resolved, approver)
	}
	return resolved, nil
}
