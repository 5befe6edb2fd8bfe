package services

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// ApproverSvcFacade exposes the fixed approver directory used by the batch
// submission screen's picker.
type ApproverSvcFacade interface {
	// SearchApprovers returns directory entries whose name contains search
	// (case-insensitive; empty matches all), excluding the given IDs.
	SearchApprovers(ctx context.Context, search string, excludeIDs []string) ([]domain.Approver, error)
}
