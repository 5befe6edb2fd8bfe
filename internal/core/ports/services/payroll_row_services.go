package services

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// PayrollRowSvcFacade manages the standalone row-level approval queue. Unlike
// the batch flow, approve and reject on terminal rows are silent no-ops; the
// boolean result reports whether the call changed the row.
type PayrollRowSvcFacade interface {
	// ListRows returns the approval queue.
	ListRows(ctx context.Context) ([]domain.PayrollRow, error)

	// ApproveRow casts one approval on the row.
	ApproveRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error)

	// RejectRow rejects the row.
	RejectRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error)
}
