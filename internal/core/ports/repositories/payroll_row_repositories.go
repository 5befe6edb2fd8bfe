package repositories

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// PayrollRowReader defines read operations over the row-level approval queue.
type PayrollRowReader interface {
	// ListRows returns the queue in fixture order.
	ListRows(ctx context.Context) ([]domain.PayrollRow, error)

	// FindRowByID retrieves one queue row.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	FindRowByID(ctx context.Context, rowID string) (*domain.PayrollRow, error)
}

// PayrollRowWriter defines write operations over the approval queue.
type PayrollRowWriter interface {
	// UpdateRow replaces the row with the same ID.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	UpdateRow(ctx context.Context, row domain.PayrollRow) error
}

// PayrollRowRepositoryFacade combines all approval queue repository interfaces.
type PayrollRowRepositoryFacade interface {
	PayrollRowReader
	PayrollRowWriter
}
