package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// PayrollRowRepository holds the row-level approval queue.
type PayrollRowRepository struct {
	mu   sync.RWMutex
	rows []domain.PayrollRow
}

// NewPayrollRowRepository creates a queue repository over the given fixtures.
func NewPayrollRowRepository(rows []domain.PayrollRow) *PayrollRowRepository {
	return &PayrollRowRepository{rows: rows}
}

// ListRows returns the queue in fixture order.
func (r *PayrollRowRepository) ListRows(_ context.Context) ([]domain.PayrollRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PayrollRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// FindRowByID retrieves one queue row.
func (r *PayrollRowRepository) FindRowByID(_ context.Context, rowID string) (*domain.PayrollRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.rows {
		if r.rows[i].RowID == rowID {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, fmt.Errorf("approval queue row %s: %w", rowID, apperrors.ErrNotFound)
}

// UpdateRow replaces the row with the same ID.
func (r *PayrollRowRepository) UpdateRow(_ context.Context, row domain.PayrollRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.rows {
		if r.rows[i].RowID == row.RowID {
			r.rows[i] = row
			return nil
		}
	}
	return fmt.Errorf("approval queue row %s: %w", row.RowID, apperrors.ErrNotFound)
}
