package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// PayrollRepository holds the draft working set and the two batch
// collections. One mutex covers all three so the pending→history move is
// atomic: a batch ID is never observable in both collections or in neither.
type PayrollRepository struct {
	mu      sync.RWMutex
	drafts  []domain.PayrollTransaction
	pending []domain.Batch
	history []domain.Batch
}

// NewPayrollRepository creates an empty payroll repository.
func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{}
}

// --- Draft working set ---

// ListDrafts returns the working set in insertion order.
func (r *PayrollRepository) ListDrafts(_ context.Context) ([]domain.PayrollTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PayrollTransaction, len(r.drafts))
	copy(out, r.drafts)
	return out, nil
}

// FindDraftByID retrieves one draft transaction.
func (r *PayrollRepository) FindDraftByID(_ context.Context, id string) (*domain.PayrollTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.drafts {
		if r.drafts[i].ID == id {
			draft := r.drafts[i]
			return &draft, nil
		}
	}
	return nil, fmt.Errorf("draft transaction %s: %w", id, apperrors.ErrNotFound)
}

// SaveDrafts appends transactions to the working set.
func (r *PayrollRepository) SaveDrafts(_ context.Context, txns []domain.PayrollTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts = append(r.drafts, txns...)
	return nil
}

// UpdateDraft replaces the draft with the same ID.
func (r *PayrollRepository) UpdateDraft(_ context.Context, txn domain.PayrollTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drafts {
		if r.drafts[i].ID == txn.ID {
			r.drafts[i] = txn
			return nil
		}
	}
	return fmt.Errorf("draft transaction %s: %w", txn.ID, apperrors.ErrNotFound)
}

// DeleteDraft removes one draft from the working set.
func (r *PayrollRepository) DeleteDraft(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drafts {
		if r.drafts[i].ID == id {
			r.drafts = append(r.drafts[:i], r.drafts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("draft transaction %s: %w", id, apperrors.ErrNotFound)
}

// ClearDrafts empties the working set.
func (r *PayrollRepository) ClearDrafts(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.drafts = nil
	return nil
}

// --- Batch collections ---

// FindPendingBatchByID retrieves a batch from the pending collection.
func (r *PayrollRepository) FindPendingBatchByID(_ context.Context, batchID string) (*domain.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.pending {
		if r.pending[i].BatchID == batchID {
			batch := r.pending[i]
			return &batch, nil
		}
	}
	return nil, fmt.Errorf("pending batch %s: %w", batchID, apperrors.ErrNotFound)
}

// ListPendingBatches returns pending batches, oldest first.
func (r *PayrollRepository) ListPendingBatches(_ context.Context) ([]domain.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Batch, len(r.pending))
	copy(out, r.pending)
	return out, nil
}

// ListHistoryBatches returns approved batches, newest approval first.
func (r *PayrollRepository) ListHistoryBatches(_ context.Context) ([]domain.Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Batch, len(r.history))
	for i, batch := range r.history {
		out[len(r.history)-1-i] = batch
	}
	return out, nil
}

// SavePendingBatch adds a freshly created batch to the pending collection.
func (r *PayrollRepository) SavePendingBatch(_ context.Context, batch domain.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pending {
		if r.pending[i].BatchID == batch.BatchID {
			return fmt.Errorf("batch %s: %w", batch.BatchID, apperrors.ErrDuplicate)
		}
	}
	for i := range r.history {
		if r.history[i].BatchID == batch.BatchID {
			return fmt.Errorf("batch %s: %w", batch.BatchID, apperrors.ErrDuplicate)
		}
	}
	r.pending = append(r.pending, batch)
	return nil
}

// MoveBatchToHistory removes the batch from pending and appends the given
// record to history under one lock.
func (r *PayrollRepository) MoveBatchToHistory(_ context.Context, batch domain.Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pending {
		if r.pending[i].BatchID == batch.BatchID {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			r.history = append(r.history, batch)
			return nil
		}
	}
	return fmt.Errorf("pending batch %s: %w", batch.BatchID, apperrors.ErrNotFound)
}
