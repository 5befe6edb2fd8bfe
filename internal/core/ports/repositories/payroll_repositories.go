package repositories

import (
	"context"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
)

// DraftReader defines read operations over the payroll draft working set,
// the editable transactions of the batch being assembled.
type DraftReader interface {
	// ListDrafts returns the current working set in insertion order.
	ListDrafts(ctx context.Context) ([]domain.PayrollTransaction, error)

	// FindDraftByID retrieves one draft transaction.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	FindDraftByID(ctx context.Context, id string) (*domain.PayrollTransaction, error)
}

// DraftWriter defines write operations over the draft working set. Drafts are
// only mutable here; once snapshotted into a batch they are immutable.
type DraftWriter interface {
	// SaveDrafts appends transactions to the working set.
	SaveDrafts(ctx context.Context, txns []domain.PayrollTransaction) error

	// UpdateDraft replaces the draft with the same ID.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	UpdateDraft(ctx context.Context, txn domain.PayrollTransaction) error

	// DeleteDraft removes one draft from the working set.
	// Returns apperrors.ErrNotFound when the ID is unknown.
	DeleteDraft(ctx context.Context, id string) error

	// ClearDrafts empties the working set after its transactions have been
	// snapshotted into a batch.
	ClearDrafts(ctx context.Context) error
}

// BatchReader defines read operations over the pending and history batch
// collections. A batch ID lives in exactly one of the two.
type BatchReader interface {
	// FindPendingBatchByID retrieves a batch from the pending collection.
	// Returns apperrors.ErrNotFound when no pending batch has the ID.
	FindPendingBatchByID(ctx context.Context, batchID string) (*domain.Batch, error)

	// ListPendingBatches returns pending batches, oldest first.
	ListPendingBatches(ctx context.Context) ([]domain.Batch, error)

	// ListHistoryBatches returns approved batches, newest approval first.
	ListHistoryBatches(ctx context.Context) ([]domain.Batch, error)
}

// BatchWriter defines write operations over the batch collections.
type BatchWriter interface {
	// SavePendingBatch adds a freshly created batch to the pending collection.
	// Returns apperrors.ErrDuplicate if the ID is already present.
	SavePendingBatch(ctx context.Context, batch domain.Batch) error

	// MoveBatchToHistory removes the batch from the pending collection and
	// adds the given (approved) record to history as one atomic operation;
	// at no observable instant is the ID in both collections or in neither.
	// Returns apperrors.ErrNotFound when the ID is not pending.
	MoveBatchToHistory(ctx context.Context, batch domain.Batch) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces.
type PayrollRepositoryFacade interface {
	DraftReader
	DraftWriter
	BatchReader
	BatchWriter
}
