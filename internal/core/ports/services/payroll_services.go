package services

import (
	"context"
	"io"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/utils/csvimport"
)

// PayrollDraftSvc manages the editable working set of payroll transactions
// that the next batch will snapshot.
type PayrollDraftSvc interface {
	// ListDrafts returns the working set in insertion order.
	ListDrafts(ctx context.Context) ([]domain.PayrollTransaction, error)

	// AddDraft validates and appends a single transaction.
	AddDraft(ctx context.Context, req dto.CreatePayrollTransactionRequest) (*domain.PayrollTransaction, error)

	// UpdateDraft edits a transaction still in the working set.
	UpdateDraft(ctx context.Context, id string, req dto.CreatePayrollTransactionRequest) (*domain.PayrollTransaction, error)

	// DeleteDraft removes a transaction from the working set.
	DeleteDraft(ctx context.Context, id string) error
}

// PayrollImportSvc handles CSV bulk upload of payroll transactions.
type PayrollImportSvc interface {
	// PreviewImport parses the upload and returns every row, flagged valid
	// or invalid. Nothing is committed.
	PreviewImport(ctx context.Context, r io.Reader) ([]csvimport.Row, error)

	// CommitImport parses the upload and appends only its valid rows to the
	// draft working set. It returns the added transactions and how many
	// invalid rows were skipped.
	CommitImport(ctx context.Context, r io.Reader) ([]domain.PayrollTransaction, int, error)
}

// PayrollBatchSvc drives the batch lifecycle: pending on creation, approved
// (terminal) after the single all-or-nothing approval action.
type PayrollBatchSvc interface {
	// CreateBatch snapshots the current draft working set into a pending
	// batch with the given approver set, clearing the working set.
	CreateBatch(ctx context.Context, approverIDs []string) (*domain.Batch, error)

	// ApproveBatch transitions a pending batch to approved and moves it to
	// the history collection atomically.
	ApproveBatch(ctx context.Context, batchID string) (*domain.Batch, error)

	// ListPendingBatches returns batches awaiting approval, oldest first.
	ListPendingBatches(ctx context.Context) ([]domain.Batch, error)

	// ListHistory returns one page of approved batches, newest first, plus
	// the total page count.
	ListHistory(ctx context.Context, pageSize, page int) ([]domain.Batch, int, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces.
type PayrollSvcFacade interface {
	PayrollDraftSvc
	PayrollImportSvc
	PayrollBatchSvc
}
