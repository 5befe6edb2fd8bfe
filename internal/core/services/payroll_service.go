package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/middleware"
	"github.com/paydeck/bank_portal_app/internal/utils/approval"
	"github.com/paydeck/bank_portal_app/internal/utils/csvimport"
	"github.com/paydeck/bank_portal_app/internal/utils/pagination"
)

const defaultHistoryPageSize = 10

// payrollService drives the draft working set, the CSV bulk import, and the
// batch lifecycle.
type payrollService struct {
	payrollRepo  portsrepo.PayrollRepositoryFacade
	approverRepo portsrepo.ApproverReader
	now          func() time.Time
}

// PayrollServiceOption is a functional option for configuring the payroll service.
type PayrollServiceOption func(*payrollService)

// WithClock overrides the time source, used by tests to pin timestamps.
func WithClock(now func() time.Time) PayrollServiceOption {
	return func(s *payrollService) {
		s.now = now
	}
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, approverRepo portsrepo.ApproverReader, options ...PayrollServiceOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		payrollRepo:  payrollRepo,
		approverRepo: approverRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// --- Draft working set ---

func (s *payrollService) ListDrafts(ctx context.Context) ([]domain.PayrollTransaction, error) {
	drafts, err := s.payrollRepo.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft transactions: %w", err)
	}
	if drafts == nil {
		return []domain.PayrollTransaction{}, nil
	}
	return drafts, nil
}

func (s *payrollService) AddDraft(ctx context.Context, req dto.CreatePayrollTransactionRequest) (*domain.PayrollTransaction, error) {
	if err := validatePayrollAmount(req.Amount); err != nil {
		return nil, err
	}

	txn := domain.PayrollTransaction{
		ID:            uuid.NewString(),
		BankID:        req.BankID,
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Amount:        req.Amount,
		Remarks:       req.Remarks,
	}

	if err := s.payrollRepo.SaveDrafts(ctx, []domain.PayrollTransaction{txn}); err != nil {
		return nil, fmt.Errorf("failed to save draft transaction: %w", err)
	}
	return &txn, nil
}

func (s *payrollService) UpdateDraft(ctx context.Context, id string, req dto.CreatePayrollTransactionRequest) (*domain.PayrollTransaction, error) {
	if err := validatePayrollAmount(req.Amount); err != nil {
		return nil, err
	}

	existing, err := s.payrollRepo.FindDraftByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find draft %s: %w", id, err)
	}

	updated := domain.PayrollTransaction{
		ID:            existing.ID,
		BankID:        req.BankID,
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Amount:        req.Amount,
		Remarks:       req.Remarks,
	}

	if err := s.payrollRepo.UpdateDraft(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update draft %s: %w", id, err)
	}
	return &updated, nil
}

func (s *payrollService) DeleteDraft(ctx context.Context, id string) error {
	if err := s.payrollRepo.DeleteDraft(ctx, id); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", id, err)
	}
	return nil
}

func validatePayrollAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// --- CSV bulk import ---

func (s *payrollService) PreviewImport(ctx context.Context, r io.Reader) ([]csvimport.Row, error) {
	rows, err := csvimport.Parse(r)
	if err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Previewed payroll upload",
		slog.Int("rows", len(rows)),
		slog.Int("valid", len(csvimport.ValidRows(rows))),
	)
	return rows, nil
}

func (s *payrollService) CommitImport(ctx context.Context, r io.Reader) ([]domain.PayrollTransaction, int, error) {
	rows, err := csvimport.Parse(r)
	if err != nil {
		return nil, 0, err
	}

	valid := csvimport.ValidRows(rows)
	skipped := len(rows) - len(valid)

	txns := make([]domain.PayrollTransaction, len(valid))
	for i, row := range valid {
		txns[i] = domain.PayrollTransaction{
			ID:            uuid.NewString(),
			BankID:        row.BankID,
			AccountNumber: row.AccountNumber,
			Name:          row.Name,
			Amount:        row.Amount,
			Remarks:       row.Remarks,
		}
	}

	if len(txns) > 0 {
		if err := s.payrollRepo.SaveDrafts(ctx, txns); err != nil {
			return nil, 0, fmt.Errorf("failed to save imported transactions: %w", err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Committed payroll upload",
		slog.Int("added", len(txns)),
		slog.Int("skipped", skipped),
	)
	return txns, skipped, nil
}

// --- Batch lifecycle ---

func (s *payrollService) CreateBatch(ctx context.Context, approverIDs []string) (*domain.Batch, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	drafts, err := s.payrollRepo.ListDrafts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft transactions: %w", err)
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: batch has no transactions", apperrors.ErrValidation)
	}

	// Approver set semantics: duplicates collapse.
	seen := make(map[string]struct{}, len(approverIDs))
	uniqueIDs := make([]string, 0, len(approverIDs))
	for _, id := range approverIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		uniqueIDs = append(uniqueIDs, id)
	}

	approvers, err := s.approverRepo.FindApproversByIDs(ctx, uniqueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approvers: %w", err)
	}

	total := decimal.Zero
	for _, txn := range drafts {
		total = total.Add(txn.Amount)
	}

	required := approval.RequiredApprovers(total)
	if len(approvers) < required {
		return nil, fmt.Errorf("%w: batch of %s requires %d approvers, got %d",
			apperrors.ErrValidation, total.String(), required, len(approvers))
	}

	snapshot := make([]domain.PayrollTransaction, len(drafts))
	copy(snapshot, drafts)

	batch := domain.Batch{
		BatchID:           uuid.NewString(),
		Transactions:      snapshot,
		TotalAmount:       total,
		Approvers:         approvers,
		Status:            domain.BatchPending,
		CreatedAt:         s.now(),
		RequiredApprovals: required,
	}

	if err := s.payrollRepo.SavePendingBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}
	if err := s.payrollRepo.ClearDrafts(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear draft transactions after batch %s: %w", batch.BatchID, err)
	}

	logger.Info("Created payroll batch",
		slog.String("batch_id", batch.BatchID),
		slog.String("total_amount", total.String()),
		slog.Int("required_approvals", required),
		slog.Int("transactions", len(snapshot)),
	)
	return &batch, nil
}

func (s *payrollService) ApproveBatch(ctx context.Context, batchID string) (*domain.Batch, error) {
	batch, err := s.payrollRepo.FindPendingBatchByID(ctx, batchID)
	if err != nil {
		if inHistory, histErr := s.batchInHistory(ctx, batchID); histErr == nil && inHistory {
			return nil, fmt.Errorf("%w: batch %s is already approved", apperrors.ErrInvalidState, batchID)
		}
		return nil, fmt.Errorf("failed to find pending batch %s: %w", batchID, err)
	}
	if batch.Status != domain.BatchPending {
		return nil, fmt.Errorf("%w: batch %s is %s, expected pending", apperrors.ErrInvalidState, batchID, batch.Status)
	}

	approvedAt := s.now()
	approved := *batch
	approved.Status = domain.BatchApproved
	approved.ApprovedAt = &approvedAt

	// Single atomic move: the repository removes the pending record and adds
	// the approved one under one lock.
	if err := s.payrollRepo.MoveBatchToHistory(ctx, approved); err != nil {
		return nil, fmt.Errorf("failed to move batch %s to history: %w", batchID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Approved payroll batch",
		slog.String("batch_id", batchID),
	)
	return &approved, nil
}

func (s *payrollService) batchInHistory(ctx context.Context, batchID string) (bool, error) {
	history, err := s.payrollRepo.ListHistoryBatches(ctx)
	if err != nil {
		return false, err
	}
	for _, b := range history {
		if b.BatchID == batchID {
			return true, nil
		}
	}
	return false, nil
}

func (s *payrollService) ListPendingBatches(ctx context.Context) ([]domain.Batch, error) {
	batches, err := s.payrollRepo.ListPendingBatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending batches: %w", err)
	}
	if batches == nil {
		return []domain.Batch{}, nil
	}
	return batches, nil
}

func (s *payrollService) ListHistory(ctx context.Context, pageSize, page int) ([]domain.Batch, int, error) {
	history, err := s.payrollRepo.ListHistoryBatches(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list batch history: %w", err)
	}

	if pageSize <= 0 {
		pageSize = defaultHistoryPageSize
	}
	if page <= 0 {
		page = 1
	}

	totalPages := pagination.TotalPages(len(history), pageSize)
	return pagination.Slice(history, pageSize, page), totalPages, nil
}
