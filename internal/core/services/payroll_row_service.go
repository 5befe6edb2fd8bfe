package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/middleware"
)

// payrollRowService manages the standalone row-level approval queue. Terminal
// rows swallow further actions as no-ops rather than erroring, matching the
// queue screen's behavior.
type payrollRowService struct {
	rowRepo portsrepo.PayrollRowRepositoryFacade
}

// NewPayrollRowService creates a new approval queue service.
func NewPayrollRowService(rowRepo portsrepo.PayrollRowRepositoryFacade) portssvc.PayrollRowSvcFacade {
	return &payrollRowService{rowRepo: rowRepo}
}

var _ portssvc.PayrollRowSvcFacade = (*payrollRowService)(nil)

func (s *payrollRowService) ListRows(ctx context.Context) ([]domain.PayrollRow, error) {
	rows, err := s.rowRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval queue: %w", err)
	}
	if rows == nil {
		return []domain.PayrollRow{}, nil
	}
	return rows, nil
}

func (s *payrollRowService) ApproveRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error) {
	return s.act(ctx, rowID, "approve", (*domain.PayrollRow).Approve)
}

func (s *payrollRowService) RejectRow(ctx context.Context, rowID string) (*domain.PayrollRow, bool, error) {
	return s.act(ctx, rowID, "reject", (*domain.PayrollRow).Reject)
}

func (s *payrollRowService) act(ctx context.Context, rowID, action string, transition func(*domain.PayrollRow) bool) (*domain.PayrollRow, bool, error) {
	row, err := s.rowRepo.FindRowByID(ctx, rowID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find approval queue row %s: %w", rowID, err)
	}

	changed := transition(row)
	if changed {
		if err := s.rowRepo.UpdateRow(ctx, *row); err != nil {
			return nil, false, fmt.Errorf("failed to update approval queue row %s: %w", rowID, err)
		}
	}

	middleware.GetLoggerFromCtx(ctx).Info("Approval queue action",
		slog.String("row_id", rowID),
		slog.String("action", action),
		slog.Bool("changed", changed),
		slog.String("status", string(row.Status)),
		slog.Int("approvals_left", row.ApprovalsLeft),
	)
	return row, changed, nil
}
