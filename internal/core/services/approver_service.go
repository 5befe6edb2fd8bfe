package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portsrepo "github.com/paydeck/bank_portal_app/internal/core/ports/repositories"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
)

// approverService serves the fixed approver directory behind the batch
// submission picker.
type approverService struct {
	approverRepo portsrepo.ApproverRepositoryFacade
}

// NewApproverService creates a new approver directory service.
func NewApproverService(approverRepo portsrepo.ApproverRepositoryFacade) portssvc.ApproverSvcFacade {
	return &approverService{approverRepo: approverRepo}
}

var _ portssvc.ApproverSvcFacade = (*approverService)(nil)

func (s *approverService) SearchApprovers(ctx context.Context, search string, excludeIDs []string) ([]domain.Approver, error) {
	approvers, err := s.approverRepo.ListApprovers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approvers: %w", err)
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	matched := []domain.Approver{}
	for _, approver := range approvers {
		if _, skip := excluded[approver.ID]; skip {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(approver.Name), needle) {
			continue
		}
		matched = append(matched, approver)
	}
	return matched, nil
}
