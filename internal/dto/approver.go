package dto

import "github.com/paydeck/bank_portal_app/internal/core/domain"

// TimestampLayout is the timestamp format used in batch responses.
const TimestampLayout = "2006-01-02T15:04:05Z07:00"

// ApproverResponse is one approver directory entry.
type ApproverResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// ToApproverResponse converts a domain.Approver to its DTO.
func ToApproverResponse(a *domain.Approver) ApproverResponse {
	return ApproverResponse{
		ID:     a.ID,
		Name:   a.Name,
		Role:   a.Role,
		Avatar: a.Avatar,
	}
}

// ToApproverResponses converts a slice of approvers.
func ToApproverResponses(approvers []domain.Approver) []ApproverResponse {
	responses := make([]ApproverResponse, len(approvers))
	for i := range approvers {
		responses[i] = ToApproverResponse(&approvers[i])
	}
	return responses
}
