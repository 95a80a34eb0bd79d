package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateStatusCheckRequest represents the request body for a status check.
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// StatusCheckResponse represents a status check in API responses.
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToStatusCheckResponse converts a domain StatusCheck entity to a StatusCheckResponse DTO.
func ToStatusCheckResponse(check *entity.StatusCheck) StatusCheckResponse {
	return StatusCheckResponse{
		ID:         check.ID.String(),
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}

// ToStatusCheckListResponse converts status checks to a list of response DTOs.
func ToStatusCheckListResponse(checks []*entity.StatusCheck) []StatusCheckResponse {
	responses := make([]StatusCheckResponse, len(checks))
	for i, check := range checks {
		responses[i] = ToStatusCheckResponse(check)
	}
	return responses
}
