package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a client-reported liveness ping kept for diagnostics.
type StatusCheck struct {
	ID         uuid.UUID
	ClientName string
	Timestamp  time.Time
}

// NewStatusCheck creates a status check stamped with the current time.
func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.New(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
