package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// StatusCheckModel represents the status_checks table in the store.
type StatusCheckModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientName string    `gorm:"type:varchar(255);not null"`
	Timestamp  time.Time `gorm:"not null"`
}

// TableName returns the table name for the StatusCheckModel.
func (StatusCheckModel) TableName() string {
	return "status_checks"
}

// ToEntity converts a StatusCheckModel to a domain StatusCheck entity.
func (m *StatusCheckModel) ToEntity() *entity.StatusCheck {
	return &entity.StatusCheck{
		ID:         m.ID,
		ClientName: m.ClientName,
		Timestamp:  m.Timestamp,
	}
}

// StatusCheckFromEntity creates a StatusCheckModel from a domain StatusCheck entity.
func StatusCheckFromEntity(check *entity.StatusCheck) *StatusCheckModel {
	return &StatusCheckModel{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}
