package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the store.
// TransactionDate is kept as an ISO-8601 string column so range filters
// compare lexically, matching the date-window queries the analytics layer runs.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryName    string          `gorm:"type:varchar(100);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Description     string          `gorm:"type:varchar(255)"`
	Currency        string          `gorm:"type:varchar(10)"`
	TransactionDate string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	IsVoiceInput    bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Defaulting rules: empty currency falls back to the home currency, an
// unparseable date yields the zero time rather than an error.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	currency := m.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	transactionDate, err := time.ParseInLocation(entity.TransactionDateLayout, m.TransactionDate, time.UTC)
	if err != nil {
		transactionDate = time.Time{}
	}

	return &entity.Transaction{
		ID:              m.ID,
		Amount:          m.Amount,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		Type:            entity.TransactionType(m.Type),
		Description:     m.Description,
		Currency:        currency,
		TransactionDate: transactionDate,
		CreatedAt:       m.CreatedAt,
		IsVoiceInput:    m.IsVoiceInput,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		Amount:          transaction.Amount,
		CategoryID:      transaction.CategoryID,
		CategoryName:    transaction.CategoryName,
		Type:            string(transaction.Type),
		Description:     transaction.Description,
		Currency:        transaction.Currency,
		TransactionDate: transaction.TransactionDate.Format(entity.TransactionDateLayout),
		CreatedAt:       transaction.CreatedAt,
		IsVoiceInput:    transaction.IsVoiceInput,
	}
}
