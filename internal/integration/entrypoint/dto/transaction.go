package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction creation and
// update. Update is a full-record replace, so both verbs share the shape.
type TransactionRequest struct {
	Amount          *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID      string           `json:"category_id" binding:"required,uuid"`
	TransactionType string           `json:"transaction_type" binding:"required,oneof=income expense"`
	Description     string           `json:"description,omitempty"`
	Currency        string           `json:"currency,omitempty"`
	TransactionDate string           `json:"transaction_date" binding:"required,datetime=2006-01-02"`
	IsVoiceInput    bool             `json:"is_voice_input,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	TransactionType string          `json:"transaction_type"`
	Description     string          `json:"description"`
	Currency        string          `json:"currency"`
	TransactionDate string          `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	IsVoiceInput    bool            `json:"is_voice_input"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID.String(),
		Amount:          t.Amount,
		CategoryID:      t.CategoryID.String(),
		CategoryName:    t.CategoryName,
		TransactionType: string(t.Type),
		Description:     t.Description,
		Currency:        t.Currency,
		TransactionDate: t.TransactionDate.Format(entity.TransactionDateLayout),
		CreatedAt:       t.CreatedAt,
		IsVoiceInput:    t.IsVoiceInput,
	}
}

// ToTransactionListResponse converts transactions to a list of response DTOs.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return responses
}
