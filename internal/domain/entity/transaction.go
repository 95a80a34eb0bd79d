package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DefaultCurrency is the home currency code stamped on transactions created
// without an explicit currency.
const DefaultCurrency = "INR"

// TransactionDateLayout is the wire and storage format for transaction dates.
// Dates are persisted as ISO-8601 strings so lexical range comparisons hold.
const TransactionDateLayout = "2006-01-02"

// Transaction represents a single income or expense record. CategoryName is a
// denormalized copy taken from the category at write time; it is rewritten
// only by the category delete cascade, never by renames.
type Transaction struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	CategoryID      uuid.UUID
	CategoryName    string
	Type            TransactionType
	Description     string
	Currency        string
	TransactionDate time.Time
	CreatedAt       time.Time
	IsVoiceInput    bool
}

// NewTransaction assembles a transaction record with a fresh identifier and
// creation timestamp. The caller is responsible for having validated the
// category reference and stamped CategoryName from it.
func NewTransaction(
	amount decimal.Decimal,
	categoryID uuid.UUID,
	categoryName string,
	transactionType TransactionType,
	description string,
	currency string,
	transactionDate time.Time,
	isVoiceInput bool,
) *Transaction {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Transaction{
		ID:              uuid.New(),
		Amount:          amount,
		CategoryID:      categoryID,
		CategoryName:    categoryName,
		Type:            transactionType,
		Description:     description,
		Currency:        currency,
		TransactionDate: transactionDate,
		CreatedAt:       time.Now().UTC(),
		IsVoiceInput:    isVoiceInput,
	}
}
