package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the persistence layer.
type TransactionType string

// Transaction represents a row in the transactions table. Rows are append-only.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	BusinessID      string          `json:"businessID"`    // FK -> businesses.business_id (Not Null)
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"` // Positive value
	TransactionType TransactionType `json:"transactionType"`
	DebitAccountID  string          `json:"debitAccountID"`  // FK -> accounts.account_id
	CreditAccountID string          `json:"creditAccountID"` // FK -> accounts.account_id
	DocumentID      *string         `json:"documentID"`      // Nullable FK -> documents.document_id
	PartyID         *string         `json:"partyID"`         // Nullable party reference
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
