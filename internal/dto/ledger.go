package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// PostTransactionRequest posts a manual double-entry transaction.
type PostTransactionRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	TransactionType string          `json:"transactionType" binding:"required,oneof=SALE PURCHASE EXPENSE PAYMENT RECEIPT REFUND TRANSFER"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Date            *time.Time      `json:"date"`
	DocumentID      *string         `json:"documentID"`
	PartyID         *string         `json:"partyID"`
}

// TransactionResponse is the API shape of a ledger posting.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	DocumentID      *string         `json:"documentID,omitempty"`
	PartyID         *string         `json:"partyID,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
}

// ListTransactionsParams holds filters for listing postings.
type ListTransactionsParams struct {
	AccountID *string
	Limit     int
	NextToken *string
}

// ListTransactionsResponse is a page of postings plus the next-page token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its API shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		Description:     t.Description,
		Amount:          t.Amount,
		TransactionType: string(t.TransactionType),
		DebitAccountID:  t.DebitAccountID,
		CreditAccountID: t.CreditAccountID,
		DocumentID:      t.DocumentID,
		PartyID:         t.PartyID,
		TransactionDate: t.TransactionDate,
	}
}

// ToTransactionResponses converts a slice of domain Transactions to API shapes.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
