package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// CreateCashbookEntryRequest appends a dated entry to the cash ledger.
type CreateCashbookEntryRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Type        string          `json:"type" binding:"required,oneof=CASH_IN CASH_OUT"`
	Date        time.Time       `json:"date" binding:"required"`
}

// UpdateCashbookEntryRequest edits an entry; nil fields are left unchanged.
// Changing amount or type triggers the running-balance cascade.
type UpdateCashbookEntryRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=CASH_IN CASH_OUT"`
}

// CashbookEntryResponse is the API shape of a cashbook entry.
type CashbookEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
	Balance     decimal.Decimal `json:"balance"`
}

// ListCashbookEntriesParams holds filters for listing entries.
type ListCashbookEntriesParams struct {
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// ListCashbookEntriesResponse is a page of entries plus the next-page token.
type ListCashbookEntriesResponse struct {
	Entries   []CashbookEntryResponse `json:"entries"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToCashbookEntryResponse converts a domain CashbookEntry to its API shape.
func ToCashbookEntryResponse(e *domain.CashbookEntry) CashbookEntryResponse {
	return CashbookEntryResponse{
		EntryID:     e.EntryID,
		Description: e.Description,
		Amount:      e.Amount,
		Type:        string(e.Type),
		Date:        e.EntryDate,
		Balance:     e.Balance,
	}
}

// ToCashbookEntryResponses converts a slice of domain CashbookEntries to API shapes.
func ToCashbookEntryResponses(entries []domain.CashbookEntry) []CashbookEntryResponse {
	responses := make([]CashbookEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToCashbookEntryResponse(&entries[i])
	}
	return responses
}
