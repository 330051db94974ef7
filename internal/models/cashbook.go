package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashbookEntryType mirrors domain.CashbookEntryType at the persistence layer.
type CashbookEntryType string

// CashbookEntry represents a row in the cashbook_entries table.
type CashbookEntry struct {
	EntryID     string            `json:"entryID"`    // Primary Key (UUID)
	BusinessID  string            `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        CashbookEntryType `json:"type"`
	EntryDate   time.Time         `json:"entryDate"`
	Balance     decimal.Decimal   `json:"balance"`
	IsDeleted   bool              `json:"isDeleted"` // Tombstone, kept for history
	AuditFields
}
