package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashbookEntryType marks the direction of a cashbook entry.
type CashbookEntryType string

const (
	CashIn  CashbookEntryType = "CASH_IN"
	CashOut CashbookEntryType = "CASH_OUT"
)

// CashbookEntry is one row of the time-ordered cash ledger. Balance is the
// running total as of this entry in date order: balance(e_i) = balance(e_i-1) +
// signed(amount(e_i)). Entries are mutable, so any change to an entry's amount,
// type or date invalidates the balance of every later-dated entry and forces a
// recalculation cascade.
type CashbookEntry struct {
	EntryID     string            `json:"entryID"` // Primary key (UUID)
	BusinessID  string            `json:"businessID"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"` // Always positive
	Type        CashbookEntryType `json:"type"`
	EntryDate   time.Time         `json:"entryDate"`
	Balance     decimal.Decimal   `json:"balance"` // Running balance as of EntryDate
	AuditFields
}

// SignedAmount returns the entry amount signed by its direction.
func (e CashbookEntry) SignedAmount() decimal.Decimal {
	if e.Type == CashOut {
		return e.Amount.Neg()
	}
	return e.Amount
}
