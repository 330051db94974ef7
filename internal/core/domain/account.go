package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the role of an account in the chart of accounts.
type AccountType string

const (
	Cash               AccountType = "CASH"
	Bank               AccountType = "BANK"
	AccountsReceivable AccountType = "ACCOUNTS_RECEIVABLE"
	AccountsPayable    AccountType = "ACCOUNTS_PAYABLE"
	InventoryAsset     AccountType = "INVENTORY"
	Revenue            AccountType = "REVENUE"
	Expense            AccountType = "EXPENSE"
	Asset              AccountType = "ASSET"
	Liability          AccountType = "LIABILITY"
	Equity             AccountType = "EQUITY"
)

// Account represents a ledger account within a business.
// Balance is a materialized aggregate: the sum of postings where this account was
// the debit side minus postings where it was the credit side. Accounts that have
// been posted to are never hard-deleted, only deactivated.
type Account struct {
	AccountID       string          `json:"accountID"`       // Primary key (UUID)
	BusinessID      string          `json:"businessID"`      // FK -> businesses.business_id (NOT NULL)
	Name            string          `json:"name"`            // User-defined name
	AccountType     AccountType     `json:"accountType"`     // CASH, BANK, REVENUE, ...
	ParentAccountID string          `json:"parentAccountID"` // Nullable self-reference for hierarchy
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"` // Deactivation flag, not deletion
	Balance         decimal.Decimal `json:"balance"`  // Materialized balance
	AuditFields
}
