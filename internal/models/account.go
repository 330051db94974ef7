package models

import "github.com/shopspring/decimal"

// AccountType mirrors domain.AccountType at the persistence layer.
type AccountType string

// Account represents a row in the accounts table.
type Account struct {
	AccountID       string          `json:"accountID"`  // Primary Key (UUID)
	BusinessID      string          `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID"` // Empty when NULL
	Description     string          `json:"description"`
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"`
	AuditFields
}
