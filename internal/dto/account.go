package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// CreateAccountRequest creates an account beyond the seeded default chart.
type CreateAccountRequest struct {
	Name            string  `json:"name" binding:"required"`
	AccountType     string  `json:"accountType" binding:"required,oneof=CASH BANK ACCOUNTS_RECEIVABLE ACCOUNTS_PAYABLE INVENTORY REVENUE EXPENSE ASSET LIABILITY EQUITY"`
	ParentAccountID *string `json:"parentAccountID"`
	Description     string  `json:"description"`
}

// AccountResponse is the API shape of an account.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	BusinessID      string          `json:"businessID"`
	Name            string          `json:"name"`
	AccountType     string          `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID,omitempty"`
	Description     string          `json:"description,omitempty"`
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AccountBalanceResponse pairs the materialized balance with totals recomputed
// from the posting history, so callers can detect drift.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	Balance     decimal.Decimal `json:"balance"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// ListAccountsResponse is the trial-balance style listing.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account to its API shape.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       a.AccountID,
		BusinessID:      a.BusinessID,
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		ParentAccountID: a.ParentAccountID,
		Description:     a.Description,
		IsActive:        a.IsActive,
		Balance:         a.Balance,
		CreatedAt:       a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain Accounts to API shapes.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
