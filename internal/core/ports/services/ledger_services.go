package services

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

// LedgerSvcFacade exposes the ledger store: the chart of accounts and
// double-entry postings.
type LedgerSvcFacade interface {
	// PostTransaction validates and atomically applies one double-entry posting.
	PostTransaction(ctx context.Context, businessID string, req dto.PostTransactionRequest, userID string) (*domain.Transaction, error)

	// GetAccountBalance returns the cached balance plus debit/credit totals
	// recomputed from history for reconciliation.
	GetAccountBalance(ctx context.Context, businessID, accountID string) (*dto.AccountBalanceResponse, error)

	// CreateAccount adds an account to the business's chart.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves one account.
	GetAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts (trial-balance listing).
	ListAccounts(ctx context.Context, businessID string, includeInactive bool) ([]domain.Account, error)

	// DeactivateAccount soft-deletes an account; history is preserved.
	DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error

	// ListTransactions retrieves committed postings with cursor pagination.
	ListTransactions(ctx context.Context, businessID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
