package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier,
	// scoped to a business.
	FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountByType retrieves the first active account of the given type for
	// a business (used to resolve default posting targets like Cash or Bank).
	FindAccountByType(ctx context.Context, businessID string, accountType domain.AccountType) (*domain.Account, error)

	// ListAccounts retrieves all active accounts for a business ordered by name,
	// the trial-balance style listing.
	ListAccounts(ctx context.Context, businessID string, includeInactive bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccounts persists a batch of new accounts atomically (chart bootstrap).
	SaveAccounts(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error

	// DeactivateAccount marks an account as inactive. Accounts with postings are
	// never hard-deleted.
	DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error
}

// AccountTransactionSupport defines operations used inside an atomic posting unit
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts in deterministic id order and
	// locks them for update within the given transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceChangesInTx applies signed balance deltas to accounts within
	// the given transaction. Locks must already be held.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
