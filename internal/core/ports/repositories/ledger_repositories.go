package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// AccountTotals carries the recomputed debit/credit sums for one account,
// returned next to the materialized balance for reconciliation.
type AccountTotals struct {
	Balance     decimal.Decimal
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
}

// TransactionReader defines read operations for ledger postings
type TransactionReader interface {
	// FindTransactionByID retrieves a single posting scoped to a business.
	FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a paginated list of postings, optionally
	// filtered to one account (matching either the debit or credit side), using
	// token-based pagination. Returns the postings, a next-page token, and an error.
	ListTransactions(ctx context.Context, businessID string, accountID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumAccountTotals recomputes debit and credit totals for an account from its
	// full posting history, alongside the cached balance.
	SumAccountTotals(ctx context.Context, businessID, accountID string) (*AccountTotals, error)

	// FindTransactionsByDocumentID retrieves every posting that references a
	// document, oldest first. Used by the reversal engine to mirror the
	// original posting.
	FindTransactionsByDocumentID(ctx context.Context, businessID, documentID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger postings
type TransactionWriter interface {
	// SaveTransaction atomically inserts the posting and applies its balance
	// effect: debit account +amount, credit account -amount. Either everything
	// commits or nothing does.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactionInTx performs the same insert-and-apply inside an atomic
	// unit owned by the caller (document posting, payment, reversal).
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// LedgerRepositoryFacade combines ledger posting interfaces
type LedgerRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
