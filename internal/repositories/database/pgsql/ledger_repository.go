package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/pagination"
)

const transactionColumns = `transaction_id, business_id, description, amount, transaction_type, debit_account_id, credit_account_id, document_id, party_id, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
}

// newPgxLedgerRepository creates a new repository for ledger postings. It
// depends on the account repository for lock-and-apply balance updates.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.BusinessID,
		&m.Description,
		&m.Amount,
		&m.TransactionType,
		&m.DebitAccountID,
		&m.CreditAccountID,
		&m.DocumentID,
		&m.PartyID,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction atomically inserts the posting and applies its balance
// effect in its own transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.SaveTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveTransactionInTx inserts the posting and applies its balance effect
// inside an atomic unit owned by the caller. It locks both accounts, inserts
// the row, then moves the balances: debit +amount, credit -amount.
func (r *PgxLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, []string{txn.DebitAccountID, txn.CreditAccountID})
	if err != nil {
		return fmt.Errorf("failed to lock posting accounts: %w", err)
	}
	for _, accountID := range []string{txn.DebitAccountID, txn.CreditAccountID} {
		if _, ok := lockedAccounts[accountID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
	}

	modelTxn := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.BusinessID,
		modelTxn.Description,
		modelTxn.Amount,
		modelTxn.TransactionType,
		modelTxn.DebitAccountID,
		modelTxn.CreditAccountID,
		modelTxn.DocumentID,
		modelTxn.PartyID,
		modelTxn.TransactionDate,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}

	changes := map[string]decimal.Decimal{
		txn.DebitAccountID:  txn.Amount,
		txn.CreditAccountID: txn.Amount.Neg(),
	}
	if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, changes, txn.CreatedBy, txn.CreatedAt); err != nil {
		return fmt.Errorf("failed to apply balance changes for transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single posting scoped to a business.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND business_id = $2;
	`
	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// FindTransactionsByDocumentID retrieves every posting referencing a document,
// oldest first.
func (r *PgxLedgerRepository) FindTransactionsByDocumentID(ctx context.Context, businessID, documentID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1 AND document_id = $2
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for document %s: %w", documentID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for document %s: %w", documentID, err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for document %s: %w", documentID, err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// ListTransactions retrieves a paginated list of postings using token-based
// pagination, optionally filtered to postings touching one account.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, businessID string, accountID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE business_id = $1
	`
	args := []interface{}{businessID}

	if accountID != nil {
		baseQuery += ` AND (debit_account_id = $2 OR credit_account_id = $2)`
		args = append(args, *accountID)
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		baseQuery += ` AND (transaction_date, created_at) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query := baseQuery + ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(modelTxns) > limit {
		last := modelTxns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		newNextToken = &token
		modelTxns = modelTxns[:limit]
	}

	return mapping.ToDomainTransactionSlice(modelTxns), newNextToken, nil
}

// SumAccountTotals recomputes debit and credit totals for an account from its
// full posting history, next to the cached balance.
func (r *PgxLedgerRepository) SumAccountTotals(ctx context.Context, businessID, accountID string) (*portsrepo.AccountTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE debit_account_id = $2), 0) AS debit_total,
			COALESCE(SUM(amount) FILTER (WHERE credit_account_id = $2), 0) AS credit_total
		FROM transactions
		WHERE business_id = $1 AND (debit_account_id = $2 OR credit_account_id = $2);
	`
	totals := &portsrepo.AccountTotals{}
	if err := r.Pool.QueryRow(ctx, query, businessID, accountID).Scan(&totals.DebitTotal, &totals.CreditTotal); err != nil {
		return nil, fmt.Errorf("failed to sum totals for account %s: %w", accountID, err)
	}
	totals.Balance = totals.DebitTotal.Sub(totals.CreditTotal)
	return totals, nil
}
