package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
)

const accountColumns = `account_id, business_id, name, account_type, parent_account_id, description, is_active, balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

// scanAccount scans one account row into a model.
func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	var parentID sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.BusinessID,
		&m.Name,
		&m.AccountType,
		&parentID,
		&m.Description,
		&m.IsActive,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Account{}, err
	}
	if parentID.Valid {
		m.ParentAccountID = parentID.String
	}
	return m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var parentID sql.NullString
	if modelAcc.ParentAccountID != "" {
		parentID = sql.NullString{String: modelAcc.ParentAccountID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.BusinessID,
		modelAcc.Name,
		modelAcc.AccountType,
		parentID,
		modelAcc.Description,
		modelAcc.IsActive,
		modelAcc.Balance,
		modelAcc.CreatedAt,
		modelAcc.CreatedBy,
		modelAcc.LastUpdatedAt,
		modelAcc.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, modelAcc.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// SaveAccounts inserts a batch of new accounts inside the caller's transaction.
// Used by the business bootstrap to seed the default chart.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, account := range accounts {
		modelAcc := mapping.ToModelAccount(account)
		var parentID sql.NullString
		if modelAcc.ParentAccountID != "" {
			parentID = sql.NullString{String: modelAcc.ParentAccountID, Valid: true}
		}
		batch.Queue(query,
			modelAcc.AccountID,
			modelAcc.BusinessID,
			modelAcc.Name,
			modelAcc.AccountType,
			parentID,
			modelAcc.Description,
			modelAcc.IsActive,
			modelAcc.Balance,
			modelAcc.CreatedAt,
			modelAcc.CreatedBy,
			modelAcc.LastUpdatedAt,
			modelAcc.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: duplicate account in batch insert", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to batch insert accounts: %w", err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID, scoped to a business.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1 AND business_id = $2;
	`
	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1) AND business_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		modelAcc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row during batch fetch: %w", err)
		}
		accountsMap[modelAcc.AccountID] = mapping.ToDomainAccount(modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows during batch fetch: %w", err)
	}

	// Missing IDs are simply absent from the map. The caller decides whether
	// that is an error.
	return accountsMap, nil
}

// FindAccountByType retrieves the first active account of the given type for a
// business. Used to resolve default posting targets like Cash or Bank.
func (r *PgxAccountRepository) FindAccountByType(ctx context.Context, businessID string, accountType domain.AccountType) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND account_type = $2 AND is_active = TRUE
		ORDER BY created_at
		LIMIT 1;
	`
	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, businessID, string(accountType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s account for business %s: %w", accountType, businessID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccounts retrieves accounts for a business ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, businessID string, includeInactive bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1 AND (is_active = TRUE OR $2)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		modelAcc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for business %s: %w", businessID, err)
		}
		modelAccounts = append(modelAccounts, modelAcc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for business %s: %w", businessID, rows.Err())
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// DeactivateAccount marks an account as inactive. Accounts are never deleted.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1 AND business_id = $2 AND is_active = TRUE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, businessID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate account %s: %w", accountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the account doesn't exist or it was already inactive.
		_, findErr := r.FindAccountByID(ctx, businessID, accountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check account status after deactivation attempt for %s: %w", accountID, findErr)
		}
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
	}
	return nil
}

// FindAccountsByIDsForUpdate retrieves multiple accounts by IDs and locks the
// rows for update in deterministic id order. Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	// Deterministic lock order avoids deadlocks between concurrent postings.
	sorted := make([]string, len(accountIDs))
	copy(sorted, accountIDs)
	sort.Strings(sorted)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		modelAcc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		accountsMap[modelAcc.AccountID] = mapping.ToDomainAccount(modelAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	if len(accountsMap) != len(sorted) {
		missing := []string{}
		for _, id := range sorted {
			if _, found := accountsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some accounts requested for update lock were not found", "missing_accounts", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}

	return accountsMap, nil
}

// ApplyBalanceChangesInTx applies signed balance deltas to accounts within a
// transaction. The rows must already be locked.
func (r *PgxAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(changes) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(changes))
	for accountID, delta := range changes {
		if !delta.IsZero() {
			batch.Queue(query, accountID, delta, now, userID)
			accountIDs = append(accountIDs, accountID)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, accountIDs[i])
			}
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
