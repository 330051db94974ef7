package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/accounting"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/pagination"
)

const cashbookColumns = `entry_id, business_id, description, amount, entry_type, entry_date, balance, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

type PgxCashbookRepository struct {
	BaseRepository
}

// newPgxCashbookRepository creates a new repository for the cashbook.
func newPgxCashbookRepository(pool *pgxpool.Pool) *PgxCashbookRepository {
	return &PgxCashbookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCashbookRepository implements portsrepo.CashbookRepositoryWithTx
var _ portsrepo.CashbookRepositoryWithTx = (*PgxCashbookRepository)(nil)

func scanCashbookEntry(row pgx.Row) (models.CashbookEntry, error) {
	var m models.CashbookEntry
	err := row.Scan(
		&m.EntryID,
		&m.BusinessID,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.EntryDate,
		&m.Balance,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves a single live entry scoped to a business.
func (r *PgxCashbookRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error) {
	query := `
		SELECT ` + cashbookColumns + `
		FROM cashbook_entries
		WHERE entry_id = $1 AND business_id = $2 AND is_deleted = FALSE;
	`
	m, err := scanCashbookEntry(r.Pool.QueryRow(ctx, query, entryID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cashbook entry %s: %w", entryID, err)
	}

	entry := mapping.ToDomainCashbookEntry(m)
	return &entry, nil
}

// ListEntries retrieves a paginated list of live entries in date order.
func (r *PgxCashbookRepository) ListEntries(ctx context.Context, businessID string, from, to *time.Time, limit int, nextToken *string) ([]domain.CashbookEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + cashbookColumns + `
		FROM cashbook_entries
		WHERE business_id = $1 AND is_deleted = FALSE
	`
	args := []interface{}{businessID}

	if from != nil {
		query += ` AND entry_date >= $` + strconv.Itoa(len(args)+1)
		args = append(args, *from)
	}
	if to != nil {
		query += ` AND entry_date <= $` + strconv.Itoa(len(args)+1)
		args = append(args, *to)
	}
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (entry_date, created_at) > ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query += ` ORDER BY entry_date, created_at LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query cashbook entries for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelEntries := []models.CashbookEntry{}
	for rows.Next() {
		m, err := scanCashbookEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan cashbook entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating cashbook entry rows: %w", err)
	}

	var newNextToken *string
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		newNextToken = &token
		modelEntries = modelEntries[:limit]
	}

	return mapping.ToDomainCashbookEntrySlice(modelEntries), newNextToken, nil
}

// lockChain takes a per-business transaction-scoped advisory lock over the
// cashbook chain. A tail append has no later rows to lock, so row locks alone
// cannot serialize two concurrent appends; chain writes for a business run one
// at a time behind this lock.
func (r *PgxCashbookRepository) lockChain(ctx context.Context, tx pgx.Tx, businessID string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, businessID); err != nil {
		return fmt.Errorf("failed to lock cashbook chain for business %s: %w", businessID, err)
	}
	return nil
}

// priorBalance returns the balance of the chronologically latest live entry
// strictly before the given position, or zero when none exists. The row is
// locked so its balance cannot shift under the cascade.
func (r *PgxCashbookRepository) priorBalance(ctx context.Context, tx pgx.Tx, businessID string, entryDate, createdAt time.Time, excludeEntryID string) (decimal.Decimal, error) {
	query := `
		SELECT balance
		FROM cashbook_entries
		WHERE business_id = $1 AND is_deleted = FALSE
		  AND entry_id <> $2
		  AND (entry_date, created_at) < ($3, $4)
		ORDER BY entry_date DESC, created_at DESC
		LIMIT 1
		FOR UPDATE;
	`
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, businessID, excludeEntryID, entryDate, createdAt).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read prior cashbook balance: %w", err)
	}
	return balance, nil
}

// lockSuffix selects and locks every live entry strictly after the given
// position, ascending. These are the entries whose balances the write
// invalidates.
func (r *PgxCashbookRepository) lockSuffix(ctx context.Context, tx pgx.Tx, businessID string, entryDate, createdAt time.Time, excludeEntryID string) ([]domain.CashbookEntry, error) {
	query := `
		SELECT ` + cashbookColumns + `
		FROM cashbook_entries
		WHERE business_id = $1 AND is_deleted = FALSE
		  AND entry_id <> $2
		  AND (entry_date, created_at) > ($3, $4)
		ORDER BY entry_date, created_at
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, businessID, excludeEntryID, entryDate, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to lock cashbook suffix: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.CashbookEntry{}
	for rows.Next() {
		m, err := scanCashbookEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked cashbook row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked cashbook rows: %w", err)
	}
	return mapping.ToDomainCashbookEntrySlice(modelEntries), nil
}

// writeBalances persists recomputed running balances for the given entries.
func (r *PgxCashbookRepository) writeBalances(ctx context.Context, tx pgx.Tx, entries []domain.CashbookEntry) error {
	if len(entries) == 0 {
		return nil
	}
	query := `UPDATE cashbook_entries SET balance = $2 WHERE entry_id = $1;`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(query, entry.EntryID, entry.Balance)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to write recomputed cashbook balances: %w", err)
	}
	return nil
}

// AppendEntry inserts the entry with its running balance derived from the
// chronological predecessor, then cascades over any later-dated entries. One
// atomic unit.
func (r *PgxCashbookRepository) AppendEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockChain(ctx, tx, entry.BusinessID); err != nil {
		return nil, err
	}
	suffix, err := r.lockSuffix(ctx, tx, entry.BusinessID, entry.EntryDate, entry.CreatedAt, entry.EntryID)
	if err != nil {
		return nil, err
	}
	prior, err := r.priorBalance(ctx, tx, entry.BusinessID, entry.EntryDate, entry.CreatedAt, entry.EntryID)
	if err != nil {
		return nil, err
	}

	entry.Balance = prior.Add(entry.SignedAmount())

	m := mapping.ToModelCashbookEntry(entry)
	query := `
		INSERT INTO cashbook_entries (` + cashbookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.BusinessID,
		m.Description,
		m.Amount,
		m.Type,
		m.EntryDate,
		m.Balance,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cashbook entry %s: %w", m.EntryID, err)
	}

	suffix = accounting.RecomputeRunningBalances(entry.Balance, suffix)
	if err := r.writeBalances(ctx, tx, suffix); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry applies amount/type/description changes and recomputes the
// running balance of the entry and every later-dated entry in one atomic unit.
func (r *PgxCashbookRepository) UpdateEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockChain(ctx, tx, entry.BusinessID); err != nil {
		return nil, err
	}

	// Lock the target row first, then its suffix.
	lockQuery := `
		SELECT ` + cashbookColumns + `
		FROM cashbook_entries
		WHERE entry_id = $1 AND business_id = $2 AND is_deleted = FALSE
		FOR UPDATE;
	`
	current, err := scanCashbookEntry(tx.QueryRow(ctx, lockQuery, entry.EntryID, entry.BusinessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock cashbook entry %s: %w", entry.EntryID, err)
	}

	suffix, err := r.lockSuffix(ctx, tx, entry.BusinessID, current.EntryDate, current.CreatedAt, entry.EntryID)
	if err != nil {
		return nil, err
	}
	prior, err := r.priorBalance(ctx, tx, entry.BusinessID, current.EntryDate, current.CreatedAt, entry.EntryID)
	if err != nil {
		return nil, err
	}

	entry.EntryDate = current.EntryDate
	entry.Balance = prior.Add(entry.SignedAmount())

	updateQuery := `
		UPDATE cashbook_entries
		SET description = $2, amount = $3, entry_type = $4, balance = $5, last_updated_at = $6, last_updated_by = $7
		WHERE entry_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		entry.EntryID,
		entry.Description,
		entry.Amount,
		string(entry.Type),
		entry.Balance,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update cashbook entry %s: %w", entry.EntryID, err)
	}

	suffix = accounting.RecomputeRunningBalances(entry.Balance, suffix)
	if err := r.writeBalances(ctx, tx, suffix); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry tombstones the entry and recomputes every later-dated balance in
// one atomic unit.
func (r *PgxCashbookRepository) DeleteEntry(ctx context.Context, businessID, entryID, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockChain(ctx, tx, businessID); err != nil {
		return err
	}

	lockQuery := `
		SELECT ` + cashbookColumns + `
		FROM cashbook_entries
		WHERE entry_id = $1 AND business_id = $2 AND is_deleted = FALSE
		FOR UPDATE;
	`
	current, err := scanCashbookEntry(tx.QueryRow(ctx, lockQuery, entryID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock cashbook entry %s: %w", entryID, err)
	}

	suffix, err := r.lockSuffix(ctx, tx, businessID, current.EntryDate, current.CreatedAt, entryID)
	if err != nil {
		return err
	}
	prior, err := r.priorBalance(ctx, tx, businessID, current.EntryDate, current.CreatedAt, entryID)
	if err != nil {
		return err
	}

	deleteQuery := `
		UPDATE cashbook_entries
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $1;
	`
	if _, err := tx.Exec(ctx, deleteQuery, entryID, now, userID); err != nil {
		return fmt.Errorf("failed to tombstone cashbook entry %s: %w", entryID, err)
	}

	suffix = accounting.RecomputeRunningBalances(prior, suffix)
	if err := r.writeBalances(ctx, tx, suffix); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
