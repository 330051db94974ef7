package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
)

const businessColumns = `business_id, name, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxBusinessRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountWriter
}

// newPgxBusinessRepository creates a new repository for businesses. The
// account repository seeds the default chart inside the provisioning unit.
func newPgxBusinessRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountWriter) *PgxBusinessRepository {
	return &PgxBusinessRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepositoryFacade
var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func scanBusiness(row pgx.Row) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.Name,
		&m.CurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBusiness persists a new business and its default chart of accounts in
// one atomic unit.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business, accounts []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (` + businessColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: business with ID %s already exists", apperrors.ErrDuplicate, m.BusinessID)
		}
		return fmt.Errorf("failed to insert business %s: %w", m.BusinessID, err)
	}

	if err := r.accountRepo.SaveAccounts(ctx, tx, accounts); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE business_id = $1;
	`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}

	business := mapping.ToDomainBusiness(m)
	return &business, nil
}

// ListBusinesses retrieves all active businesses ordered by name.
func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	query := `
		SELECT ` + businessColumns + `
		FROM businesses
		WHERE is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		m, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, mapping.ToDomainBusiness(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}
	return businesses, nil
}
