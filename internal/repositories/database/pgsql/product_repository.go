package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/utils/mapping"
)

const productColumns = `product_id, business_id, name, track_inventory, allow_negative, reorder_level, is_active`

// PgxProductRepository reads the product catalog. Product CRUD belongs to the
// catalog collaborator; nothing here writes.
type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new read-only repository for products.
func newPgxProductRepository(pool *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProductRepository implements portsrepo.ProductReader
var _ portsrepo.ProductReader = (*PgxProductRepository)(nil)

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.BusinessID,
		&m.Name,
		&m.TrackInventory,
		&m.AllowNegative,
		&m.ReorderLevel,
		&m.IsActive,
	)
	return m, err
}

// FindProductByID retrieves a product scoped to a business.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, businessID, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1 AND business_id = $2;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// FindProductsByIDs retrieves multiple products; missing IDs are absent from
// the map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1) AND business_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, productIDs, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	products := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}
