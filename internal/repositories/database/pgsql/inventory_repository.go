package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
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

const inventoryColumns = `inventory_id, business_id, product_id, quantity, reserved_qty, available_qty, created_at, created_by, last_updated_at, last_updated_by`

const movementColumns = `movement_id, business_id, product_id, movement_type, quantity, reference, reason, created_at, created_by`

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for inventory and the
// stock movement log.
func newPgxInventoryRepository(pool *pgxpool.Pool) *PgxInventoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInventoryRepository implements portsrepo.InventoryRepositoryWithTx
var _ portsrepo.InventoryRepositoryWithTx = (*PgxInventoryRepository)(nil)

func scanInventory(row pgx.Row) (models.Inventory, error) {
	var m models.Inventory
	err := row.Scan(
		&m.InventoryID,
		&m.BusinessID,
		&m.ProductID,
		&m.Quantity,
		&m.ReservedQty,
		&m.AvailableQty,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanMovement(row pgx.Row) (models.StockMovement, error) {
	var m models.StockMovement
	err := row.Scan(
		&m.MovementID,
		&m.BusinessID,
		&m.ProductID,
		&m.Type,
		&m.Quantity,
		&m.Reference,
		&m.Reason,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	return m, err
}

// FindInventoryByProductID retrieves the inventory record for a product.
func (r *PgxInventoryRepository) FindInventoryByProductID(ctx context.Context, businessID, productID string) (*domain.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE business_id = $1 AND product_id = $2;
	`
	m, err := scanInventory(r.Pool.QueryRow(ctx, query, businessID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find inventory for product %s: %w", productID, err)
	}

	inv := mapping.ToDomainInventory(m)
	return &inv, nil
}

// FindInventoriesByProductIDs retrieves inventory records for multiple
// products. Products with no record yet are absent from the map.
func (r *PgxInventoryRepository) FindInventoriesByProductIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Inventory, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Inventory{}, nil
	}

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE business_id = $1 AND product_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, businessID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory by product IDs: %w", err)
	}
	defer rows.Close()

	inventories := make(map[string]domain.Inventory)
	for rows.Next() {
		m, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		inventories[m.ProductID] = mapping.ToDomainInventory(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}
	return inventories, nil
}

// ListInventory retrieves a paginated inventory snapshot ordered by product id.
func (r *PgxInventoryRepository) ListInventory(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.Inventory, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE business_id = $1
	`
	args := []interface{}{businessID}

	if nextToken != nil && *nextToken != "" {
		lastProductID, decodeErr := pagination.DecodeKeyToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND product_id > $2`
		args = append(args, lastProductID)
	}

	query += ` ORDER BY product_id LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query inventory for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelInventories := []models.Inventory{}
	for rows.Next() {
		m, err := scanInventory(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		modelInventories = append(modelInventories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	var newNextToken *string
	if len(modelInventories) > limit {
		token := pagination.EncodeKeyToken(modelInventories[limit-1].ProductID)
		newNextToken = &token
		modelInventories = modelInventories[:limit]
	}

	return mapping.ToDomainInventorySlice(modelInventories), newNextToken, nil
}

// ListLowStock retrieves inventory records at or below the product's reorder
// level. Only active, tracked products participate.
func (r *PgxInventoryRepository) ListLowStock(ctx context.Context, businessID string) ([]domain.LowStockItem, error) {
	query := `
		SELECT i.inventory_id, i.business_id, i.product_id, i.quantity, i.reserved_qty, i.available_qty,
		       i.created_at, i.created_by, i.last_updated_at, i.last_updated_by,
		       p.name, p.reorder_level
		FROM inventory i
		JOIN products p ON p.product_id = i.product_id AND p.business_id = i.business_id
		WHERE i.business_id = $1
		  AND p.is_active = TRUE
		  AND p.track_inventory = TRUE
		  AND i.available_qty <= p.reorder_level
		ORDER BY i.available_qty;
	`
	rows, err := r.Pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock for business %s: %w", businessID, err)
	}
	defer rows.Close()

	items := []domain.LowStockItem{}
	for rows.Next() {
		var m models.Inventory
		var item domain.LowStockItem
		err := rows.Scan(
			&m.InventoryID,
			&m.BusinessID,
			&m.ProductID,
			&m.Quantity,
			&m.ReservedQty,
			&m.AvailableQty,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&item.ProductName,
			&item.ReorderLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan low stock row: %w", err)
		}
		item.Inventory = mapping.ToDomainInventory(m)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating low stock rows: %w", err)
	}
	return items, nil
}

// ListStockMovements retrieves a paginated slice of the movement log, newest
// first, optionally filtered by product and date range.
func (r *PgxInventoryRepository) ListStockMovements(ctx context.Context, businessID string, productID *string, from, to *time.Time, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE business_id = $1
	`
	args := []interface{}{businessID}

	if productID != nil {
		query += ` AND product_id = $` + strconv.Itoa(len(args)+1)
		args = append(args, *productID)
	}
	if from != nil {
		query += ` AND created_at >= $` + strconv.Itoa(len(args)+1)
		args = append(args, *from)
	}
	if to != nil {
		query += ` AND created_at <= $` + strconv.Itoa(len(args)+1)
		args = append(args, *to)
	}
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND created_at < $` + strconv.Itoa(len(args)+1)
		args = append(args, lastCreatedAt)
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query stock movements for business %s: %w", businessID, err)
	}
	defer rows.Close()

	modelMovements := []models.StockMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan stock movement row: %w", err)
		}
		modelMovements = append(modelMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating stock movement rows: %w", err)
	}

	var newNextToken *string
	if len(modelMovements) > limit {
		token := pagination.EncodeDateBasedToken(modelMovements[limit-1].CreatedAt)
		newNextToken = &token
		modelMovements = modelMovements[:limit]
	}

	return mapping.ToDomainStockMovementSlice(modelMovements), newNextToken, nil
}

// FindInventoriesForUpdate lazily creates missing inventory rows with zero
// quantities, then selects all of them in deterministic product order and locks
// them for update. Must be called within a transaction.
func (r *PgxInventoryRepository) FindInventoriesForUpdate(ctx context.Context, tx pgx.Tx, businessID string, productIDs []string) (map[string]domain.Inventory, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Inventory{}, nil
	}

	sorted := make([]string, 0, len(productIDs))
	seen := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		if !seen[id] {
			seen[id] = true
			sorted = append(sorted, id)
		}
	}
	sort.Strings(sorted)

	// Lazy create so the first stock-affecting event for a product does not
	// need a separate provisioning step.
	insertQuery := `
		INSERT INTO inventory (inventory_id, business_id, product_id, quantity, reserved_qty, available_qty, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, 0, 0, 0, NOW(), 'system', NOW(), 'system')
		ON CONFLICT (business_id, product_id) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, productID := range sorted {
		batch.Queue(insertQuery, uuid.NewString(), businessID, productID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to lazily create inventory rows: %w", err)
	}

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE business_id = $1 AND product_id = ANY($2)
		ORDER BY product_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, businessID, sorted)
	if err != nil {
		return nil, fmt.Errorf("failed to lock inventory rows: %w", err)
	}
	defer rows.Close()

	inventories := make(map[string]domain.Inventory)
	for rows.Next() {
		m, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked inventory row: %w", err)
		}
		inventories[m.ProductID] = mapping.ToDomainInventory(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked inventory rows: %w", err)
	}

	if len(inventories) != len(sorted) {
		return nil, fmt.Errorf("%w: could not lock all inventory rows for business %s", apperrors.ErrConflict, businessID)
	}
	return inventories, nil
}

// ApplyStockEffectInTx applies one quantity delta to the locked inventory row
// and appends its stock movement. The check-then-act on available quantity
// happens here, after the lock, so concurrent postings serialize correctly.
func (r *PgxInventoryRepository) ApplyStockEffectInTx(ctx context.Context, tx pgx.Tx, businessID string, effect portsrepo.StockEffect, userID string, now time.Time) error {
	updateQuery := `
		UPDATE inventory
		SET quantity = quantity + $3,
		    available_qty = available_qty + $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE business_id = $1 AND product_id = $2
		RETURNING available_qty;
	`
	var available decimal.Decimal
	err := tx.QueryRow(ctx, updateQuery, businessID, effect.ProductID, effect.QuantityDelta, now, userID).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: inventory row for product %s", apperrors.ErrNotFound, effect.ProductID)
		}
		return fmt.Errorf("failed to apply stock delta for product %s: %w", effect.ProductID, err)
	}

	if effect.RequireStock && available.IsNegative() {
		return fmt.Errorf("%w: product %s", apperrors.ErrInsufficientStock, effect.ProductID)
	}

	movement := mapping.ToModelStockMovement(effect.Movement)
	movementQuery := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, movementQuery,
		movement.MovementID,
		movement.BusinessID,
		movement.ProductID,
		movement.Type,
		movement.Quantity,
		movement.Reference,
		movement.Reason,
		movement.CreatedAt,
		movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock movement %s: %w", movement.MovementID, err)
	}
	return nil
}

// AdjustStock atomically applies a manual adjustment and returns the updated
// snapshot.
func (r *PgxInventoryRepository) AdjustStock(ctx context.Context, businessID string, effect portsrepo.StockEffect, userID string, now time.Time) (*domain.Inventory, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.FindInventoriesForUpdate(ctx, tx, businessID, []string{effect.ProductID}); err != nil {
		return nil, err
	}
	if err := r.ApplyStockEffectInTx(ctx, tx, businessID, effect, userID, now); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE business_id = $1 AND product_id = $2;
	`
	m, err := scanInventory(tx.QueryRow(ctx, query, businessID, effect.ProductID))
	if err != nil {
		return nil, fmt.Errorf("failed to re-read inventory for product %s: %w", effect.ProductID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInventory(m)
	return &inv, nil
}
