package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// StockEffect describes one product's quantity change inside an atomic posting
// unit, plus the append-only movement that records it. RequireStock makes the
// effect fail with ErrInsufficientStock when the post-lock available quantity
// cannot absorb a negative delta.
type StockEffect struct {
	ProductID     string
	QuantityDelta decimal.Decimal // negative = stock out
	RequireStock  bool
	Movement      domain.StockMovement
}

// InventoryReader defines read operations for inventory snapshots
type InventoryReader interface {
	// FindInventoryByProductID retrieves the inventory record for a product,
	// or ErrNotFound when no stock-affecting event has created it yet.
	FindInventoryByProductID(ctx context.Context, businessID, productID string) (*domain.Inventory, error)

	// FindInventoriesByProductIDs retrieves inventory records for multiple
	// products; missing products are absent from the map.
	FindInventoriesByProductIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Inventory, error)

	// ListInventory retrieves a paginated inventory snapshot for a business.
	ListInventory(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.Inventory, *string, error)

	// ListLowStock retrieves inventory records whose available quantity is at or
	// below the product's reorder level.
	ListLowStock(ctx context.Context, businessID string) ([]domain.LowStockItem, error)
}

// StockMovementReader defines read operations for the movement log
type StockMovementReader interface {
	// ListStockMovements retrieves a paginated slice of the append-only movement
	// log, optionally filtered by product and date range.
	ListStockMovements(ctx context.Context, businessID string, productID *string, from, to *time.Time, limit int, nextToken *string) ([]domain.StockMovement, *string, error)
}

// InventoryTransactionSupport defines operations used inside an atomic posting unit
type InventoryTransactionSupport interface {
	// FindInventoriesForUpdate lazily creates missing inventory rows, then
	// selects all of them in deterministic product order and locks them for
	// update within the given transaction.
	FindInventoriesForUpdate(ctx context.Context, tx pgx.Tx, businessID string, productIDs []string) (map[string]domain.Inventory, error)

	// ApplyStockEffectInTx applies one quantity delta to the locked inventory row
	// and appends its stock movement. Locks must already be held.
	ApplyStockEffectInTx(ctx context.Context, tx pgx.Tx, businessID string, effect StockEffect, userID string, now time.Time) error
}

// InventoryWriter defines standalone write operations
type InventoryWriter interface {
	// AdjustStock atomically applies a manual adjustment: lock, delta the
	// quantity, append the ADJUSTMENT movement.
	AdjustStock(ctx context.Context, businessID string, effect StockEffect, userID string, now time.Time) (*domain.Inventory, error)
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	StockMovementReader
	InventoryTransactionSupport
	InventoryWriter
}

// InventoryRepositoryWithTx extends InventoryRepositoryFacade with transaction capabilities
type InventoryRepositoryWithTx interface {
	InventoryRepositoryFacade
	TransactionManager
}
