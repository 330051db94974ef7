package services

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

// InventorySvcFacade exposes the inventory store: snapshots, the append-only
// movement log and manual adjustments.
type InventorySvcFacade interface {
	// GetInventory retrieves the stock snapshot for one product; products with
	// no stock history yet report zero quantities.
	GetInventory(ctx context.Context, businessID, productID string) (*domain.Inventory, error)

	// ListInventory retrieves the paginated snapshot for a business.
	ListInventory(ctx context.Context, businessID string, params dto.ListInventoryParams) (*dto.ListInventoryResponse, error)

	// ListStockMovements retrieves the movement log with cursor pagination.
	ListStockMovements(ctx context.Context, businessID string, params dto.ListStockMovementsParams) (*dto.ListStockMovementsResponse, error)

	// AdjustStock applies a manual signed adjustment and logs it.
	AdjustStock(ctx context.Context, businessID string, req dto.AdjustStockRequest, userID string) (*domain.Inventory, error)

	// ListLowStock feeds the notification collaborator with products at or
	// below their reorder level.
	ListLowStock(ctx context.Context, businessID string) ([]dto.LowStockItemResponse, error)
}
