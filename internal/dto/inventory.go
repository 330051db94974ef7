package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// AdjustStockRequest applies a manual signed quantity adjustment to a product's
// stock pool.
type AdjustStockRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Delta     decimal.Decimal `json:"delta" binding:"required"`
	Reason    string          `json:"reason" binding:"required"`
}

// InventoryResponse is the API shape of an inventory snapshot.
type InventoryResponse struct {
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReservedQty  decimal.Decimal `json:"reservedQty"`
	AvailableQty decimal.Decimal `json:"availableQty"`
}

// StockMovementResponse is the API shape of one movement log row.
type StockMovementResponse struct {
	MovementID string          `json:"movementID"`
	ProductID  string          `json:"productID"`
	Type       string          `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// LowStockItemResponse is one row of the low-stock feed.
type LowStockItemResponse struct {
	ProductID    string          `json:"productID"`
	ProductName  string          `json:"productName"`
	AvailableQty decimal.Decimal `json:"availableQty"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
}

// ListInventoryParams holds pagination for the inventory snapshot listing.
type ListInventoryParams struct {
	Limit     int
	NextToken *string
}

// ListInventoryResponse is a page of inventory snapshots.
type ListInventoryResponse struct {
	Inventory []InventoryResponse `json:"inventory"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ListStockMovementsParams holds filters for the movement log listing.
type ListStockMovementsParams struct {
	ProductID *string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// ListStockMovementsResponse is a page of movement log rows.
type ListStockMovementsResponse struct {
	Movements []StockMovementResponse `json:"movements"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToInventoryResponse converts a domain Inventory to its API shape.
func ToInventoryResponse(inv *domain.Inventory) InventoryResponse {
	return InventoryResponse{
		ProductID:    inv.ProductID,
		Quantity:     inv.Quantity,
		ReservedQty:  inv.ReservedQty,
		AvailableQty: inv.AvailableQty,
	}
}

// ToStockMovementResponse converts a domain StockMovement to its API shape.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID: m.MovementID,
		ProductID:  m.ProductID,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Reference:  m.Reference,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
	}
}

// ToStockMovementResponses converts a slice of domain StockMovements to API shapes.
func ToStockMovementResponses(movements []domain.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = ToStockMovementResponse(&movements[i])
	}
	return responses
}

// ToLowStockItemResponse converts a domain LowStockItem to its API shape.
func ToLowStockItemResponse(item domain.LowStockItem) LowStockItemResponse {
	return LowStockItemResponse{
		ProductID:    item.Inventory.ProductID,
		ProductName:  item.ProductName,
		AvailableQty: item.Inventory.AvailableQty,
		ReorderLevel: item.ReorderLevel,
	}
}
