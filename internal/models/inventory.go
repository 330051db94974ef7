package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory represents a row in the inventory table: one stock pool per
// (business, product).
type Inventory struct {
	InventoryID  string          `json:"inventoryID"` // Primary Key (UUID)
	BusinessID   string          `json:"businessID"`  // FK -> businesses.business_id (Not Null)
	ProductID    string          `json:"productID"`   // FK -> products.product_id (Not Null)
	Quantity     decimal.Decimal `json:"quantity"`
	ReservedQty  decimal.Decimal `json:"reservedQty"`
	AvailableQty decimal.Decimal `json:"availableQty"`
	AuditFields
}

// MovementType mirrors domain.MovementType at the persistence layer.
type MovementType string

// StockMovement represents a row in the stock_movements table. Rows are
// append-only.
type StockMovement struct {
	MovementID string          `json:"movementID"` // Primary Key (UUID)
	BusinessID string          `json:"businessID"` // FK -> businesses.business_id (Not Null)
	ProductID  string          `json:"productID"`
	Type       MovementType    `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}
