package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is the single stock pool for one product in one business.
// AvailableQty must always equal Quantity - ReservedQty; both are maintained in
// the same write. Records are created lazily on the first stock-affecting event.
type Inventory struct {
	InventoryID  string          `json:"inventoryID"` // Primary key (UUID)
	BusinessID   string          `json:"businessID"`
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`     // On-hand
	ReservedQty  decimal.Decimal `json:"reservedQty"`  // Held for pending orders
	AvailableQty decimal.Decimal `json:"availableQty"` // quantity - reservedQty
	AuditFields
}

// LowStockItem pairs an inventory snapshot with the product fields the
// notification collaborator needs.
type LowStockItem struct {
	Inventory    Inventory       `json:"inventory"`
	ProductName  string          `json:"productName"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
}

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementIn         MovementType = "IN"
	MovementOut        MovementType = "OUT"
	MovementAdjustment MovementType = "ADJUSTMENT"
	MovementTransfer   MovementType = "TRANSFER"
	MovementReturn     MovementType = "RETURN"
	MovementDamage     MovementType = "DAMAGE"
)

// StockMovement is an append-only fact about a quantity change. The signed sum
// of a product's movements is the ground truth; Inventory.Quantity is a
// materialized cache of it. Movements are never edited or deleted; reversals
// append a compensating movement instead.
type StockMovement struct {
	MovementID string          `json:"movementID"` // Primary key (UUID)
	BusinessID string          `json:"businessID"`
	ProductID  string          `json:"productID"`
	Type       MovementType    `json:"type"`
	Quantity   decimal.Decimal `json:"quantity"`  // Unsigned; direction comes from Type
	Reference  string          `json:"reference"` // Originating document/adjustment id
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"createdAt"`
	CreatedBy  string          `json:"createdBy"`
}

// SignedQuantity returns the movement quantity with the sign implied by its type.
func (m StockMovement) SignedQuantity() decimal.Decimal {
	switch m.Type {
	case MovementIn, MovementReturn:
		return m.Quantity
	case MovementOut, MovementDamage, MovementTransfer:
		return m.Quantity.Neg()
	default: // ADJUSTMENT carries its own sign
		return m.Quantity
	}
}
