package mapping

import (
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
)

// ToModelInventory converts a domain Inventory to a model Inventory
func ToModelInventory(d domain.Inventory) models.Inventory {
	return models.Inventory{
		InventoryID:  d.InventoryID,
		BusinessID:   d.BusinessID,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		ReservedQty:  d.ReservedQty,
		AvailableQty: d.AvailableQty,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInventory converts a model Inventory to a domain Inventory
func ToDomainInventory(m models.Inventory) domain.Inventory {
	return domain.Inventory{
		InventoryID:  m.InventoryID,
		BusinessID:   m.BusinessID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		ReservedQty:  m.ReservedQty,
		AvailableQty: m.AvailableQty,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventorySlice converts a slice of model Inventories to domain Inventories
func ToDomainInventorySlice(ms []models.Inventory) []domain.Inventory {
	ds := make([]domain.Inventory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventory(m)
	}
	return ds
}

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID: d.MovementID,
		BusinessID: d.BusinessID,
		ProductID:  d.ProductID,
		Type:       models.MovementType(d.Type),
		Quantity:   d.Quantity,
		Reference:  d.Reference,
		Reason:     d.Reason,
		CreatedAt:  d.CreatedAt,
		CreatedBy:  d.CreatedBy,
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID: m.MovementID,
		BusinessID: m.BusinessID,
		ProductID:  m.ProductID,
		Type:       domain.MovementType(m.Type),
		Quantity:   m.Quantity,
		Reference:  m.Reference,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

// ToDomainStockMovementSlice converts a slice of model StockMovements to domain StockMovements
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
