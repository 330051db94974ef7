package models

import "github.com/shopspring/decimal"

// Product represents a row in the products table. The core only reads this
// table; product CRUD belongs to the catalog collaborator.
type Product struct {
	ProductID      string          `json:"productID"`  // Primary Key (UUID)
	BusinessID     string          `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Name           string          `json:"name"`
	TrackInventory bool            `json:"trackInventory"`
	AllowNegative  bool            `json:"allowNegative"`
	ReorderLevel   decimal.Decimal `json:"reorderLevel"`
	IsActive       bool            `json:"isActive"`
}
