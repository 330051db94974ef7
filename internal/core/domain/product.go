package domain

import "github.com/shopspring/decimal"

// Product is owned by the catalog collaborator; the core only reads the flags
// that gate inventory behavior.
type Product struct {
	ProductID      string          `json:"productID"`
	BusinessID     string          `json:"businessID"`
	Name           string          `json:"name"`
	TrackInventory bool            `json:"trackInventory"` // Untracked products skip all stock handling
	AllowNegative  bool            `json:"allowNegative"`  // Permits oversell when true
	ReorderLevel   decimal.Decimal `json:"reorderLevel"`   // Low-stock threshold for the notification collaborator
	IsActive       bool            `json:"isActive"`
}
