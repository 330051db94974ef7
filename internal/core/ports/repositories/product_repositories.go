package repositories

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// ProductReader exposes the catalog fields the core needs. Product CRUD is
// owned by the catalog collaborator; the core only reads.
type ProductReader interface {
	// FindProductByID retrieves a product scoped to a business.
	FindProductByID(ctx context.Context, businessID, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves multiple products; missing IDs are absent from
	// the map.
	FindProductsByIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Product, error)
}
