package repositories

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// BusinessReader defines read operations for businesses
type BusinessReader interface {
	// FindBusinessByID retrieves a business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves all active businesses.
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
}

// BusinessWriter defines write operations for businesses
type BusinessWriter interface {
	// SaveBusiness persists a new business and its default chart of accounts in
	// one atomic unit.
	SaveBusiness(ctx context.Context, business domain.Business, accounts []domain.Account) error
}

// BusinessRepositoryFacade combines all business repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
