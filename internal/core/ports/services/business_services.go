package services

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

// BusinessSvcFacade is the provisioning interface used by the tenant-selection
// collaborator.
type BusinessSvcFacade interface {
	// CreateBusiness provisions a business and seeds its default chart of
	// accounts in one atomic unit.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error)

	// GetBusiness retrieves one business.
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves all active businesses.
	ListBusinesses(ctx context.Context) ([]domain.Business, error)
}
