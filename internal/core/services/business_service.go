package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

const defaultCurrencyCode = "INR"

// businessService provisions business tenants with their bootstrap chart of
// accounts.
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo}
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// CreateBusiness provisions a business and seeds its default chart of accounts
// in one atomic unit.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	now := time.Now().UTC()
	currency := req.CurrencyCode
	if currency == "" {
		currency = defaultCurrencyCode
	}

	business := domain.Business{
		BusinessID:   uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: currency,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	accounts := make([]domain.Account, len(domain.DefaultChartOfAccounts))
	for i, spec := range domain.DefaultChartOfAccounts {
		accounts[i] = domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  business.BusinessID,
			Name:        spec.Name,
			AccountType: spec.AccountType,
			IsActive:    true,
			Balance:     decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	if err := s.businessRepo.SaveBusiness(ctx, business, accounts); err != nil {
		s.LogError(ctx, err, "Failed to create business", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create business: %w", err)
	}

	s.LogInfo(ctx, "Business created",
		slog.String("business_id", business.BusinessID),
		slog.Int("seeded_accounts", len(accounts)),
	)
	return &business, nil
}

// GetBusiness retrieves one business.
func (s *businessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return business, nil
}

// ListBusinesses retrieves all active businesses.
func (s *businessService) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}
