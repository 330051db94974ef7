package dto

import (
	"time"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// CreateBusinessRequest provisions a new business tenant. The default chart of
// accounts is seeded in the same unit.
type CreateBusinessRequest struct {
	Name         string `json:"name" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3"`
}

// BusinessResponse is the API shape of a business.
type BusinessResponse struct {
	BusinessID   string    `json:"businessID"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToBusinessResponse converts a domain Business to its API shape.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:   b.BusinessID,
		Name:         b.Name,
		CurrencyCode: b.CurrencyCode,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
	}
}
