package mapping

import (
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:      m.ProductID,
		BusinessID:     m.BusinessID,
		Name:           m.Name,
		TrackInventory: m.TrackInventory,
		AllowNegative:  m.AllowNegative,
		ReorderLevel:   m.ReorderLevel,
		IsActive:       m.IsActive,
	}
}
