package mapping

import (
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
)

// ToModelDocument converts a domain Document to a model Document.
// Lines are persisted separately and not carried by the model header.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:    d.DocumentID,
		BusinessID:    d.BusinessID,
		Kind:          models.DocumentKind(d.Kind),
		PartyID:       d.PartyID,
		Subtotal:      d.Subtotal,
		DiscountTotal: d.DiscountTotal,
		TaxTotal:      d.TaxTotal,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		BalanceAmount: d.BalanceAmount,
		Status:        models.DocumentStatus(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:    m.DocumentID,
		BusinessID:    m.BusinessID,
		Kind:          domain.DocumentKind(m.Kind),
		PartyID:       m.PartyID,
		Subtotal:      m.Subtotal,
		DiscountTotal: m.DiscountTotal,
		TaxTotal:      m.TaxTotal,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		BalanceAmount: m.BalanceAmount,
		Status:        domain.DocumentStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDocumentLine converts a domain DocumentLine to a model DocumentLine
func ToModelDocumentLine(d domain.DocumentLine) models.DocumentLine {
	return models.DocumentLine{
		LineID:       d.LineID,
		DocumentID:   d.DocumentID,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		TaxRate:      d.TaxRate,
		DiscountRate: d.DiscountRate,
		LineTotal:    d.LineTotal,
	}
}

// ToDomainDocumentLine converts a model DocumentLine to a domain DocumentLine
func ToDomainDocumentLine(m models.DocumentLine) domain.DocumentLine {
	return domain.DocumentLine{
		LineID:       m.LineID,
		DocumentID:   m.DocumentID,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TaxRate:      m.TaxRate,
		DiscountRate: m.DiscountRate,
		LineTotal:    m.LineTotal,
	}
}

// ToDomainDocumentLineSlice converts a slice of model DocumentLines to domain DocumentLines
func ToDomainDocumentLineSlice(ms []models.DocumentLine) []domain.DocumentLine {
	ds := make([]domain.DocumentLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocumentLine(m)
	}
	return ds
}
