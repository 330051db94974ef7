package mapping

import (
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
)

// ToModelCashbookEntry converts a domain CashbookEntry to a model CashbookEntry
func ToModelCashbookEntry(d domain.CashbookEntry) models.CashbookEntry {
	return models.CashbookEntry{
		EntryID:     d.EntryID,
		BusinessID:  d.BusinessID,
		Description: d.Description,
		Amount:      d.Amount,
		Type:        models.CashbookEntryType(d.Type),
		EntryDate:   d.EntryDate,
		Balance:     d.Balance,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashbookEntry converts a model CashbookEntry to a domain CashbookEntry
func ToDomainCashbookEntry(m models.CashbookEntry) domain.CashbookEntry {
	return domain.CashbookEntry{
		EntryID:     m.EntryID,
		BusinessID:  m.BusinessID,
		Description: m.Description,
		Amount:      m.Amount,
		Type:        domain.CashbookEntryType(m.Type),
		EntryDate:   m.EntryDate,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashbookEntrySlice converts a slice of model CashbookEntries to domain CashbookEntries
func ToDomainCashbookEntrySlice(ms []models.CashbookEntry) []domain.CashbookEntry {
	ds := make([]domain.CashbookEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashbookEntry(m)
	}
	return ds
}
