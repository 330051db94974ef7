package mapping

import (
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		BusinessID:      d.BusinessID,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		DebitAccountID:  d.DebitAccountID,
		CreditAccountID: d.CreditAccountID,
		DocumentID:      d.DocumentID,
		PartyID:         d.PartyID,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		BusinessID:      m.BusinessID,
		Description:     m.Description,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		DebitAccountID:  m.DebitAccountID,
		CreditAccountID: m.CreditAccountID,
		DocumentID:      m.DocumentID,
		PartyID:         m.PartyID,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
