package models

import "github.com/shopspring/decimal"

// DocumentKind mirrors domain.DocumentKind at the persistence layer.
type DocumentKind string

// DocumentStatus mirrors domain.DocumentStatus at the persistence layer.
type DocumentStatus string

// Document represents a row in the documents table.
type Document struct {
	DocumentID    string          `json:"documentID"` // Primary Key (UUID)
	BusinessID    string          `json:"businessID"` // FK -> businesses.business_id (Not Null)
	Kind          DocumentKind    `json:"kind"`
	PartyID       *string         `json:"partyID"` // Nullable party reference
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
	Status        DocumentStatus  `json:"status"`
	AuditFields
}

// DocumentLine represents a row in the document_lines table.
type DocumentLine struct {
	LineID       string          `json:"lineID"`     // Primary Key (UUID)
	DocumentID   string          `json:"documentID"` // FK -> documents.document_id (Not Null)
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}
