package domain

import (
	"github.com/shopspring/decimal"
)

// DocumentKind identifies the type of business document being posted.
type DocumentKind string

const (
	DocSale     DocumentKind = "SALE"
	DocPurchase DocumentKind = "PURCHASE"
	DocExpense  DocumentKind = "EXPENSE"
)

// DocumentStatus is the lifecycle state of a posted document.
type DocumentStatus string

const (
	DocPending   DocumentStatus = "PENDING"
	DocCompleted DocumentStatus = "COMPLETED"
	DocCancelled DocumentStatus = "CANCELLED"
)

// Document is the header of a posted sale, purchase or expense. Totals are
// accumulated from line-level rounded values, never re-rounded at the end.
type Document struct {
	DocumentID    string          `json:"documentID"` // Primary key (UUID)
	BusinessID    string          `json:"businessID"`
	Kind          DocumentKind    `json:"kind"`
	PartyID       *string         `json:"partyID,omitempty"` // Customer (sale) or supplier (purchase)
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountTotal decimal.Decimal `json:"discountTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	TotalAmount   decimal.Decimal `json:"totalAmount"` // subtotal - discount + tax
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"` // totalAmount - paidAmount
	Status        DocumentStatus  `json:"status"`
	Lines         []DocumentLine  `json:"lines,omitempty"`
	AuditFields
}

// DocumentLine is one priced line of a document. Quantity must be positive and
// unit price non-negative; rates are percentages.
type DocumentLine struct {
	LineID       string          `json:"lineID"` // Primary key (UUID)
	DocumentID   string          `json:"documentID"`
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxRate      decimal.Decimal `json:"taxRate"`      // Percent, e.g. 18 for 18%
	DiscountRate decimal.Decimal `json:"discountRate"` // Percent
	LineTotal    decimal.Decimal `json:"lineTotal"`    // Rounded line net: subtotal - discount + tax
}

// PaymentMethod is how a payment against a document was settled.
type PaymentMethod string

const (
	PayCash PaymentMethod = "CASH"
	PayBank PaymentMethod = "BANK"
)
