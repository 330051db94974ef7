package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// DocumentLineRequest is one priced line of a document being posted.
type DocumentLineRequest struct {
	ProductID    string          `json:"productID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required,decimalgt0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`
}

// PostDocumentRequest creates and posts a sale, purchase or expense document.
// The caller supplies the ledger accounts the posting should hit; inputs are
// pre-validated as belonging to the caller's business.
type PostDocumentRequest struct {
	Kind            string                `json:"kind" binding:"required,oneof=SALE PURCHASE EXPENSE"`
	Description     string                `json:"description"`
	PartyID         *string               `json:"partyID"`
	DebitAccountID  string                `json:"debitAccountID" binding:"required"`
	CreditAccountID string                `json:"creditAccountID" binding:"required"`
	Date            *time.Time            `json:"date"`
	Lines           []DocumentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// RecordPaymentRequest records a settlement against a document's open balance.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,decimalgt0"`
	Method string          `json:"method" binding:"required,oneof=CASH BANK"`
}

// UpdateDocumentItemsRequest replaces a pending document's lines.
type UpdateDocumentItemsRequest struct {
	Lines []DocumentLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// DocumentLineResponse is the API shape of one document line.
type DocumentLineResponse struct {
	LineID       string          `json:"lineID"`
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TaxRate      decimal.Decimal `json:"taxRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
}

// DocumentResponse is the API shape of a document.
type DocumentResponse struct {
	DocumentID    string                 `json:"documentID"`
	BusinessID    string                 `json:"businessID"`
	Kind          string                 `json:"kind"`
	PartyID       *string                `json:"partyID,omitempty"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	DiscountTotal decimal.Decimal        `json:"discountTotal"`
	TaxTotal      decimal.Decimal        `json:"taxTotal"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	PaidAmount    decimal.Decimal        `json:"paidAmount"`
	BalanceAmount decimal.Decimal        `json:"balanceAmount"`
	Status        string                 `json:"status"`
	Lines         []DocumentLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ListDocumentsParams holds filters for listing documents.
type ListDocumentsParams struct {
	Kind      *string
	Status    *string
	Limit     int
	NextToken *string
}

// ListDocumentsResponse is a page of documents plus the next-page token.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDocumentLineResponse converts a domain DocumentLine to its API shape.
func ToDocumentLineResponse(l domain.DocumentLine) DocumentLineResponse {
	return DocumentLineResponse{
		LineID:       l.LineID,
		ProductID:    l.ProductID,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
		TaxRate:      l.TaxRate,
		DiscountRate: l.DiscountRate,
		LineTotal:    l.LineTotal,
	}
}

// ToDocumentResponse converts a domain Document to its API shape.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:    d.DocumentID,
		BusinessID:    d.BusinessID,
		Kind:          string(d.Kind),
		PartyID:       d.PartyID,
		Subtotal:      d.Subtotal,
		DiscountTotal: d.DiscountTotal,
		TaxTotal:      d.TaxTotal,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		BalanceAmount: d.BalanceAmount,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
	if len(d.Lines) > 0 {
		resp.Lines = make([]DocumentLineResponse, len(d.Lines))
		for i, l := range d.Lines {
			resp.Lines[i] = ToDocumentLineResponse(l)
		}
	}
	return resp
}
