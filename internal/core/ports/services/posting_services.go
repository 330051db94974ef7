package services

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

// PostingSvcFacade is the document poster and reversal engine: it turns
// business documents into atomic inventory + ledger effects, and exactly
// undoes them on cancellation.
type PostingSvcFacade interface {
	// PostDocument computes totals, validates stock and atomically writes the
	// document, its inventory effects and its ledger posting, or nothing.
	PostDocument(ctx context.Context, businessID string, req dto.PostDocumentRequest, userID string) (*domain.Document, error)

	// RecordPayment settles part or all of a document's open balance and posts
	// the corresponding ledger transaction.
	RecordPayment(ctx context.Context, businessID, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.Document, error)

	// CancelDocument reverses a pending, unpaid document: compensating stock
	// movements, restored quantities, reversal ledger posting, status CANCELLED.
	CancelDocument(ctx context.Context, businessID, documentID, userID string) (*domain.Document, error)

	// UpdateDocumentItems replaces a pending document's lines, re-validating
	// stock against the reverted quantities inside one atomic unit.
	UpdateDocumentItems(ctx context.Context, businessID, documentID string, req dto.UpdateDocumentItemsRequest, userID string) (*domain.Document, error)

	// GetDocument retrieves a document with its lines.
	GetDocument(ctx context.Context, businessID, documentID string) (*domain.Document, error)

	// ListDocuments retrieves document headers with cursor pagination.
	ListDocuments(ctx context.Context, businessID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)
}
