package repositories

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// DocumentReader defines read operations for documents
type DocumentReader interface {
	// FindDocumentByID retrieves a document header with its lines.
	FindDocumentByID(ctx context.Context, businessID, documentID string) (*domain.Document, error)

	// ListDocuments retrieves a paginated list of document headers, optionally
	// filtered by kind and status.
	ListDocuments(ctx context.Context, businessID string, kind *domain.DocumentKind, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.Document, *string, error)
}

// DocumentWriter defines the atomic posting units. Each method is one
// all-or-nothing unit of work: document rows, inventory effects (with their
// movements) and the ledger posting commit together or not at all.
type DocumentWriter interface {
	// SavePosting inserts the document and its lines, applies the stock effects
	// under inventory row locks (check-then-act for RequireStock effects), and
	// posts the ledger transaction.
	SavePosting(ctx context.Context, doc domain.Document, effects []StockEffect, txn domain.Transaction) error

	// ApplyPayment updates paid/balance/status on the document header and posts
	// the settlement transaction in the same unit. The doc carries the new values.
	ApplyPayment(ctx context.Context, doc domain.Document, txn domain.Transaction) error

	// CancelPosting sets status CANCELLED, applies the compensating stock effects
	// and, when txn is non-nil, posts the reversal transaction.
	CancelPosting(ctx context.Context, doc domain.Document, effects []StockEffect, txn *domain.Transaction) error

	// ReplaceLines rewrites the document's lines and totals, applies the
	// sequential stock effects (reversal of old lines, then new lines, checked
	// against the reverted quantities under the same locks) and posts the
	// accompanying transactions.
	ReplaceLines(ctx context.Context, doc domain.Document, effects []StockEffect, txns []domain.Transaction) error
}

// DocumentRepositoryFacade combines all document repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
