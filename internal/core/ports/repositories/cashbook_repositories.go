package repositories

import (
	"context"
	"time"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
)

// CashbookReader defines read operations for cashbook entries
type CashbookReader interface {
	// FindEntryByID retrieves a single cashbook entry scoped to a business.
	FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error)

	// ListEntries retrieves a paginated list of entries in date order, optionally
	// bounded by a date range.
	ListEntries(ctx context.Context, businessID string, from, to *time.Time, limit int, nextToken *string) ([]domain.CashbookEntry, *string, error)
}

// CashbookWriter defines write operations for cashbook entries. Every write
// that can invalidate later running balances recomputes them inside the same
// atomic unit, so a reader never observes a partially recalculated suffix.
type CashbookWriter interface {
	// AppendEntry inserts the entry, computes its running balance from its
	// chronological predecessor, and cascades over any later-dated entries.
	// Returns the stored entry with its balance set.
	AppendEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error)

	// UpdateEntry applies amount/type/description changes and recomputes the
	// running balance of the entry and every later-dated entry.
	UpdateEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error)

	// DeleteEntry tombstones the entry and recomputes every later-dated balance.
	DeleteEntry(ctx context.Context, businessID, entryID, userID string, now time.Time) error
}

// CashbookRepositoryFacade combines all cashbook repository interfaces
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
}

// CashbookRepositoryWithTx extends CashbookRepositoryFacade with transaction capabilities
type CashbookRepositoryWithTx interface {
	CashbookRepositoryFacade
	TransactionManager
}
