package services

import (
	"context"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

// CashbookSvcFacade exposes the date-ordered cash ledger with its running
// balance recalculator.
type CashbookSvcFacade interface {
	// AppendEntry adds a dated entry; its balance derives from the
	// chronologically latest earlier entry, and later-dated entries cascade.
	AppendEntry(ctx context.Context, businessID string, req dto.CreateCashbookEntryRequest, userID string) (*domain.CashbookEntry, error)

	// UpdateEntry edits an entry and recomputes every later-dated balance in
	// one atomic unit.
	UpdateEntry(ctx context.Context, businessID, entryID string, req dto.UpdateCashbookEntryRequest, userID string) (*domain.CashbookEntry, error)

	// DeleteEntry tombstones an entry and recomputes every later-dated balance.
	DeleteEntry(ctx context.Context, businessID, entryID, userID string) error

	// GetEntry retrieves one entry.
	GetEntry(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error)

	// ListEntries retrieves entries in date order with cursor pagination.
	ListEntries(ctx context.Context, businessID string, params dto.ListCashbookEntriesParams) (*dto.ListCashbookEntriesResponse, error)
}
