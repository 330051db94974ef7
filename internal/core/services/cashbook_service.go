package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

var ErrEntryNotFound = errors.New("cashbook entry not found")

// cashbookService maintains the date-ordered cash ledger. Running balances are
// recomputed by the repository inside the same atomic unit as the write that
// invalidated them.
type cashbookService struct {
	BaseService
	cashbookRepo portsrepo.CashbookRepositoryFacade
}

// NewCashbookService creates a new CashbookService.
func NewCashbookService(cashbookRepo portsrepo.CashbookRepositoryFacade) portssvc.CashbookSvcFacade {
	return &cashbookService{cashbookRepo: cashbookRepo}
}

var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

// AppendEntry adds a dated entry. Entries dated before existing ones trigger
// the same cascade as an update.
// Implements portssvc.CashbookSvcFacade
func (s *cashbookService) AppendEntry(ctx context.Context, businessID string, req dto.CreateCashbookEntryRequest, userID string) (*domain.CashbookEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := domain.CashbookEntry{
		EntryID:     uuid.NewString(),
		BusinessID:  businessID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        domain.CashbookEntryType(req.Type),
		EntryDate:   req.Date.UTC(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stored, err := s.cashbookRepo.AppendEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append cashbook entry", slog.String("business_id", businessID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbook entry appended",
		slog.String("entry_id", stored.EntryID),
		slog.String("business_id", businessID),
		slog.String("balance", stored.Balance.String()),
	)
	return stored, nil
}

// UpdateEntry edits an entry. Amount or type changes invalidate every
// later-dated balance; the repository recomputes them in the same unit.
func (s *cashbookService) UpdateEntry(ctx context.Context, businessID, entryID string, req dto.UpdateCashbookEntryRequest, userID string) (*domain.CashbookEntry, error) {
	entry, err := s.getEntry(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: entry amount must be positive", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Type != nil {
		entry.Type = domain.CashbookEntryType(*req.Type)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = userID

	stored, err := s.cashbookRepo.UpdateEntry(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to update cashbook entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Cashbook entry updated", slog.String("entry_id", entryID), slog.String("balance", stored.Balance.String()))
	return stored, nil
}

// DeleteEntry tombstones an entry and cascades the balance recompute over
// every later-dated entry.
func (s *cashbookService) DeleteEntry(ctx context.Context, businessID, entryID, userID string) error {
	if _, err := s.getEntry(ctx, businessID, entryID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.cashbookRepo.DeleteEntry(ctx, businessID, entryID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to delete cashbook entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Cashbook entry deleted", slog.String("entry_id", entryID), slog.String("business_id", businessID))
	return nil
}

// GetEntry retrieves one entry.
func (s *cashbookService) GetEntry(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error) {
	return s.getEntry(ctx, businessID, entryID)
}

func (s *cashbookService) getEntry(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error) {
	entry, err := s.cashbookRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves entries in date order with cursor pagination.
func (s *cashbookService) ListEntries(ctx context.Context, businessID string, params dto.ListCashbookEntriesParams) (*dto.ListCashbookEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, nextToken, err := s.cashbookRepo.ListEntries(ctx, businessID, params.From, params.To, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashbook entries: %w", err)
	}

	return &dto.ListCashbookEntriesResponse{
		Entries:   dto.ToCashbookEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}
