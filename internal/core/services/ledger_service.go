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

var (
	ErrSameAccount       = errors.New("debit and credit accounts must differ")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// ledgerService provides chart-of-accounts and double-entry posting operations.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolvePostingAccounts loads and validates both sides of a posting.
func (s *ledgerService) resolvePostingAccounts(ctx context.Context, businessID, debitAccountID, creditAccountID string) (map[string]domain.Account, error) {
	if debitAccountID == creditAccountID {
		return nil, fmt.Errorf("%w: %s", ErrSameAccount, debitAccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, []string{debitAccountID, creditAccountID})
	if err != nil {
		return nil, fmt.Errorf("failed to load posting accounts: %w", err)
	}

	for _, accountID := range []string{debitAccountID, creditAccountID} {
		account, ok := accounts[accountID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrAccountInactive, accountID)
		}
	}
	return accounts, nil
}

// PostTransaction validates and atomically applies one double-entry posting.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) PostTransaction(ctx context.Context, businessID string, req dto.PostTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", ErrNonPositiveAmount, req.Amount.String())
	}

	if _, err := s.resolvePostingAccounts(ctx, businessID, req.DebitAccountID, req.CreditAccountID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	transactionDate := now
	if req.Date != nil {
		transactionDate = req.Date.UTC()
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		BusinessID:      businessID,
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionType: domain.TransactionType(req.TransactionType),
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		DocumentID:      req.DocumentID,
		PartyID:         req.PartyID,
		TransactionDate: transactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("business_id", businessID),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

// GetAccountBalance returns the cached balance plus debit/credit totals
// recomputed from the full posting history.
func (s *ledgerService) GetAccountBalance(ctx context.Context, businessID, accountID string) (*dto.AccountBalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}

	totals, err := s.ledgerRepo.SumAccountTotals(ctx, businessID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account totals", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to sum account totals: %w", err)
	}

	return &dto.AccountBalanceResponse{
		AccountID:   account.AccountID,
		Balance:     account.Balance,
		DebitTotal:  totals.DebitTotal,
		CreditTotal: totals.CreditTotal,
	}, nil
}

// CreateAccount adds a new account to the business's chart.
func (s *ledgerService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := time.Now().UTC()

	account := domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		Description: req.Description,
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.ParentAccountID != nil {
		parent, err := s.accountRepo.FindAccountByID(ctx, businessID, *req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("parent account: %w", err)
		}
		account.ParentAccountID = parent.AccountID
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("business_id", businessID))
	return &account, nil
}

// GetAccountByID retrieves one account.
func (s *ledgerService) GetAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the chart of accounts for a business.
func (s *ledgerService) ListAccounts(ctx context.Context, businessID string, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, businessID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeactivateAccount soft-deletes an account. Posting history stays intact.
func (s *ledgerService) DeactivateAccount(ctx context.Context, businessID, accountID, userID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.accountRepo.DeactivateAccount(ctx, businessID, accountID, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID), slog.String("business_id", businessID))
	return nil
}

// ListTransactions retrieves committed postings with cursor pagination.
func (s *ledgerService) ListTransactions(ctx context.Context, businessID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if params.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, businessID, *params.AccountID); err != nil {
			return nil, err
		}
	}

	txns, nextToken, err := s.ledgerRepo.ListTransactions(ctx, businessID, params.AccountID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
