package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, businessID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByType(ctx context.Context, businessID string, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SaveAccounts(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	args := m.Called(ctx, tx, accounts)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, businessID, accountID, userID string, now time.Time) error {
	args := m.Called(ctx, businessID, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, changes map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, changes, userID, now)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, businessID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, businessID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, businessID string, accountID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, businessID, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedToken, args.Error(2)
}

func (m *MockLedgerRepository) SumAccountTotals(ctx context.Context, businessID, accountID string) (*portsrepo.AccountTotals, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.AccountTotals), args.Error(1)
}

func (m *MockLedgerRepository) FindTransactionsByDocumentID(ctx context.Context, businessID, documentID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Mock InventoryRepository ---

type MockInventoryRepository struct {
	mock.Mock
}

var _ portsrepo.InventoryRepositoryFacade = (*MockInventoryRepository)(nil)

func (m *MockInventoryRepository) FindInventoryByProductID(ctx context.Context, businessID, productID string) (*domain.Inventory, error) {
	args := m.Called(ctx, businessID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindInventoriesByProductIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Inventory, error) {
	args := m.Called(ctx, businessID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) ListInventory(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.Inventory, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.Inventory), returnedToken, args.Error(2)
}

func (m *MockInventoryRepository) ListLowStock(ctx context.Context, businessID string) ([]domain.LowStockItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LowStockItem), args.Error(1)
}

func (m *MockInventoryRepository) ListStockMovements(ctx context.Context, businessID string, productID *string, from, to *time.Time, limit int, nextToken *string) ([]domain.StockMovement, *string, error) {
	args := m.Called(ctx, businessID, productID, from, to, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.StockMovement), returnedToken, args.Error(2)
}

func (m *MockInventoryRepository) FindInventoriesForUpdate(ctx context.Context, tx pgx.Tx, businessID string, productIDs []string) (map[string]domain.Inventory, error) {
	args := m.Called(ctx, tx, businessID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) ApplyStockEffectInTx(ctx context.Context, tx pgx.Tx, businessID string, effect portsrepo.StockEffect, userID string, now time.Time) error {
	args := m.Called(ctx, tx, businessID, effect, userID, now)
	return args.Error(0)
}

func (m *MockInventoryRepository) AdjustStock(ctx context.Context, businessID string, effect portsrepo.StockEffect, userID string, now time.Time) (*domain.Inventory, error) {
	args := m.Called(ctx, businessID, effect, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

// --- Mock CashbookRepository ---

type MockCashbookRepository struct {
	mock.Mock
}

var _ portsrepo.CashbookRepositoryFacade = (*MockCashbookRepository)(nil)

func (m *MockCashbookRepository) FindEntryByID(ctx context.Context, businessID, entryID string) (*domain.CashbookEntry, error) {
	args := m.Called(ctx, businessID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookEntry), args.Error(1)
}

func (m *MockCashbookRepository) ListEntries(ctx context.Context, businessID string, from, to *time.Time, limit int, nextToken *string) ([]domain.CashbookEntry, *string, error) {
	args := m.Called(ctx, businessID, from, to, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.CashbookEntry), returnedToken, args.Error(2)
}

func (m *MockCashbookRepository) AppendEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookEntry), args.Error(1)
}

func (m *MockCashbookRepository) UpdateEntry(ctx context.Context, entry domain.CashbookEntry) (*domain.CashbookEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookEntry), args.Error(1)
}

func (m *MockCashbookRepository) DeleteEntry(ctx context.Context, businessID, entryID, userID string, now time.Time) error {
	args := m.Called(ctx, businessID, entryID, userID, now)
	return args.Error(0)
}

// --- Mock DocumentRepository ---

type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, businessID, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, businessID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, businessID string, kind *domain.DocumentKind, status *domain.DocumentStatus, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := m.Called(ctx, businessID, kind, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.Document), returnedToken, args.Error(2)
}

func (m *MockDocumentRepository) SavePosting(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txn domain.Transaction) error {
	args := m.Called(ctx, doc, effects, txn)
	return args.Error(0)
}

func (m *MockDocumentRepository) ApplyPayment(ctx context.Context, doc domain.Document, txn domain.Transaction) error {
	args := m.Called(ctx, doc, txn)
	return args.Error(0)
}

func (m *MockDocumentRepository) CancelPosting(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txn *domain.Transaction) error {
	args := m.Called(ctx, doc, effects, txn)
	return args.Error(0)
}

func (m *MockDocumentRepository) ReplaceLines(ctx context.Context, doc domain.Document, effects []portsrepo.StockEffect, txns []domain.Transaction) error {
	args := m.Called(ctx, doc, effects, txns)
	return args.Error(0)
}

// --- Mock BusinessRepository ---

type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListBusinesses(ctx context.Context) ([]domain.Business, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business, accounts []domain.Account) error {
	args := m.Called(ctx, business, accounts)
	return args.Error(0)
}

// --- Mock ProductRepository ---

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductReader = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, businessID, productID string) (*domain.Product, error) {
	args := m.Called(ctx, businessID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, businessID string, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, businessID, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Product), args.Error(1)
}
