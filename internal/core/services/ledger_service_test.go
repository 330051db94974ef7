package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portsrepo "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.LedgerSvcFacade

	businessID    string
	userID        string
	cashAccount   domain.Account
	salesAccount  domain.Account
	closedAccount domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockAccountRepo, suite.mockLedgerRepo)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		Name:        "Cash",
		AccountType: domain.Cash,
		IsActive:    true,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		Name:        "Sales Revenue",
		AccountType: domain.Revenue,
		IsActive:    true,
	}
	suite.closedAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		Name:        "Old Account",
		AccountType: domain.Expense,
		IsActive:    false,
	}
}

func (suite *LedgerServiceTestSuite) postRequest(debitID, creditID string) dto.PostTransactionRequest {
	return dto.PostTransactionRequest{
		Description:     "Cash sale",
		Amount:          dec("150.50"),
		TransactionType: "SALE",
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
	}
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	req := suite.postRequest(suite.cashAccount.AccountID, suite.salesAccount.AccountID)

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, suite.businessID,
		[]string{suite.cashAccount.AccountID, suite.salesAccount.AccountID}).Return(accountsMap, nil).Once()

	var savedTxn domain.Transaction
	suite.mockLedgerRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			savedTxn = args.Get(1).(domain.Transaction)
		}).Return(nil).Once()

	txn, err := suite.service.PostTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.businessID, txn.BusinessID)
	suite.Equal(domain.TxnSale, txn.TransactionType)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.True(savedTxn.Amount.Equal(dec("150.50")))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.postRequest(suite.cashAccount.AccountID, suite.salesAccount.AccountID)
	req.Amount = decimal.Zero

	_, err := suite.service.PostTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNonPositiveAmount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_SameAccount() {
	ctx := context.Background()
	req := suite.postRequest(suite.cashAccount.AccountID, suite.cashAccount.AccountID)

	_, err := suite.service.PostTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSameAccount)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_AccountNotFound() {
	ctx := context.Background()
	req := suite.postRequest(suite.cashAccount.AccountID, suite.salesAccount.AccountID)

	// Only the debit side exists.
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, suite.businessID, mock.Anything).
		Return(accountsMap, nil).Once()

	_, err := suite.service.PostTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_InactiveAccount() {
	ctx := context.Background()
	req := suite.postRequest(suite.cashAccount.AccountID, suite.closedAccount.AccountID)

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:   suite.cashAccount,
		suite.closedAccount.AccountID: suite.closedAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, suite.businessID, mock.Anything).
		Return(accountsMap, nil).Once()

	_, err := suite.service.PostTransaction(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
}

func (suite *LedgerServiceTestSuite) TestGetAccountBalance() {
	ctx := context.Background()
	account := suite.cashAccount
	account.Balance = dec("250")

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, account.AccountID).
		Return(&account, nil).Once()
	suite.mockLedgerRepo.On("SumAccountTotals", mock.Anything, suite.businessID, account.AccountID).
		Return(&portsrepo.AccountTotals{
			Balance:     dec("250"),
			DebitTotal:  dec("400"),
			CreditTotal: dec("150"),
		}, nil).Once()

	resp, err := suite.service.GetAccountBalance(ctx, suite.businessID, account.AccountID)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, resp.AccountID)
	suite.True(resp.Balance.Equal(dec("250")))
	suite.True(resp.DebitTotal.Equal(dec("400")))
	suite.True(resp.CreditTotal.Equal(dec("150")))
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_WithMissingParent() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:            "Petty Cash",
		AccountType:     "CASH",
		ParentAccountID: &parentID,
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, parentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "Petty Cash", AccountType: "CASH"}

	var savedAccount domain.Account
	suite.mockAccountRepo.On("SaveAccount", mock.Anything, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			savedAccount = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Petty Cash", account.Name)
	suite.Equal(domain.Cash, account.AccountType)
	suite.True(account.IsActive)
	suite.True(account.Balance.IsZero())
	suite.True(savedAccount.Balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.businessID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", mock.Anything, suite.businessID, suite.cashAccount.AccountID,
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.businessID, suite.cashAccount.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeactivateAccount_AlreadyInactive() {
	ctx := context.Background()
	repoErr := fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, suite.cashAccount.AccountID)

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, suite.cashAccount.AccountID).
		Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", mock.Anything, suite.businessID, suite.cashAccount.AccountID,
		suite.userID, mock.AnythingOfType("time.Time")).Return(repoErr).Once()

	err := suite.service.DeactivateAccount(ctx, suite.businessID, suite.cashAccount.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), suite.cashAccount.AccountID)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_ValidatesAccountFilter() {
	ctx := context.Background()
	unknownAccount := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.businessID, unknownAccount).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTransactions(ctx, suite.businessID, dto.ListTransactionsParams{AccountID: &unknownAccount})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("ListTransactions", mock.Anything, suite.businessID, (*string)(nil), 20, (*string)(nil)).
		Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, suite.businessID, dto.ListTransactionsParams{Limit: 500})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
