package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.BusinessSvcFacade

	userID string
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.mockBusinessRepo = new(MockBusinessRepository)
	suite.service = services.NewBusinessService(suite.mockBusinessRepo)
	suite.userID = uuid.NewString()
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_SeedsChartOfAccounts() {
	ctx := context.Background()
	req := dto.CreateBusinessRequest{Name: "Corner Store", CurrencyCode: "USD"}

	var savedBusiness domain.Business
	var seededAccounts []domain.Account
	suite.mockBusinessRepo.On("SaveBusiness", mock.Anything,
		mock.AnythingOfType("domain.Business"), mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) {
			savedBusiness = args.Get(1).(domain.Business)
			seededAccounts = args.Get(2).([]domain.Account)
		}).Return(nil).Once()

	business, err := suite.service.CreateBusiness(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Corner Store", business.Name)
	suite.Equal("USD", business.CurrencyCode)
	suite.True(business.IsActive)
	suite.Equal(suite.userID, business.CreatedBy)
	suite.Equal(savedBusiness.BusinessID, business.BusinessID)

	suite.Require().Len(seededAccounts, len(domain.DefaultChartOfAccounts))
	seenTypes := make(map[domain.AccountType]bool)
	for i, account := range seededAccounts {
		suite.Equal(business.BusinessID, account.BusinessID)
		suite.Equal(domain.DefaultChartOfAccounts[i].Name, account.Name)
		suite.True(account.Balance.IsZero())
		suite.True(account.IsActive)
		seenTypes[account.AccountType] = true
	}
	suite.True(seenTypes[domain.Cash])
	suite.True(seenTypes[domain.AccountsReceivable])
	suite.True(seenTypes[domain.AccountsPayable])
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_DefaultsCurrency() {
	ctx := context.Background()

	var savedBusiness domain.Business
	suite.mockBusinessRepo.On("SaveBusiness", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedBusiness = args.Get(1).(domain.Business)
		}).Return(nil).Once()

	business, err := suite.service.CreateBusiness(ctx, dto.CreateBusinessRequest{Name: "Kirana"}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("INR", business.CurrencyCode)
	suite.Equal("INR", savedBusiness.CurrencyCode)
}

func (suite *BusinessServiceTestSuite) TestCreateBusiness_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("db down")

	suite.mockBusinessRepo.On("SaveBusiness", mock.Anything, mock.Anything, mock.Anything).
		Return(repoErr).Once()

	_, err := suite.service.CreateBusiness(ctx, dto.CreateBusinessRequest{Name: "Kirana"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
}

func (suite *BusinessServiceTestSuite) TestGetBusiness() {
	ctx := context.Background()
	businessID := uuid.NewString()
	expected := &domain.Business{BusinessID: businessID, Name: "Corner Store"}

	suite.mockBusinessRepo.On("FindBusinessByID", mock.Anything, businessID).Return(expected, nil).Once()

	business, err := suite.service.GetBusiness(ctx, businessID)

	suite.Require().NoError(err)
	suite.Equal(expected, business)
}

func (suite *BusinessServiceTestSuite) TestListBusinesses() {
	ctx := context.Background()
	expected := []domain.Business{
		{BusinessID: uuid.NewString(), Name: "Store A"},
		{BusinessID: uuid.NewString(), Name: "Store B"},
	}

	suite.mockBusinessRepo.On("ListBusinesses", mock.Anything).Return(expected, nil).Once()

	businesses, err := suite.service.ListBusinesses(ctx)

	suite.Require().NoError(err)
	suite.Len(businesses, 2)
	suite.Equal("Store A", businesses[0].Name)
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}
