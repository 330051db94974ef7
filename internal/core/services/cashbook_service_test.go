package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jayendrabharti/retail-management-system-sub000/internal/apperrors"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/domain"
	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/core/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
)

type CashbookServiceTestSuite struct {
	suite.Suite
	mockCashbookRepo *MockCashbookRepository
	service          portssvc.CashbookSvcFacade

	businessID string
	userID     string
}

func (suite *CashbookServiceTestSuite) SetupTest() {
	suite.mockCashbookRepo = new(MockCashbookRepository)
	suite.service = services.NewCashbookService(suite.mockCashbookRepo)
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *CashbookServiceTestSuite) TestAppendEntry_Success() {
	ctx := context.Background()
	entryDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateCashbookEntryRequest{
		Description: "Opening float",
		Amount:      dec("500"),
		Type:        "CASH_IN",
		Date:        entryDate,
	}

	var appended domain.CashbookEntry
	suite.mockCashbookRepo.On("AppendEntry", mock.Anything, mock.AnythingOfType("domain.CashbookEntry")).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(domain.CashbookEntry)
			appended.Balance = dec("500")
		}).Return(&appended, nil).Once()

	entry, err := suite.service.AppendEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(suite.businessID, appended.BusinessID)
	suite.Equal(domain.CashIn, appended.Type)
	suite.Equal(entryDate, appended.EntryDate)
	suite.Equal(suite.userID, appended.CreatedBy)
}

func (suite *CashbookServiceTestSuite) TestAppendEntry_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateCashbookEntryRequest{
		Description: "Bad",
		Amount:      decimal.Zero,
		Type:        "CASH_IN",
		Date:        time.Now(),
	}

	_, err := suite.service.AppendEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashbookRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestUpdateEntry_Success() {
	ctx := context.Background()
	existing := &domain.CashbookEntry{
		EntryID:     uuid.NewString(),
		BusinessID:  suite.businessID,
		Description: "Supplies",
		Amount:      dec("100"),
		Type:        domain.CashOut,
		EntryDate:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	newAmount := dec("150")
	req := dto.UpdateCashbookEntryRequest{Amount: &newAmount}

	suite.mockCashbookRepo.On("FindEntryByID", mock.Anything, suite.businessID, existing.EntryID).
		Return(existing, nil).Once()

	var updated domain.CashbookEntry
	suite.mockCashbookRepo.On("UpdateEntry", mock.Anything, mock.AnythingOfType("domain.CashbookEntry")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.CashbookEntry)
		}).Return(&updated, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, suite.businessID, existing.EntryID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(dec("150")))
	suite.Equal(domain.CashOut, updated.Type)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
}

func (suite *CashbookServiceTestSuite) TestUpdateEntry_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockCashbookRepo.On("FindEntryByID", mock.Anything, suite.businessID, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateEntry(ctx, suite.businessID, entryID, dto.UpdateCashbookEntryRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotFound)
}

func (suite *CashbookServiceTestSuite) TestUpdateEntry_NonPositiveAmount() {
	ctx := context.Background()
	existing := &domain.CashbookEntry{
		EntryID:    uuid.NewString(),
		BusinessID: suite.businessID,
		Amount:     dec("100"),
		Type:       domain.CashIn,
	}
	badAmount := dec("-5")

	suite.mockCashbookRepo.On("FindEntryByID", mock.Anything, suite.businessID, existing.EntryID).
		Return(existing, nil).Once()

	_, err := suite.service.UpdateEntry(ctx, suite.businessID, existing.EntryID,
		dto.UpdateCashbookEntryRequest{Amount: &badAmount}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCashbookRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	existing := &domain.CashbookEntry{
		EntryID:    uuid.NewString(),
		BusinessID: suite.businessID,
		Amount:     dec("100"),
		Type:       domain.CashIn,
	}

	suite.mockCashbookRepo.On("FindEntryByID", mock.Anything, suite.businessID, existing.EntryID).
		Return(existing, nil).Once()
	suite.mockCashbookRepo.On("DeleteEntry", mock.Anything, suite.businessID, existing.EntryID,
		suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteEntry(ctx, suite.businessID, existing.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockCashbookRepo.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestListEntries_PassesRange() {
	ctx := context.Background()
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	entries := []domain.CashbookEntry{
		{EntryID: uuid.NewString(), Amount: dec("100"), Type: domain.CashIn, Balance: dec("100")},
		{EntryID: uuid.NewString(), Amount: dec("30"), Type: domain.CashOut, Balance: dec("70")},
	}
	suite.mockCashbookRepo.On("ListEntries", mock.Anything, suite.businessID, &from, &to, 20, (*string)(nil)).
		Return(entries, nil, nil).Once()

	resp, err := suite.service.ListEntries(ctx, suite.businessID, dto.ListCashbookEntriesParams{From: &from, To: &to})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 2)
	suite.True(resp.Entries[1].Balance.Equal(dec("70")))
}

func TestCashbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashbookServiceTestSuite))
}
