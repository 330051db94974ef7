package services_test

import (
	"context"
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

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockProductRepo   *MockProductRepository
	service           portssvc.InventorySvcFacade

	businessID string
	userID     string
	product    domain.Product
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewInventoryService(suite.mockInventoryRepo, suite.mockProductRepo)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.product = domain.Product{
		ProductID:      uuid.NewString(),
		BusinessID:     suite.businessID,
		Name:           "Widget",
		TrackInventory: true,
		IsActive:       true,
	}
}

func (suite *InventoryServiceTestSuite) TestGetInventory_ZeroSnapshotWhenMissing() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&suite.product, nil).Once()
	suite.mockInventoryRepo.On("FindInventoryByProductID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(nil, apperrors.ErrNotFound).Once()

	inv, err := suite.service.GetInventory(ctx, suite.businessID, suite.product.ProductID)

	suite.Require().NoError(err)
	suite.Equal(suite.product.ProductID, inv.ProductID)
	suite.True(inv.Quantity.IsZero())
	suite.True(inv.AvailableQty.IsZero())
}

func (suite *InventoryServiceTestSuite) TestGetInventory_UnknownProduct() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, productID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetInventory(ctx, suite.businessID, productID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrProductNotFound)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "FindInventoryByProductID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestAdjustStock_Success() {
	ctx := context.Background()
	req := dto.AdjustStockRequest{
		ProductID: suite.product.ProductID,
		Delta:     dec("-3"),
		Reason:    "stocktake variance",
	}

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&suite.product, nil).Once()

	var appliedEffect portsrepo.StockEffect
	result := &domain.Inventory{
		ProductID:    suite.product.ProductID,
		Quantity:     dec("7"),
		AvailableQty: dec("7"),
	}
	suite.mockInventoryRepo.On("AdjustStock", mock.Anything, suite.businessID,
		mock.AnythingOfType("repositories.StockEffect"), suite.userID, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			appliedEffect = args.Get(2).(portsrepo.StockEffect)
		}).Return(result, nil).Once()

	inv, err := suite.service.AdjustStock(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(inv.Quantity.Equal(dec("7")))
	suite.True(appliedEffect.QuantityDelta.Equal(dec("-3")))
	suite.True(appliedEffect.RequireStock)
	suite.Equal(domain.MovementAdjustment, appliedEffect.Movement.Type)
	suite.Equal("stocktake variance", appliedEffect.Movement.Reason)
}

func (suite *InventoryServiceTestSuite) TestAdjustStock_PositiveDeltaNeverRequiresStock() {
	ctx := context.Background()
	req := dto.AdjustStockRequest{
		ProductID: suite.product.ProductID,
		Delta:     dec("10"),
		Reason:    "found stock",
	}

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&suite.product, nil).Once()

	var appliedEffect portsrepo.StockEffect
	suite.mockInventoryRepo.On("AdjustStock", mock.Anything, suite.businessID, mock.Anything, suite.userID, mock.Anything).
		Run(func(args mock.Arguments) {
			appliedEffect = args.Get(2).(portsrepo.StockEffect)
		}).Return(&domain.Inventory{Quantity: dec("10")}, nil).Once()

	_, err := suite.service.AdjustStock(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.False(appliedEffect.RequireStock)
}

func (suite *InventoryServiceTestSuite) TestAdjustStock_UntrackedProduct() {
	ctx := context.Background()
	untracked := suite.product
	untracked.TrackInventory = false

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&untracked, nil).Once()

	_, err := suite.service.AdjustStock(ctx, suite.businessID, dto.AdjustStockRequest{
		ProductID: suite.product.ProductID,
		Delta:     dec("5"),
		Reason:    "x",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUntrackedProduct)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "AdjustStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestAdjustStock_ZeroDelta() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&suite.product, nil).Once()

	_, err := suite.service.AdjustStock(ctx, suite.businessID, dto.AdjustStockRequest{
		ProductID: suite.product.ProductID,
		Delta:     decimal.Zero,
		Reason:    "x",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestAdjustStock_InsufficientStock() {
	ctx := context.Background()

	suite.mockProductRepo.On("FindProductByID", mock.Anything, suite.businessID, suite.product.ProductID).
		Return(&suite.product, nil).Once()
	suite.mockInventoryRepo.On("AdjustStock", mock.Anything, suite.businessID, mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.AdjustStock(ctx, suite.businessID, dto.AdjustStockRequest{
		ProductID: suite.product.ProductID,
		Delta:     dec("-100"),
		Reason:    "shrinkage",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *InventoryServiceTestSuite) TestListLowStock() {
	ctx := context.Background()
	items := []domain.LowStockItem{
		{
			Inventory:    domain.Inventory{ProductID: suite.product.ProductID, AvailableQty: dec("2")},
			ProductName:  "Widget",
			ReorderLevel: dec("5"),
		},
	}

	suite.mockInventoryRepo.On("ListLowStock", mock.Anything, suite.businessID).Return(items, nil).Once()

	resp, err := suite.service.ListLowStock(ctx, suite.businessID)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("Widget", resp[0].ProductName)
	suite.True(resp[0].AvailableQty.Equal(dec("2")))
	suite.True(resp[0].ReorderLevel.Equal(dec("5")))
}

func (suite *InventoryServiceTestSuite) TestListStockMovements_DefaultLimit() {
	ctx := context.Background()

	suite.mockInventoryRepo.On("ListStockMovements", mock.Anything, suite.businessID,
		(*string)(nil), mock.Anything, mock.Anything, 20, (*string)(nil)).
		Return([]domain.StockMovement{}, nil, nil).Once()

	resp, err := suite.service.ListStockMovements(ctx, suite.businessID, dto.ListStockMovementsParams{})

	suite.Require().NoError(err)
	suite.Empty(resp.Movements)
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
