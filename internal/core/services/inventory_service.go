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

var ErrUntrackedProduct = errors.New("product does not track inventory")

// inventoryService exposes stock snapshots, the append-only movement log and
// manual adjustments.
type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
	productRepo   portsrepo.ProductReader
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepositoryFacade, productRepo portsrepo.ProductReader) portssvc.InventorySvcFacade {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// GetInventory retrieves the stock snapshot for one product. Products with no
// stock history yet report zero quantities.
// Implements portssvc.InventorySvcFacade
func (s *inventoryService) GetInventory(ctx context.Context, businessID, productID string) (*domain.Inventory, error) {
	product, err := s.productRepo.FindProductByID(ctx, businessID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, err
	}

	inv, err := s.inventoryRepo.FindInventoryByProductID(ctx, businessID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No stock-affecting event yet: report a zero snapshot.
			return &domain.Inventory{
				BusinessID:   businessID,
				ProductID:    product.ProductID,
				Quantity:     decimal.Zero,
				ReservedQty:  decimal.Zero,
				AvailableQty: decimal.Zero,
			}, nil
		}
		return nil, err
	}
	return inv, nil
}

// ListInventory retrieves the paginated snapshot for a business.
func (s *inventoryService) ListInventory(ctx context.Context, businessID string, params dto.ListInventoryParams) (*dto.ListInventoryResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	inventory, nextToken, err := s.inventoryRepo.ListInventory(ctx, businessID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	responses := make([]dto.InventoryResponse, len(inventory))
	for i := range inventory {
		responses[i] = dto.ToInventoryResponse(&inventory[i])
	}
	return &dto.ListInventoryResponse{Inventory: responses, NextToken: nextToken}, nil
}

// ListStockMovements retrieves the movement log with cursor pagination.
func (s *inventoryService) ListStockMovements(ctx context.Context, businessID string, params dto.ListStockMovementsParams) (*dto.ListStockMovementsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	movements, nextToken, err := s.inventoryRepo.ListStockMovements(ctx, businessID, params.ProductID, params.From, params.To, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}

	return &dto.ListStockMovementsResponse{
		Movements: dto.ToStockMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}

// AdjustStock applies a manual signed adjustment and appends the ADJUSTMENT
// movement in one atomic unit. Negative results are guarded unless the product
// allows negative stock.
func (s *inventoryService) AdjustStock(ctx context.Context, businessID string, req dto.AdjustStockRequest, userID string) (*domain.Inventory, error) {
	product, err := s.productRepo.FindProductByID(ctx, businessID, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, req.ProductID)
		}
		return nil, err
	}
	if !product.TrackInventory {
		return nil, fmt.Errorf("%w: %s", ErrUntrackedProduct, req.ProductID)
	}
	if req.Delta.IsZero() {
		return nil, fmt.Errorf("%w: adjustment delta must be non-zero", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	effect := portsrepo.StockEffect{
		ProductID:     req.ProductID,
		QuantityDelta: req.Delta,
		RequireStock:  req.Delta.IsNegative() && !product.AllowNegative,
		Movement: domain.StockMovement{
			MovementID: uuid.NewString(),
			BusinessID: businessID,
			ProductID:  req.ProductID,
			Type:       domain.MovementAdjustment,
			Quantity:   req.Delta,
			Reason:     req.Reason,
			CreatedAt:  now,
			CreatedBy:  userID,
		},
	}

	inv, err := s.inventoryRepo.AdjustStock(ctx, businessID, effect, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust stock", slog.String("product_id", req.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Stock adjusted",
		slog.String("product_id", req.ProductID),
		slog.String("delta", req.Delta.String()),
		slog.String("quantity", inv.Quantity.String()),
	)
	return inv, nil
}

// ListLowStock feeds the notification collaborator with products at or below
// their reorder level.
func (s *inventoryService) ListLowStock(ctx context.Context, businessID string) ([]dto.LowStockItemResponse, error) {
	items, err := s.inventoryRepo.ListLowStock(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	responses := make([]dto.LowStockItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.ToLowStockItemResponse(item)
	}
	return responses, nil
}
