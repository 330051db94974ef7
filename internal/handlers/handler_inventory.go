package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/middleware"
)

// inventoryHandler handles HTTP requests for stock snapshots, the movement
// log and manual adjustments.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// registerInventoryRoutes registers routes related to inventory.
func registerInventoryRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := &inventoryHandler{inventoryService: inventoryService}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.listInventory)
		inventory.GET("/low-stock", h.listLowStock)
		inventory.GET("/:productID", h.getInventory)
		inventory.POST("/adjustments", h.adjustStock)
	}
	rg.GET("/stock-movements", h.listStockMovements)
}

// getInventory godoc
// @Summary Get a product's stock snapshot
// @Description Products with no stock history yet report zero quantities
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Router /businesses/{businessID}/inventory/{productID} [get]
func (h *inventoryHandler) getInventory(c *gin.Context) {
	businessID := c.Param("businessID")
	productID := c.Param("productID")

	inv, err := h.inventoryService.GetInventory(c.Request.Context(), businessID, productID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve inventory")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// listInventory godoc
// @Summary List stock snapshots
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListInventoryResponse
// @Router /businesses/{businessID}/inventory [get]
func (h *inventoryHandler) listInventory(c *gin.Context) {
	businessID := c.Param("businessID")

	params := dto.ListInventoryParams{}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.inventoryService.ListInventory(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list inventory")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// adjustStock godoc
// @Summary Apply a manual stock adjustment
// @Description Applies a signed quantity delta and logs an ADJUSTMENT movement
// @Tags inventory
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param adjustment body dto.AdjustStockRequest true "Adjustment details"
// @Success 200 {object} dto.InventoryResponse
// @Failure 422 {object} map[string]string "Untracked product or insufficient stock"
// @Router /businesses/{businessID}/inventory/adjustments [post]
func (h *inventoryHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	inv, err := h.inventoryService.AdjustStock(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to adjust stock")
		return
	}

	c.JSON(http.StatusOK, dto.ToInventoryResponse(inv))
}

// listStockMovements godoc
// @Summary List stock movements
// @Description Cursor-paginated movement log, filterable by product and date range
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Param productID query string false "Filter by product"
// @Param from query string false "Start date (RFC 3339)"
// @Param to query string false "End date (RFC 3339)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListStockMovementsResponse
// @Router /businesses/{businessID}/stock-movements [get]
func (h *inventoryHandler) listStockMovements(c *gin.Context) {
	businessID := c.Param("businessID")

	params := dto.ListStockMovementsParams{}
	if productID := c.Query("productID"); productID != "" {
		params.ProductID = &productID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date format, expected RFC 3339"})
			return
		}
		params.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date format, expected RFC 3339"})
			return
		}
		params.To = &to
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.inventoryService.ListStockMovements(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list stock movements")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listLowStock godoc
// @Summary List products at or below their reorder level
// @Tags inventory
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {array} dto.LowStockItemResponse
// @Router /businesses/{businessID}/inventory/low-stock [get]
func (h *inventoryHandler) listLowStock(c *gin.Context) {
	businessID := c.Param("businessID")

	items, err := h.inventoryService.ListLowStock(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, err, "Failed to list low stock items")
		return
	}

	c.JSON(http.StatusOK, items)
}
