package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/middleware"
)

// businessHandler handles HTTP requests related to businesses.
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

// registerBusinessRoutes registers business routes plus every business-scoped
// sub-resource. All core operations are addressed under a business.
func registerBusinessRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &businessHandler{businessService: services.Business}

	businesses := rg.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
	}

	scoped := businesses.Group("/:businessID")
	registerAccountRoutes(scoped, services.Ledger)
	registerTransactionRoutes(scoped, services.Ledger)
	RegisterDocumentRoutes(scoped, services.Posting)
	registerInventoryRoutes(scoped, services.Inventory)
	registerCashbookRoutes(scoped, services.Cashbook)
}

// createBusiness godoc
// @Summary Create a new business
// @Description Provisions a business with its default chart of accounts
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.BusinessResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBusiness", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create business")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusinessResponse(business))
}

// getBusiness godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 404 {object} map[string]string "Business not found"
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	businessID := c.Param("businessID")

	business, err := h.businessService.GetBusiness(c.Request.Context(), businessID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve business")
		return
	}

	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// listBusinesses godoc
// @Summary List active businesses
// @Tags businesses
// @Produce json
// @Success 200 {array} dto.BusinessResponse
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	businesses, err := h.businessService.ListBusinesses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list businesses")
		return
	}

	responses := make([]dto.BusinessResponse, len(businesses))
	for i := range businesses {
		responses[i] = dto.ToBusinessResponse(&businesses[i])
	}
	c.JSON(http.StatusOK, responses)
}
