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

// cashbookHandler handles HTTP requests for the date-ordered cash ledger.
type cashbookHandler struct {
	cashbookService portssvc.CashbookSvcFacade
}

// registerCashbookRoutes registers routes related to the cashbook.
func registerCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookSvcFacade) {
	h := &cashbookHandler{cashbookService: cashbookService}

	cashbook := rg.Group("/cashbook")
	{
		cashbook.POST("", h.appendEntry)
		cashbook.GET("", h.listEntries)
		cashbook.GET("/:entryID", h.getEntry)
		cashbook.PUT("/:entryID", h.updateEntry)
		cashbook.DELETE("/:entryID", h.deleteEntry)
	}
}

// appendEntry godoc
// @Summary Append a cashbook entry
// @Description Adds a dated entry and cascades running balances over later-dated entries
// @Tags cashbook
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entry body dto.CreateCashbookEntryRequest true "Entry details"
// @Success 201 {object} dto.CashbookEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /businesses/{businessID}/cashbook [post]
func (h *cashbookHandler) appendEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateCashbookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	entry, err := h.cashbookService.AppendEntry(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to append cashbook entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashbookEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a cashbook entry
// @Description Edits an entry and recomputes every later-dated balance atomically
// @Tags cashbook
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateCashbookEntryRequest true "Fields to change"
// @Success 200 {object} dto.CashbookEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /businesses/{businessID}/cashbook/{entryID} [put]
func (h *cashbookHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	entryID := c.Param("entryID")

	var req dto.UpdateCashbookEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	entry, err := h.cashbookService.UpdateEntry(c.Request.Context(), businessID, entryID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update cashbook entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashbookEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a cashbook entry
// @Description Tombstones the entry and recomputes every later-dated balance
// @Tags cashbook
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /businesses/{businessID}/cashbook/{entryID} [delete]
func (h *cashbookHandler) deleteEntry(c *gin.Context) {
	businessID := c.Param("businessID")
	entryID := c.Param("entryID")

	userID := middleware.GetUserIDFromContext(c)
	if err := h.cashbookService.DeleteEntry(c.Request.Context(), businessID, entryID, userID); err != nil {
		respondServiceError(c, err, "Failed to delete cashbook entry")
		return
	}

	c.Status(http.StatusNoContent)
}

// getEntry godoc
// @Summary Get a cashbook entry
// @Tags cashbook
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.CashbookEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /businesses/{businessID}/cashbook/{entryID} [get]
func (h *cashbookHandler) getEntry(c *gin.Context) {
	businessID := c.Param("businessID")
	entryID := c.Param("entryID")

	entry, err := h.cashbookService.GetEntry(c.Request.Context(), businessID, entryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve cashbook entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashbookEntryResponse(entry))
}

// listEntries godoc
// @Summary List cashbook entries
// @Description Entries in ascending date order with cursor pagination
// @Tags cashbook
// @Produce json
// @Param businessID path string true "Business ID"
// @Param from query string false "Start date (RFC 3339)"
// @Param to query string false "End date (RFC 3339)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListCashbookEntriesResponse
// @Router /businesses/{businessID}/cashbook [get]
func (h *cashbookHandler) listEntries(c *gin.Context) {
	businessID := c.Param("businessID")

	params := dto.ListCashbookEntriesParams{}
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

	resp, err := h.cashbookService.ListEntries(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list cashbook entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}
