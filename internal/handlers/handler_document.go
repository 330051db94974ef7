package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/middleware"
)

// documentHandler handles HTTP requests related to documents: posting,
// payments, cancellation and line updates.
type documentHandler struct {
	postingService portssvc.PostingSvcFacade
}

// RegisterDocumentRoutes registers routes related to documents.
func RegisterDocumentRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := &documentHandler{postingService: postingService}

	documents := rg.Group("/documents")
	{
		documents.POST("", h.postDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:documentID", h.getDocument)
		documents.POST("/:documentID/payments", h.recordPayment)
		documents.POST("/:documentID/cancel", h.cancelDocument)
		documents.PUT("/:documentID/items", h.updateDocumentItems)
	}
}

// postDocument godoc
// @Summary Post a sale, purchase or expense document
// @Description Atomically writes the document, its stock effects and its ledger posting
// @Tags documents
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param document body dto.PostDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient stock or posting rule violation"
// @Router /businesses/{businessID}/documents [post]
func (h *documentHandler) postDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.PostDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	doc, err := h.postingService.PostDocument(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// recordPayment godoc
// @Summary Record a payment against a document
// @Description Settles part or all of a document's open balance and posts the settlement transaction
// @Tags documents
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param documentID path string true "Document ID"
// @Param payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} map[string]string "Overpayment or closed document"
// @Router /businesses/{businessID}/documents/{documentID}/payments [post]
func (h *documentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	documentID := c.Param("documentID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	doc, err := h.postingService.RecordPayment(c.Request.Context(), businessID, documentID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// cancelDocument godoc
// @Summary Cancel a pending, unpaid document
// @Description Restores stock via compensating movements and posts a reversal transaction
// @Tags documents
// @Produce json
// @Param businessID path string true "Business ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} map[string]string "Document closed or already paid"
// @Router /businesses/{businessID}/documents/{documentID}/cancel [post]
func (h *documentHandler) cancelDocument(c *gin.Context) {
	businessID := c.Param("businessID")
	documentID := c.Param("documentID")

	userID := middleware.GetUserIDFromContext(c)
	doc, err := h.postingService.CancelDocument(c.Request.Context(), businessID, documentID, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to cancel document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocumentItems godoc
// @Summary Replace a pending document's lines
// @Description Reverses the old lines' effects and applies the new ones in one atomic unit
// @Tags documents
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param documentID path string true "Document ID"
// @Param items body dto.UpdateDocumentItemsRequest true "Replacement lines"
// @Success 200 {object} dto.DocumentResponse
// @Failure 422 {object} map[string]string "Document closed, already paid, or insufficient stock"
// @Router /businesses/{businessID}/documents/{documentID}/items [put]
func (h *documentHandler) updateDocumentItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")
	documentID := c.Param("documentID")

	var req dto.UpdateDocumentItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocumentItems", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	doc, err := h.postingService.UpdateDocumentItems(c.Request.Context(), businessID, documentID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update document items")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document with its lines
// @Tags documents
// @Produce json
// @Param businessID path string true "Business ID"
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Router /businesses/{businessID}/documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	businessID := c.Param("businessID")
	documentID := c.Param("documentID")

	doc, err := h.postingService.GetDocument(c.Request.Context(), businessID, documentID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents
// @Description Cursor-paginated list of document headers, filterable by kind and status
// @Tags documents
// @Produce json
// @Param businessID path string true "Business ID"
// @Param kind query string false "SALE, PURCHASE or EXPENSE"
// @Param status query string false "PENDING, COMPLETED or CANCELLED"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDocumentsResponse
// @Router /businesses/{businessID}/documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	businessID := c.Param("businessID")

	params := dto.ListDocumentsParams{}
	if kind := c.Query("kind"); kind != "" {
		params.Kind = &kind
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.postingService.ListDocuments(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, resp)
}
