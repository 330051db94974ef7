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

// transactionHandler handles HTTP requests related to ledger postings.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerTransactionRoutes registers routes related to ledger postings.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.postTransaction)
		transactions.GET("", h.listTransactions)
	}
}

// postTransaction godoc
// @Summary Post a double-entry transaction
// @Description Atomically applies one posting: debit account up, credit account down
// @Tags transactions
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param transaction body dto.PostTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Posting rule violation"
// @Router /businesses/{businessID}/transactions [post]
func (h *transactionHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	txn, err := h.ledgerService.PostTransaction(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to post transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List ledger postings
// @Description Cursor-paginated list of committed postings, optionally scoped to one account
// @Tags transactions
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID query string false "Filter to postings touching this account"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /businesses/{businessID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	businessID := c.Param("businessID")

	params := dto.ListTransactionsParams{}
	if accountID := c.Query("accountID"); accountID != "" {
		params.AccountID = &accountID
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), businessID, params)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}
