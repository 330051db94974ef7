package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jayendrabharti/retail-management-system-sub000/internal/core/ports/services"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/dto"
	"github.com/jayendrabharti/retail-management-system-sub000/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &accountHandler{ledgerService: ledgerService}

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/balance", h.getAccountBalance)
		accounts.DELETE("/:accountID", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the business's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /businesses/{businessID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Param("businessID")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	account, err := h.ledgerService.CreateAccount(c.Request.Context(), businessID, req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /businesses/{businessID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	account, err := h.ledgerService.GetAccountByID(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountBalance godoc
// @Summary Get an account's balance with reconciliation totals
// @Description Returns the materialized balance plus debit/credit totals recomputed from history
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /businesses/{businessID}/accounts/{accountID}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	balance, err := h.ledgerService.GetAccountBalance(c.Request.Context(), businessID, accountID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve account balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// listAccounts godoc
// @Summary List accounts
// @Description Trial-balance style listing of the chart of accounts
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param includeInactive query bool false "Include deactivated accounts"
// @Success 200 {object} dto.ListAccountsResponse
// @Router /businesses/{businessID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	businessID := c.Param("businessID")
	includeInactive := c.Query("includeInactive") == "true"

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context(), businessID, includeInactive)
	if err != nil {
		respondServiceError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(accounts)})
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Soft-deletes an account; posting history is preserved
// @Tags accounts
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /businesses/{businessID}/accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	userID := middleware.GetUserIDFromContext(c)
	if err := h.ledgerService.DeactivateAccount(c.Request.Context(), businessID, accountID, userID); err != nil {
		respondServiceError(c, err, "Failed to deactivate account")
		return
	}

	c.Status(http.StatusNoContent)
}
