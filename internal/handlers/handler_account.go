package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/middleware"
)

// accountHandler handles HTTP requests for the account directory and the
// statement projection.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	statementService portssvc.StatementSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ss portssvc.StatementSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:   as,
		statementService: ss,
	}
}

// registerAccountRoutes registers routes related to accounts and statements.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ss portssvc.StatementSvcFacade) {
	h := newAccountHandler(as, ss)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.GET("/:accountNumber/statement", h.getStatement)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountListItemResponses(accounts))
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")
	logger = logger.With(slog.String("account_number", accountNumber))

	account, err := h.accountService.GetAccountByNumber(c.Request.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("accountNumber")
	logger = logger.With(slog.String("account_number", accountNumber))

	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	account, projection, err := h.statementService.ProjectStatement(c.Request.Context(), accountNumber, query.ToParams())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for statement")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to project statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(account, projection))
}
