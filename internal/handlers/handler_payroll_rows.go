package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	"github.com/paydeck/bank_portal_app/internal/core/domain"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/middleware"
)

// payrollRowHandler serves the standalone row-level approval queue.
type payrollRowHandler struct {
	rowService portssvc.PayrollRowSvcFacade
}

func newPayrollRowHandler(rs portssvc.PayrollRowSvcFacade) *payrollRowHandler {
	return &payrollRowHandler{rowService: rs}
}

func registerPayrollRowRoutes(rg *gin.RouterGroup, rowService portssvc.PayrollRowSvcFacade) {
	h := newPayrollRowHandler(rowService)

	rows := rg.Group("/payroll/rows")
	{
		rows.GET("", h.listRows)
		rows.POST("/:rowID/approve", h.approveRow)
		rows.POST("/:rowID/reject", h.rejectRow)
	}
}

func (h *payrollRowHandler) listRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.rowService.ListRows(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payroll rows", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rows"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollRowResponses(rows))
}

func (h *payrollRowHandler) approveRow(c *gin.Context) {
	h.act(c, "approve", h.rowService.ApproveRow)
}

func (h *payrollRowHandler) rejectRow(c *gin.Context) {
	h.act(c, "reject", h.rowService.RejectRow)
}

// act runs one approve/reject action. Acting on a terminal row is reported
// as unchanged with a 200, not an error.
func (h *payrollRowHandler) act(c *gin.Context, name string, fn func(context.Context, string) (*domain.PayrollRow, bool, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rowID := c.Param("rowID")
	logger = logger.With(slog.String("row_id", rowID), slog.String("action", name))

	row, changed, err := fn(c.Request.Context(), rowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payroll row not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Row not found"})
		} else {
			logger.Error("Failed to act on payroll row", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update row"})
		}
		return
	}

	if changed {
		logger.Info("Payroll row updated",
			slog.String("status", string(row.Status)),
			slog.Int("approvals_left", row.ApprovalsLeft))
	}
	c.JSON(http.StatusOK, dto.PayrollRowActionResponse{
		Row:     dto.ToPayrollRowResponse(row),
		Changed: changed,
	})
}
