package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paydeck/bank_portal_app/internal/apperrors"
	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/middleware"
	"github.com/paydeck/bank_portal_app/internal/platform/config"
)

// payrollHandler handles the draft working set, CSV bulk upload, and the
// batch lifecycle.
type payrollHandler struct {
	payrollService  portssvc.PayrollSvcFacade
	defaultPageSize int
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade, defaultPageSize int) *payrollHandler {
	return &payrollHandler{
		payrollService:  ps,
		defaultPageSize: defaultPageSize,
	}
}

// registerPayrollRoutes registers draft, import, and batch routes.
func registerPayrollRoutes(rg *gin.RouterGroup, cfg *config.Config, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService, cfg.DefaultPageSize)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("/transactions", h.listDrafts)
		payroll.POST("/transactions", h.addDraft)
		payroll.PUT("/transactions/:id", h.updateDraft)
		payroll.DELETE("/transactions/:id", h.deleteDraft)

		payroll.POST("/imports", h.previewImport)
		payroll.POST("/imports/commit", h.commitImport)

		payroll.POST("/batches", h.createBatch)
		payroll.GET("/batches/pending", h.listPendingBatches)
		payroll.GET("/batches/history", h.listHistory)
		payroll.POST("/batches/:batchID/approve", h.approveBatch)
	}
}

func (h *payrollHandler) listDrafts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	drafts, err := h.payrollService.ListDrafts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list drafts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftListResponse(drafts))
}

func (h *payrollHandler) addDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePayrollTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	txn, err := h.payrollService.AddDraft(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding draft", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add draft", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add transaction"})
		}
		return
	}

	logger.Info("Draft transaction added", slog.String("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.ToPayrollTransactionResponse(txn))
}

func (h *payrollHandler) updateDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("transaction_id", id))

	var req dto.CreatePayrollTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	txn, err := h.payrollService.UpdateDraft(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Draft transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating draft", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update draft", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayrollTransactionResponse(txn))
}

func (h *payrollHandler) deleteDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id := c.Param("id")
	logger = logger.With(slog.String("transaction_id", id))

	if err := h.payrollService.DeleteDraft(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Draft transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete draft", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *payrollHandler) previewImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing upload file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	rows, err := h.payrollService.PreviewImport(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrParse) {
			logger.Warn("Unreadable CSV upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to preview import", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToImportPreviewResponse(rows))
}

func (h *payrollHandler) commitImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing upload file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	added, skipped, err := h.payrollService.CommitImport(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, apperrors.ErrParse) {
			logger.Warn("Unreadable CSV upload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit import", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		}
		return
	}

	logger.Info("Bulk upload committed",
		slog.Int("added", len(added)),
		slog.Int("skipped", skipped))
	c.JSON(http.StatusOK, dto.ImportCommitResponse{
		Added:   dto.ToPayrollTransactionResponses(added),
		Skipped: skipped,
	})
}

func (h *payrollHandler) createBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	batch, err := h.payrollService.CreateBatch(c.Request.Context(), req.ApproverIDs)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating batch", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Unknown approver in batch request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create batch"})
		}
		return
	}

	logger.Info("Batch created",
		slog.String("batch_id", batch.BatchID),
		slog.Int("transactions", len(batch.Transactions)))
	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch))
}

func (h *payrollHandler) listPendingBatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	batches, err := h.payrollService.ListPendingBatches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pending batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve batches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchResponses(batches))
}

func (h *payrollHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.defaultPageSize)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	batches, totalPages, err := h.payrollService.ListHistory(c.Request.Context(), pageSize, page)
	if err != nil {
		logger.Error("Failed to list batch history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		return
	}

	c.JSON(http.StatusOK, dto.BatchHistoryResponse{
		Batches:    dto.ToBatchResponses(batches),
		TotalPages: totalPages,
	})
}

func (h *payrollHandler) approveBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")
	logger = logger.With(slog.String("batch_id", batchID))

	batch, err := h.payrollService.ApproveBatch(c.Request.Context(), batchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Batch not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			logger.Warn("Batch not approvable", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to approve batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve batch"})
		}
		return
	}

	logger.Info("Batch approved")
	c.JSON(http.StatusOK, dto.ToBatchResponse(batch))
}
