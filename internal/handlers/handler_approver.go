package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/paydeck/bank_portal_app/internal/core/ports/services"
	"github.com/paydeck/bank_portal_app/internal/dto"
	"github.com/paydeck/bank_portal_app/internal/middleware"
)

// approverHandler serves the approver directory behind the batch picker.
type approverHandler struct {
	approverService portssvc.ApproverSvcFacade
}

func newApproverHandler(as portssvc.ApproverSvcFacade) *approverHandler {
	return &approverHandler{approverService: as}
}

func registerApproverRoutes(rg *gin.RouterGroup, approverService portssvc.ApproverSvcFacade) {
	h := newApproverHandler(approverService)

	rg.GET("/approvers", h.searchApprovers)
}

func (h *approverHandler) searchApprovers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	search := c.Query("search")
	var excludeIDs []string
	if exclude := c.Query("excludeIDs"); exclude != "" {
		for _, id := range strings.Split(exclude, ",") {
			if id = strings.TrimSpace(id); id != "" {
				excludeIDs = append(excludeIDs, id)
			}
		}
	}

	approvers, err := h.approverService.SearchApprovers(c.Request.Context(), search, excludeIDs)
	if err != nil {
		logger.Error("Failed to search approvers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve approvers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToApproverResponses(approvers))
}
