package api

import (
	"errors"
	"net/http"

	reqdto "circulation/internal/handler/dto/request"
	resdto "circulation/internal/handler/dto/response"
	"circulation/internal/pkg/clock"
	"circulation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	overdue commands.OverdueCommands
	catalog commands.CatalogCommands
	clock   clock.Clock
}

func NewAdminHandler(overdue commands.OverdueCommands, catalog commands.CatalogCommands, clk clock.Clock) *AdminHandler {
	return &AdminHandler{
		overdue: overdue,
		catalog: catalog,
		clock:   clk,
	}
}

// @Summary Run the overdue sweep
// @Description Recompute fines for every active borrow past due
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SweepOverdueRequest false "Sweep options"
// @Success 200 {object} resdto.SweepReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/sweeps/overdue [post]
func (h *AdminHandler) SweepOverdue(c *gin.Context) {
	var req reqdto.SweepOverdueRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	asOf := h.clock.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	report, err := h.overdue.ProcessOverdue(c.Request.Context(), asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReport(report))
}

// @Summary Update item metadata
// @Description Update title/author and fan the change out to cached snapshots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemMetadataRequest true "New metadata"
// @Success 200 {object} resdto.SyncResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/items/{id}/metadata [put]
func (h *AdminHandler) UpdateItemMetadata(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	var req reqdto.UpdateItemMetadataRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.catalog.SyncItemMetadata(c.Request.Context(), itemID, req.Title, req.Author)
	if err != nil {
		if errors.Is(err, commands.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}
