package api

import (
	"errors"
	"net/http"

	reqdto "circulation/internal/handler/dto/request"
	resdto "circulation/internal/handler/dto/response"
	"circulation/internal/handler/middleware"
	"circulation/internal/infra"
	"circulation/internal/pkg/clock"
	"circulation/internal/pkg/jwt"
	"circulation/internal/usecase/commands"
	"circulation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BorrowHandler struct {
	lending       commands.LendingCommands
	borrowQueries queries.BorrowQueries
	clock         clock.Clock
}

func NewBorrowHandler(lending commands.LendingCommands, borrowQueries queries.BorrowQueries, clk clock.Clock) *BorrowHandler {
	return &BorrowHandler{
		lending:       lending,
		borrowQueries: borrowQueries,
		clock:         clk,
	}
}

// @Summary Borrow an item
// @Description Check an available item out to the calling patron
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BorrowBookRequest true "Borrow request"
// @Success 201 {object} resdto.BorrowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /borrows [post]
func (h *BorrowHandler) BorrowBook(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BorrowBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	b, err := h.lending.BorrowBook(c.Request.Context(), patronID, req.ItemID, req.DurationDays)
	if err != nil {
		h.writeLendingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBorrow(b, h.clock.Now()))
}

// @Summary Return a borrowed item
// @Description Close the borrow and hand the item to the reservation queue
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow ID"
// @Success 200 {object} resdto.BorrowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /borrows/{id}/return [post]
func (h *BorrowHandler) ReturnBook(c *gin.Context) {
	borrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid borrow ID",
		})
		return
	}

	b, err := h.lending.ReturnBook(c.Request.Context(), borrowID)
	if err != nil {
		h.writeLendingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBorrow(b, h.clock.Now()))
}

// @Summary Renew a borrow
// @Description Extend the due date when nobody is waiting and the cap allows
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow ID"
// @Param request body reqdto.RenewBorrowRequest false "Renewal request"
// @Success 200 {object} resdto.BorrowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /borrows/{id}/renew [post]
func (h *BorrowHandler) RenewBorrow(c *gin.Context) {
	borrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid borrow ID",
		})
		return
	}

	var req reqdto.RenewBorrowRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	b, err := h.lending.RenewBorrow(c.Request.Context(), borrowID, req.ExtraDays)
	if err != nil {
		h.writeLendingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBorrow(b, h.clock.Now()))
}

// @Summary List active borrows
// @Description Active borrows for the calling patron, overdue first
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BorrowResponse
// @Failure 401 {object} map[string]string
// @Router /borrows [get]
func (h *BorrowHandler) GetActiveBorrows(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.borrowQueries.ActiveByPatron(c.Request.Context(), patronID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.BorrowResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromBorrowView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get borrow
// @Description Get one borrow by ID
// @Tags borrows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Borrow ID"
// @Success 200 {object} resdto.BorrowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /borrows/{id} [get]
func (h *BorrowHandler) GetBorrow(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	borrowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid borrow ID",
		})
		return
	}

	view, err := h.borrowQueries.GetByID(c.Request.Context(), borrowID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Borrow not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	role, _ := middleware.GetRole(c)
	if view.PatronID != patronID && role != jwt.RoleStaff {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Borrow not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBorrowView(view))
}

func (h *BorrowHandler) writeLendingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrBorrowNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Borrow not found",
		})
	case errors.Is(err, commands.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid duration",
		})
	case errors.Is(err, commands.ErrItemUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Item is not available",
		})
	case errors.Is(err, commands.ErrBorrowLimitExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Borrow limit exceeded",
		})
	case errors.Is(err, commands.ErrReservationPending):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Another patron is waiting for this item",
		})
	case errors.Is(err, commands.ErrRenewalLimitReached):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Renewal limit reached",
		})
	case errors.Is(err, commands.ErrTransientConflict):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Temporary conflict, please retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
