package api

import (
	"errors"
	"net/http"

	reqdto "circulation/internal/handler/dto/request"
	resdto "circulation/internal/handler/dto/response"
	"circulation/internal/handler/middleware"
	"circulation/internal/infra"
	"circulation/internal/pkg/jwt"
	"circulation/internal/usecase/commands"
	"circulation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations       commands.ReservationCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(reservations commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservations:       reservations,
		reservationQueries: reservationQueries,
	}
}

// @Summary Reserve an item
// @Description Join the FIFO queue for an item that is currently checked out
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveBookRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) ReserveBook(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ReserveBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	res, err := h.reservations.ReserveBook(c.Request.Context(), patronID, req.ItemID)
	if err != nil {
		h.writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Cancel a reservation
// @Description Cancel the calling patron's reservation; idempotent
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	res, err := h.reservations.CancelReservation(c.Request.Context(), reservationID)
	if err != nil {
		h.writeReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary List reservations
// @Description Reservations for the calling patron, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetPatronReservations(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByPatron(c.Request.Context(), patronID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.ReservationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, resdto.FromReservationView(v))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Get reservation
// @Description Get one reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
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
			"error": "Reservation not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Queue position
// @Description 1-based position of the calling patron in an item's queue
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.QueuePositionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/queue-position [get]
func (h *ReservationHandler) GetQueuePosition(c *gin.Context) {
	patronID, ok := middleware.GetPatronID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID",
		})
		return
	}

	view, err := h.reservationQueries.QueuePosition(c.Request.Context(), itemID, patronID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active reservation for this item",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQueuePosition(view))
}

func (h *ReservationHandler) writeReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrItemAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Item is available, borrow it instead",
		})
	case errors.Is(err, commands.ErrAlreadyHoldingItem):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Patron already holds this item",
		})
	case errors.Is(err, commands.ErrDuplicateReservation):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Active reservation already exists",
		})
	case errors.Is(err, commands.ErrReservationNotActive):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation is no longer active",
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
