package api

import (
	"net/http"

	"tastybite-booking/internal/handler/httperr"
	"tastybite-booking/internal/handler/middleware"
	"tastybite-booking/internal/pkg/errs"
	"tastybite-booking/internal/usecase/commands"
	"tastybite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	bookingCommands    commands.BookingCommands
	reservationQueries queries.ReservationQueries
}

func NewReservationHandler(bookingCommands commands.BookingCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		bookingCommands:    bookingCommands,
		reservationQueries: reservationQueries,
	}
}

// @Summary Get my reservations
// @Description List the authenticated guest's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationListItem
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) GetMyReservations(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	items, err := h.reservationQueries.ListMine(c.Request.Context(), identity.Token)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Cancel reservation
// @Description Cancel an existing reservation by its reference
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation reference (RES-XXXXXX)"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	if err := h.bookingCommands.CancelReservation(c.Request.Context(), identity.Token, c.Param("id")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
