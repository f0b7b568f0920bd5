package api

import (
	"context"
	"errors"
	"net/http"

	"tastybite-booking/internal/domain/booking"
	reqdto "tastybite-booking/internal/handler/dto/request"
	"tastybite-booking/internal/handler/httperr"
	"tastybite-booking/internal/handler/middleware"
	"tastybite-booking/internal/pkg/errs"
	"tastybite-booking/internal/usecase/commands"
	"tastybite-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	sessionQueries  queries.SessionQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, sessionQueries queries.SessionQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		sessionQueries:  sessionQueries,
	}
}

// @Summary Start booking session
// @Description Start a new table booking wizard session
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Success 201 {object} queries.SessionView
// @Failure 401 {object} map[string]string
// @Router /booking/sessions [post]
func (h *BookingHandler) StartSession(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.bookingCommands.StartSession(c.Request.Context(), identity.Token)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Get booking session
// @Description Get the current state of a booking session
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 404 {object} map[string]string
// @Router /booking/sessions/{id} [get]
func (h *BookingHandler) GetSession(c *gin.Context) {
	identity, sessionID, ok := h.sessionContext(c)
	if !ok {
		return
	}

	view, err := h.sessionQueries.Get(c.Request.Context(), identity.UserID, sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Search availability
// @Description Submit search criteria and check table availability
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SearchRequest true "Search criteria"
// @Success 200 {object} queries.SessionView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /booking/sessions/{id}/search [post]
func (h *BookingHandler) Search(c *gin.Context) {
	identity, sessionID, ok := h.sessionContext(c)
	if !ok {
		return
	}

	var req reqdto.SearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.Search(c.Request.Context(), identity.Token, sessionID, commands.SearchParams{
		Date:      req.Date,
		Time:      req.Time,
		PartySize: req.PartySize,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select alternative slot
// @Description Resolve one of the offered alternative times
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectAlternativeRequest true "Alternative time"
// @Success 200 {object} queries.SessionView
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{id}/alternative [post]
func (h *BookingHandler) SelectAlternative(c *gin.Context) {
	identity, sessionID, ok := h.sessionContext(c)
	if !ok {
		return
	}

	var req reqdto.SelectAlternativeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.bookingCommands.SelectAlternative(c.Request.Context(), identity.Token, sessionID, req.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Proceed to details
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 422 {object} map[string]string
// @Router /booking/sessions/{id}/proceed [post]
func (h *BookingHandler) Proceed(c *gin.Context) {
	h.sessionAction(c, h.bookingCommands.Proceed)
}

// @Summary Go back one step
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Router /booking/sessions/{id}/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	h.sessionAction(c, h.bookingCommands.Back)
}

// @Summary Update guest details
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateDetailsRequest true "Guest details"
// @Success 200 {object} queries.SessionView
// @Router /booking/sessions/{id}/details [put]
func (h *BookingHandler) UpdateDetails(c *gin.Context) {
	identity, sessionID, ok := h.sessionContext(c)
	if !ok {
		return
	}

	var req reqdto.UpdateDetailsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	details := booking.GuestDetails{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		SpecialRequests: req.SpecialRequests,
	}
	view, err := h.bookingCommands.UpdateDetails(c.Request.Context(), identity.Token, sessionID, details)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm reservation
// @Description Submit the booking for the resolved slot and guest details
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /booking/sessions/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.sessionAction(c, h.bookingCommands.Confirm)
}

// @Summary Start a new reservation
// @Description Discard the current run and return to the search step
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} queries.SessionView
// @Router /booking/sessions/{id}/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	h.sessionAction(c, h.bookingCommands.Reset)
}

func (h *BookingHandler) sessionContext(c *gin.Context) (*commands.Identity, uuid.UUID, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
		return nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID format"})
		return nil, uuid.Nil, false
	}
	return identity, sessionID, true
}

func (h *BookingHandler) sessionAction(c *gin.Context, action func(ctx context.Context, token string, sessionID uuid.UUID) (*queries.SessionView, error)) {
	identity, sessionID, ok := h.sessionContext(c)
	if !ok {
		return
	}

	view, err := action(c.Request.Context(), identity.Token, sessionID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	case errors.Is(err, errs.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking session not found"})
	case errors.Is(err, errs.ErrActionInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Another action is in progress"})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Action not allowed in current step"})
	case errors.Is(err, booking.ErrSlotNotResolved):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No slot resolved yet"})
	case errors.Is(err, booking.ErrUnknownAlternative):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Selected time was not offered"})
	case errors.Is(err, booking.ErrDetailsIncomplete):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Full name, phone and email are required"})
	case errors.Is(err, errs.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search criteria"})
	case errors.Is(err, errs.ErrAvailabilityService):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not check table availability"})
	case errors.Is(err, errs.ErrConfirmationService):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not confirm the reservation"})
	case errors.Is(err, errs.ErrReservationService):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Reservation service unavailable"})
	case errors.Is(err, errs.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
