package handlers

import (
	"errors"
	"net/http"

	bookingRepo "fittribe/database/repository/booking"
	"fittribe/models"
	"fittribe/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking draft pipeline and booking history endpoints.
type BookingHandler struct {
	Pipeline booking.DraftPipeline
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(pipeline booking.DraftPipeline, bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Pipeline: pipeline, Bookings: bookings, Logger: logger}
}

// CreateDraft validates the booking form and stores a pending draft for the
// authenticated client, replacing any prior draft.
func (h *BookingHandler) CreateDraft(c *gin.Context) {
	clientID := c.GetString("userID")

	var input models.DraftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Pipeline.CreateDraft(c.Request.Context(), clientID, input)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"draft": draft})
}

// GetDraft returns the client's current draft, or a "booking not found" state.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	clientID := c.GetString("userID")

	draft, err := h.Pipeline.GetDraft(c.Request.Context(), clientID)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// PayDraft charges the draft and transitions it from pending to paid.
func (h *BookingHandler) PayDraft(c *gin.Context) {
	clientID := c.GetString("userID")
	draftID := c.Param("draftID")

	draft, err := h.Pipeline.MarkPaid(c.Request.Context(), clientID, draftID)
	if err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// CancelDraft clears the client's draft slot. Idempotent.
func (h *BookingHandler) CancelDraft(c *gin.Context) {
	clientID := c.GetString("userID")

	if err := h.Pipeline.CancelDraft(c.Request.Context(), clientID); err != nil {
		h.renderDraftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "draft cancelled"})
}

// ListBookings returns the caller's confirmed bookings for the dashboard,
// by client for clients and by trainer for trainers.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString("userID")
	role := c.GetString("role")

	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleTrainer {
		bookings, err = h.Bookings.GetByTrainer(userID)
	} else {
		bookings, err = h.Bookings.GetByClient(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings", "details": err.Error()})
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking marks a confirmed booking as cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	existing, err := h.Bookings.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking", "details": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if existing.ClientID != userID && existing.TrainerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your booking"})
		return
	}

	if err := h.Bookings.UpdateStatus(id, models.BookingStatusCancelled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// ListTimeSlots returns the offered time slots and allowed durations for the
// booking form.
func (h *BookingHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"slots":     booking.TimeSlots,
		"durations": booking.Durations,
	})
}

// renderDraftError maps pipeline errors onto HTTP responses. NotFound and
// mismatch render the same user-facing "booking not found" state.
func (h *BookingHandler) renderDraftError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		mismatchErr   *booking.DraftMismatchError
		stateErr      *booking.StateError
		transientErr  *booking.TransientError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, booking.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found. Please start a new booking."})
	case errors.As(err, &mismatchErr):
		h.Logger.Warn("Draft mismatch", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found. Please start a new booking."})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
	case errors.As(err, &transientErr):
		h.Logger.Error("Transient booking failure", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Something went wrong. Please try again."})
	default:
		h.Logger.Error("Booking pipeline failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process booking", "details": err.Error()})
	}
}
