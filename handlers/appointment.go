package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"barberbook/services/availability"
	"barberbook/services/booking"
	"barberbook/services/store"
)

// AvailableDatesHandler returns the dates in a range that are not
// blocked by a day off or vacation. A returned date may still be fully
// booked; the per-date times endpoint is the authority on free slots.
func (hb *HandlerBundle) AvailableDatesHandler(c *gin.Context) {
	var req struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		Type      string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be YYYY-MM-DD"})
		return
	}
	if req.StartDate > req.EndDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must not be after endDate"})
		return
	}

	dates, err := hb.Availability.AvailableDates(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute available dates"})
		return
	}
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, dates)
}

// AvailableTimesHandler returns the free start times for one date and
// appointment type, keyed by the date. Unknown types and blocked or
// past dates yield an empty list, not an error.
func (hb *HandlerBundle) AvailableTimesHandler(c *gin.Context) {
	var req struct {
		Date            string `json:"date"`
		AppointmentType string `json:"appointmentType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !validDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.AppointmentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentType is required"})
		return
	}

	times, err := hb.Availability.AvailableTimes(c.Request.Context(), req.Date, req.AppointmentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute available times"})
		return
	}
	c.JSON(http.StatusOK, gin.H{req.Date: times})
}

// CreateAppointmentHandler books a slot for the authenticated customer.
func (hb *HandlerBundle) CreateAppointmentHandler(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ID == "" || req.Type == "" || !validDate(req.Date) || req.StartTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id, type, date and startTime are required"})
		return
	}
	if req.Phone != c.GetString("phone") {
		c.JSON(http.StatusForbidden, gin.H{"error": "phone does not match the authenticated user"})
		return
	}

	appt, err := hb.Booking.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDuplicateID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "an appointment with this id already exists"})
		case errors.Is(err, booking.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown appointment type"})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "the requested slot is no longer available"})
		case errors.Is(err, booking.ErrDateBusy):
			c.JSON(http.StatusBadRequest, gin.H{"error": "the date is busy, please try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		}
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CancelAppointmentHandler cancels one of the authenticated customer's
// appointments. The owning phone is taken from the JWT rather than the
// request body, so a caller cannot cancel on behalf of another phone;
// any body sent with the request is ignored.
func (hb *HandlerBundle) CancelAppointmentHandler(c *gin.Context) {
	appointmentID := c.Param("appointmentId")
	phone := c.GetString("phone")

	rec, err := hb.Booking.Cancel(c.Request.Context(), appointmentID, phone)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		case errors.Is(err, booking.ErrPhoneMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": "appointment belongs to another customer"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment canceled", "canceled": rec})
}

// UserAppointmentsHandler lists the authenticated customer's upcoming
// appointments.
func (hb *HandlerBundle) UserAppointmentsHandler(c *gin.Context) {
	phone := c.Param("phone")
	if phone != c.GetString("phone") {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot view another customer's appointments"})
		return
	}

	appts, err := hb.Booking.UpcomingForPhone(c.Request.Context(), phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// ListTypesHandler returns the bookable appointment types.
func (hb *HandlerBundle) ListTypesHandler(c *gin.Context) {
	types, err := hb.Catalog.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointment types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

// BusinessNameHandler returns the public storefront name.
func (hb *HandlerBundle) BusinessNameHandler(c *gin.Context) {
	name, err := hb.Store.BusinessName(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch business name"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businessName": name})
}

// CoverImageHandler returns the storefront cover image URL.
func (hb *HandlerBundle) CoverImageHandler(c *gin.Context) {
	hb.imageURLHandler(c, hb.Store.CoverImageURL)
}

// LogoImageHandler returns the storefront logo image URL.
func (hb *HandlerBundle) LogoImageHandler(c *gin.Context) {
	hb.imageURLHandler(c, hb.Store.LogoImageURL)
}

func (hb *HandlerBundle) imageURLHandler(c *gin.Context, fetch func(ctx context.Context) (string, error)) {
	url, err := fetch(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoImage) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not set"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func validDate(value string) bool {
	_, err := time.Parse(availability.DateLayout, value)
	return err == nil
}
