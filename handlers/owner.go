package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/services/owner"
)

// OwnerLoginHandler authenticates the business owner.
func (hb *HandlerBundle) OwnerLoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := hb.Owner.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, owner.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// OwnerRestorePasswordHandler changes the authenticated owner's
// password.
func (hb *HandlerBundle) OwnerRestorePasswordHandler(c *gin.Context) {
	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	username := c.GetString("ownerUsername")
	if err := hb.Owner.RestorePassword(c.Request.Context(), username, req.NewPassword); err != nil {
		if errors.Is(err, owner.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// OwnerAppointmentsByDateHandler returns the day's bookings with
// customer names.
func (hb *HandlerBundle) OwnerAppointmentsByDateHandler(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	appts, err := hb.Owner.AppointmentsByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// OwnerCancellationsHandler returns the day's cancellation snapshots,
// flagged when the cancel landed inside the late window.
func (hb *HandlerBundle) OwnerCancellationsHandler(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	recs, err := hb.Owner.CancellationsByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cancellations"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// OwnerCountAppointmentsHandler counts bookings over an inclusive date
// range.
func (hb *HandlerBundle) OwnerCountAppointmentsHandler(c *gin.Context) {
	var req struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be YYYY-MM-DD"})
		return
	}

	count, err := hb.Owner.CountAppointments(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// OwnerDeleteAppointmentHandler removes a booking on the owner's
// behalf.
func (hb *HandlerBundle) OwnerDeleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Owner.DeleteAppointment(c.Request.Context(), id); err != nil {
		if errors.Is(err, owner.ErrAppointmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

// OwnerBroadcastHandler texts every registered customer.
func (hb *HandlerBundle) OwnerBroadcastHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	sent, err := hb.Owner.BroadcastMessage(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send broadcast"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
