package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/models"
	"barberbook/services/schedule"
)

func scheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, schedule.ErrInvalidWeekday):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// WorkingHoursHandler lists the weekly working hours.
func (hb *HandlerBundle) WorkingHoursHandler(c *gin.Context) {
	hours, err := hb.Schedule.WorkingHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch working hours"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

// AddWorkingHoursHandler adds a working window for a weekday.
func (hb *HandlerBundle) AddWorkingHoursHandler(c *gin.Context) {
	var wh models.WorkingHours
	if err := c.ShouldBindJSON(&wh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Schedule.AddWorkingHours(c.Request.Context(), wh)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateWorkingHoursHandler edits a working window.
func (hb *HandlerBundle) UpdateWorkingHoursHandler(c *gin.Context) {
	var wh models.WorkingHours
	if err := c.ShouldBindJSON(&wh); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := hb.Schedule.UpdateWorkingHours(c.Request.Context(), wh)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteWorkingHoursHandler removes a working window.
func (hb *HandlerBundle) DeleteWorkingHoursHandler(c *gin.Context) {
	if err := hb.Schedule.DeleteWorkingHours(c.Request.Context(), c.Param("id")); err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working hours deleted"})
}

// DaysOffHandler lists the weekly days off.
func (hb *HandlerBundle) DaysOffHandler(c *gin.Context) {
	days, err := hb.Schedule.DaysOff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch days off"})
		return
	}
	c.JSON(http.StatusOK, days)
}

// AddDayOffHandler marks a weekday as closed.
func (hb *HandlerBundle) AddDayOffHandler(c *gin.Context) {
	var req struct {
		DayOfWeek string `json:"dayOfWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Schedule.AddDayOff(c.Request.Context(), req.DayOfWeek)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteDayOffHandler reopens a weekday.
func (hb *HandlerBundle) DeleteDayOffHandler(c *gin.Context) {
	if err := hb.Schedule.DeleteDayOff(c.Request.Context(), c.Param("day")); err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "day off deleted"})
}

// VacationsHandler lists vacations that have not ended yet.
func (hb *HandlerBundle) VacationsHandler(c *gin.Context) {
	vacations, err := hb.Schedule.Vacations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vacations"})
		return
	}
	c.JSON(http.StatusOK, vacations)
}

// AddVacationHandler adds a closed date range.
func (hb *HandlerBundle) AddVacationHandler(c *gin.Context) {
	var v models.Vacation
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Schedule.AddVacation(c.Request.Context(), v)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateVacationHandler edits a vacation range.
func (hb *HandlerBundle) UpdateVacationHandler(c *gin.Context) {
	var v models.Vacation
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := hb.Schedule.UpdateVacation(c.Request.Context(), v)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVacationHandler removes a vacation range.
func (hb *HandlerBundle) DeleteVacationHandler(c *gin.Context) {
	if err := hb.Schedule.DeleteVacation(c.Request.Context(), c.Param("id")); err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vacation deleted"})
}
