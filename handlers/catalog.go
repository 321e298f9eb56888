package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/models"
	"barberbook/services/catalog"
)

// CreateTypeHandler adds a bookable appointment type.
func (hb *HandlerBundle) CreateTypeHandler(c *gin.Context) {
	var t models.AppointmentType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Catalog.Create(c.Request.Context(), t)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTypeHandler edits an appointment type.
func (hb *HandlerBundle) UpdateTypeHandler(c *gin.Context) {
	var t models.AppointmentType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := hb.Catalog.Update(c.Request.Context(), t)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment type not found"})
		case errors.Is(err, catalog.ErrNameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTypeHandler removes an appointment type.
func (hb *HandlerBundle) DeleteTypeHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment type not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete appointment type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment type deleted"})
}
