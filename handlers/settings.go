package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/services/store"
)

// SettingsHandler lists the owner settings.
func (hb *HandlerBundle) SettingsHandler(c *gin.Context) {
	settings, err := hb.Store.Settings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// CreateSettingHandler adds a key/value setting.
func (hb *HandlerBundle) CreateSettingHandler(c *gin.Context) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	setting, err := hb.Store.CreateSetting(c.Request.Context(), req.Key, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, setting)
}

// UpdateSettingHandler changes a setting's value.
func (hb *HandlerBundle) UpdateSettingHandler(c *gin.Context) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	setting, err := hb.Store.UpdateSetting(c.Request.Context(), req.Key, req.Value)
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update setting"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// DeleteSettingHandler removes a setting.
func (hb *HandlerBundle) DeleteSettingHandler(c *gin.Context) {
	var req struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	if err := hb.Store.DeleteSetting(c.Request.Context(), req.Key); err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "setting deleted"})
}
