package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type uploadFunc func(ctx context.Context, file io.Reader) (string, error)

// UpdateBusinessNameHandler renames the storefront.
func (hb *HandlerBundle) UpdateBusinessNameHandler(c *gin.Context) {
	var req struct {
		BusinessName string `json:"businessName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BusinessName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "businessName is required"})
		return
	}

	if err := hb.Store.SetBusinessName(c.Request.Context(), req.BusinessName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update business name"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"businessName": req.BusinessName})
}

// UploadCoverImageHandler replaces the storefront cover image.
func (hb *HandlerBundle) UploadCoverImageHandler(c *gin.Context) {
	hb.uploadImageHandler(c, hb.Store.UploadCoverImage)
}

// UploadLogoImageHandler replaces the storefront logo.
func (hb *HandlerBundle) UploadLogoImageHandler(c *gin.Context) {
	hb.uploadImageHandler(c, hb.Store.UploadLogoImage)
}

func (hb *HandlerBundle) uploadImageHandler(c *gin.Context, upload uploadFunc) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := upload(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
