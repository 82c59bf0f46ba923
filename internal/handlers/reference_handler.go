package handlers

import (
	"net/http"
	"time"

	"classifieds_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static reference data and the health probe.
type ReferenceHandler struct {
	*BaseHandler
}

func NewReferenceHandler(base *BaseHandler) *ReferenceHandler {
	return &ReferenceHandler{BaseHandler: base}
}

func (h *ReferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/locations", h.Locations)
	rg.GET("/categories", h.Categories)
}

func (h *ReferenceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

func (h *ReferenceHandler) Locations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations": models.LocationStrings(),
	})
}

func (h *ReferenceHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.CategoryStrings(),
	})
}
