package handlers

import (
	"net/http"

	"classifieds_backend/internal/dto"
	"classifieds_backend/internal/services"
	"classifieds_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	*BaseHandler
	adService services.AdService
}

func NewAdHandler(base *BaseHandler, adService services.AdService) *AdHandler {
	return &AdHandler{
		BaseHandler: base,
		adService:   adService,
	}
}

func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ads := rg.Group("/ads")
	{
		ads.POST("", h.Create)
		ads.GET("", h.List)
		ads.GET("/:ad_id", h.Get)
		ads.DELETE("/:ad_id", h.Deactivate)
	}
}

// Create handles the multipart ad form with an optional image file.
func (h *AdHandler) Create(c *gin.Context) {
	var form dto.CreateAdForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	// The image part is optional; a missing file is not an error.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	resp, err := h.adService.Create(c.Request.Context(), &form, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AdHandler) List(c *gin.Context) {
	var query dto.ListAdsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.adService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns a single ad; every call counts one view.
func (h *AdHandler) Get(c *gin.Context) {
	adID := c.Param("ad_id")

	resp, err := h.adService.GetAndCountView(c.Request.Context(), adID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deactivate soft-deletes an ad. The owning user id arrives as a query
// parameter because no session identifies the caller.
func (h *AdHandler) Deactivate(c *gin.Context) {
	adID := c.Param("ad_id")
	userID := c.Query("user_id")
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required query parameter: user_id"))
		return
	}

	if err := h.adService.Deactivate(adID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad deactivated"})
}
