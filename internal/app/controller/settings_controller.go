package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/app/service"
	apperrors "github.com/digimarketpro/digimarket-backend/internal/errors"
	"github.com/digimarketpro/digimarket-backend/internal/middleware"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// GetSettings returns the store configuration the storefront renders from
// GET /api/v1/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings": ctrl.settingsService.Get(c.Request.Context()),
	})
}

// UpdateSettings replaces the store configuration wholesale
// PUT /api/v1/admin/settings
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var settings model.StoreSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Settings payload is invalid")
		return
	}

	updated, err := ctrl.settingsService.Update(c.Request.Context(), settings)
	if err != nil {
		log.Error("Failed to update settings", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": updated})
}

// GetMeta resolves document title and description for a storefront view.
// The id query parameter carries a product id or a slug, depending on the
// view.
// GET /api/v1/meta/:view?id=
func (ctrl *SettingsController) GetMeta(c *gin.Context) {
	meta, err := ctrl.settingsService.ResolveSEO(c.Request.Context(), c.Param("view"), c.Query("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownView):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Unknown view: "+c.Param("view"))
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		case errors.Is(err, service.ErrPageNotFound):
			apperrors.NotFound(c, apperrors.PageNotFound, "Page not found")
		case errors.Is(err, service.ErrPostNotFound):
			apperrors.NotFound(c, apperrors.PostNotFound, "Blog post not found")
		default:
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, meta)
}
