package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thibautrey/PebbleShopApp/internal/domain/dto"
	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
	"github.com/thibautrey/PebbleShopApp/internal/middleware"
)

// GetSettings handles GET /api/v1/settings requests.
//
// GetSettings godoc
// @Summary      Read store connection settings
// @Description  Returns the persisted settings with the access token redacted
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.svc.Settings()
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{
		Domain:     s.Domain,
		TokenSet:   s.Token != "",
		Timezone:   s.Timezone,
		Configured: s.Configured(),
	})
}

// UpdateSettings handles PUT /api/v1/settings requests.
//
// Saving new settings invalidates the whole sales cache so the next
// request cannot serve totals from the previous store.
//
// UpdateSettings godoc
// @Summary      Update store connection settings
// @Description  Persists domain/token/timezone (domain stored without scheme) and clears the sales cache
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SettingsRequest  true  "New settings"
// @Success      200      {object}  dto.SettingsResponse
// @Failure      400      {object}  dto.ErrorResponse    "Malformed body or bad timezone offset"
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req dto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	in := models.Settings{Domain: req.Domain, Token: req.Token, Timezone: req.Timezone}.Normalize()
	if !in.ValidOffset() {
		middleware.AbortWithError(c, http.StatusBadRequest, "timezone must match +HH:MM or -HH:MM", nil)
		return
	}

	saved, err := h.svc.UpdateSettings(in)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to save settings", err)
		return
	}

	c.JSON(http.StatusOK, dto.SettingsResponse{
		Domain:     saved.Domain,
		TokenSet:   saved.Token != "",
		Timezone:   saved.Timezone,
		Configured: saved.Configured(),
	})
}
