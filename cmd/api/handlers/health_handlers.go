package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"content-hub/cmd/api/dto"
	"content-hub/cmd/api/middleware"
	"content-hub/cmd/internal/content"
)

const healthTimeout = 3 * time.Second

// HealthHandler godoc
// @Summary      Health check
// @Description  The API always serves content; status is degraded while the CMS is down
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", middleware.NoStore)
		if !gw.Status().Enabled {
			c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", CMS: "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if !gw.Health(ctx) {
			c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "degraded", CMS: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", CMS: "up"})
	}
}

// StatusHandler godoc
// @Summary      Content source status
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponseDTO
// @Router       /status [get]
func StatusHandler(gw *content.Gateway, revalidateSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := gw.Status()
		c.Header("Cache-Control", middleware.NoStore)
		c.JSON(http.StatusOK, dto.StatusResponseDTO{
			CMSEnabled:        st.Enabled,
			CMSURL:            st.URL,
			CMSAPIBase:        st.APIBase,
			RevalidateSeconds: revalidateSeconds,
		})
	}
}
