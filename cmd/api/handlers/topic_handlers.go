package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-hub/cmd/internal/content"
)

// ListGuestsHandler godoc
// @Summary      List guests
// @Tags         guests
// @Produce      json
// @Success      200  {array}  models.GuestProfile
// @Router       /api/v1/guests [get]
func ListGuestsHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.Guests(c.Request.Context()))
	}
}

// GetGuestHandler godoc
// @Summary      Get guest by slug
// @Description  Guest profile with the guest's episodes
// @Tags         guests
// @Param        slug  path  string  true  "Guest slug"
// @Produce      json
// @Success      200  {object}  content.GuestPage
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/guests/{slug} [get]
func GetGuestHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := gw.GuestPage(c.Request.Context(), c.Param("slug"))
		if page == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ListTopicsHandler godoc
// @Summary      List topics
// @Description  Topics with episode and article counts
// @Tags         topics
// @Produce      json
// @Success      200  {array}  models.Topic
// @Router       /api/v1/topics [get]
func ListTopicsHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.Topics(c.Request.Context()))
	}
}

// GetTopicHandler godoc
// @Summary      Get topic page
// @Description  Topic with related episodes, articles and guests
// @Tags         topics
// @Param        slug  path  string  true  "Topic slug"
// @Produce      json
// @Success      200  {object}  content.TopicPage
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/topics/{slug} [get]
func GetTopicHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := gw.TopicPage(c.Request.Context(), c.Param("slug"))
		if page == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// RelatedEpisodesHandler godoc
// @Summary      Episodes of a topic
// @Tags         topics
// @Param        slug  path  string  true  "Topic slug"
// @Produce      json
// @Success      200  {array}  models.Episode
// @Router       /api/v1/topics/{slug}/episodes [get]
func RelatedEpisodesHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.RelatedEpisodes(c.Request.Context(), c.Param("slug")))
	}
}

// RelatedArticlesHandler godoc
// @Summary      Articles of a topic
// @Tags         topics
// @Param        slug  path  string  true  "Topic slug"
// @Produce      json
// @Success      200  {array}  models.Article
// @Router       /api/v1/topics/{slug}/articles [get]
func RelatedArticlesHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.RelatedArticles(c.Request.Context(), c.Param("slug")))
	}
}

// RelatedGuestsHandler godoc
// @Summary      Guests of a topic
// @Tags         topics
// @Param        slug  path  string  true  "Topic slug"
// @Produce      json
// @Success      200  {array}  models.GuestProfile
// @Router       /api/v1/topics/{slug}/guests [get]
func RelatedGuestsHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.RelatedGuests(c.Request.Context(), c.Param("slug")))
	}
}
