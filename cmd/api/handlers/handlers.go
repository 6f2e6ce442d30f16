package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-hub/cmd/api/dto"
	"content-hub/cmd/api/middleware"
	"content-hub/cmd/api/services"
	"content-hub/cmd/internal/content"
	"content-hub/filter"
)

func notFound(c *gin.Context) {
	c.Header("Cache-Control", middleware.NoStore)
	c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
}

// HomeHandler godoc
// @Summary      Landing page bundle
// @Description  Featured episode, recent episodes and articles, guests and topics
// @Tags         home
// @Produce      json
// @Success      200  {object}  content.Home
// @Router       /api/v1/home [get]
func HomeHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gw.Home(c.Request.Context()))
	}
}

// ListEpisodesHandler godoc
// @Summary      List episodes
// @Description  List episodes filtered by text query and topic, sorted by date or plays
// @Tags         episodes
// @Param        q      query  string  false  "Text query over title, description and guest name"
// @Param        topic  query  string  false  "Exact topic name; all or empty means every topic"
// @Param        sort   query  string  false  "newest (default), oldest or popular"
// @Produce      json
// @Success      200  {object}  dto.EpisodeListDTO
// @Router       /api/v1/episodes [get]
func ListEpisodesHandler(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		controls := filter.ParseValues(c.Request.URL.Query())
		c.JSON(http.StatusOK, svc.ListEpisodes(c.Request.Context(), controls))
	}
}

// FeaturedEpisodeHandler godoc
// @Summary      Featured episode
// @Tags         episodes
// @Produce      json
// @Success      200  {object}  models.Episode
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/episodes/featured [get]
func FeaturedEpisodeHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ep := gw.FeaturedEpisode(c.Request.Context())
		if ep == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, ep)
	}
}

// GetEpisodeHandler godoc
// @Summary      Get episode by slug
// @Tags         episodes
// @Param        slug  path  string  true  "Episode slug"
// @Produce      json
// @Success      200  {object}  models.Episode
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/episodes/{slug} [get]
func GetEpisodeHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		ep := gw.EpisodeBySlug(c.Request.Context(), c.Param("slug"))
		if ep == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, ep)
	}
}

// ListArticlesHandler godoc
// @Summary      List articles
// @Description  List articles filtered by text query and topic, sorted by date
// @Tags         articles
// @Param        q      query  string  false  "Text query over title, description and author name"
// @Param        topic  query  string  false  "Exact topic name; all or empty means every topic"
// @Param        sort   query  string  false  "newest (default), oldest or popular"
// @Produce      json
// @Success      200  {object}  dto.ArticleListDTO
// @Router       /api/v1/articles [get]
func ListArticlesHandler(svc *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		controls := filter.ParseValues(c.Request.URL.Query())
		c.JSON(http.StatusOK, svc.ListArticles(c.Request.Context(), controls))
	}
}

// GetArticleHandler godoc
// @Summary      Get article by slug
// @Tags         articles
// @Param        slug  path  string  true  "Article slug"
// @Produce      json
// @Success      200  {object}  models.Article
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /api/v1/articles/{slug} [get]
func GetArticleHandler(gw *content.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		a := gw.ArticleBySlug(c.Request.Context(), c.Param("slug"))
		if a == nil {
			notFound(c)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
