package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "content-hub/cmd/api/docs"
	"content-hub/cmd/api/handlers"
	"content-hub/cmd/api/middleware"
	"content-hub/cmd/api/services"
	"content-hub/cmd/internal/content"
	"content-hub/config"
)

// New builds the gin engine. Use Handler to get the CORS-wrapped version
// that main serves.
func New(gw *content.Gateway, cfg config.AppConfig) *gin.Engine {
	catalog := services.NewCatalogService(gw)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	r.GET("/health", handlers.HealthHandler(gw))
	r.GET("/status", handlers.StatusHandler(gw, cfg.CMS.RevalidateSeconds))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1", middleware.CacheControl(cfg.CMS.RevalidateSeconds))
	{
		api.GET("/home", handlers.HomeHandler(gw))

		api.GET("/episodes", handlers.ListEpisodesHandler(catalog))
		api.GET("/episodes/featured", handlers.FeaturedEpisodeHandler(gw))
		api.GET("/episodes/:slug", handlers.GetEpisodeHandler(gw))

		api.GET("/articles", handlers.ListArticlesHandler(catalog))
		api.GET("/articles/:slug", handlers.GetArticleHandler(gw))

		api.GET("/guests", handlers.ListGuestsHandler(gw))
		api.GET("/guests/:slug", handlers.GetGuestHandler(gw))

		api.GET("/topics", handlers.ListTopicsHandler(gw))
		api.GET("/topics/:slug", handlers.GetTopicHandler(gw))
		api.GET("/topics/:slug/episodes", handlers.RelatedEpisodesHandler(gw))
		api.GET("/topics/:slug/articles", handlers.RelatedArticlesHandler(gw))
		api.GET("/topics/:slug/guests", handlers.RelatedGuestsHandler(gw))
	}

	return r
}

func Handler(gw *content.Gateway, cfg config.AppConfig) http.Handler {
	return middleware.WithCORS(New(gw, cfg), cfg.Server.AllowedOrigins)
}
