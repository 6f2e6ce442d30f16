package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"content-hub/cmd/api/router"
	"content-hub/cmd/internal/content"
	"content-hub/cmd/internal/logger"
	"content-hub/config"
)

// @title           Content Hub API
// @version         1.0
// @description     Podcast episodes, articles, guests and topics from the CMS with a static fallback
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	gin.SetMode(gin.ReleaseMode)

	gw, err := content.New(cfg)
	if err != nil {
		logger.ErrorWithFields("failed to build content gateway", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.Handler(gw, cfg),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.InfoWithFields("api server listening", logger.Fields{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorWithFields("api server failed", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down api server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorWithFields("api server forced to shutdown", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	logger.Log.Info("api server stopped")
}
