package main

import (
	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := configs.DB()

	if err := configs.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.CORSMiddleware())

	// serve stored profile and dish pictures
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := ":" + cfg.Port
	logger.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
