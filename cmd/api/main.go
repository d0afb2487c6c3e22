package main

import (
	"net/http"

	"github.com/BruksfildServices01/mesa-api/internal/config"
	dbpkg "github.com/BruksfildServices01/mesa-api/internal/db"
	"github.com/BruksfildServices01/mesa-api/internal/infra/cache"
	"github.com/BruksfildServices01/mesa-api/internal/logger"
	"github.com/BruksfildServices01/mesa-api/internal/middleware"
	"github.com/BruksfildServices01/mesa-api/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	mesaCache := cache.NewMesaCache(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, mesaCache)

	logger.Info.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error.Fatalf("failed to start server: %v", err)
	}
}
