package main

import (
	"time"

	"storefront-cms/config"
	"storefront-cms/database"
	mediaapi "storefront-cms/internal/api/media"
	routes "storefront-cms/internal/app/http"
	"storefront-cms/internal/infra/cache"
	"storefront-cms/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB(config.DB_URL)
	cache.Init(config.REDIS_ADDR)

	store, err := storage.NewLocal(config.UPLOAD_DIR, config.UPLOAD_BASE_URL)
	if err != nil {
		logrus.Fatal("Failed to init upload storage: ", err)
	}
	mediaapi.Store = store

	routes.RegisterValidators()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded files are public.
	r.Static(config.UPLOAD_BASE_URL, config.UPLOAD_DIR)

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.PORT); err != nil {
		logrus.Fatal("Server stopped: ", err)
	}
}
