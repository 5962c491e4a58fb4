package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/backend/config"
	"github.com/pageza/recipe-catalog/backend/internal/api"
	"github.com/pageza/recipe-catalog/backend/internal/middleware"
	"github.com/pageza/recipe-catalog/backend/internal/service"
)

// SetupRouter wires services, handlers and middleware into a gin engine.
// redisClient may be nil; write rate limiting then runs in-process.
func SetupRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	router.NoRoute(middleware.NotFound())

	var writes []gin.HandlerFunc
	if cfg.RateLimitPerMinute > 0 {
		writes = append(writes, middleware.RateLimit(middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitPerMinute)))
	}

	root := router.Group("")
	api.NewSystemHandler(db).RegisterRoutes(root)
	api.NewAuthorHandler(service.NewAuthorService(db)).RegisterRoutes(root, writes...)
	api.NewIngredientHandler(service.NewIngredientService(db)).RegisterRoutes(root, writes...)
	api.NewRecipeHandler(service.NewRecipeService(db)).RegisterRoutes(root, writes...)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
