package v1

import (
	"net/http"
	"time"

	"go-acoustics-backend/config"
	"go-acoustics-backend/internal/delivery/http/middleware"
	"go-acoustics-backend/internal/delivery/http/response"
	"go-acoustics-backend/internal/domain"
	"go-acoustics-backend/pkg/notify"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	CatalogUC     domain.CatalogUsecase
	Notifications *notify.Store
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window),
	))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes - the whole surface is unauthenticated
	contactLimiter := middleware.RateLimitMiddleware(
		middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window),
	)
	NewContactHandler(v1, deps.ContactUC, contactLimiter)
	NewCatalogHandler(v1, deps.CatalogUC)
	NewNotificationHandler(v1, deps.Notifications)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
