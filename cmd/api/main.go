package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coinpulse/internal/authclient"
	"coinpulse/internal/config"
	"coinpulse/internal/handlers"
	"coinpulse/internal/logger"
	"coinpulse/internal/market"
	"coinpulse/internal/middleware"
	"coinpulse/internal/research"
	"coinpulse/internal/validator"

	_ "coinpulse/internal/docs" // Import swagger docs
)

// @title           CoinPulse API
// @version         1.0
// @description     CoinPulse serves the public marketing site and client shell for a retail trading platform: simulated market data, research content, and an auth/KYC shell backed by an external provider.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the provider access token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Build the market core: seeded catalog, system clock, live randomness
	marketService, err := market.NewDefaultService(appConfig.EvolveInterval, appConfig.SparklinePoints)
	if err != nil {
		return fmt.Errorf("failed to build market service: %w", err)
	}
	researchService := research.NewService(marketService, market.SystemClock, market.NewLiveRand())

	// External auth provider client
	authClient := authclient.New(appConfig.AuthBaseURL, appConfig.AuthAnonKey, appConfig.AuthTimeout)

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(marketService)
	researchHandler := handlers.NewResearchHandler(researchService)
	authHandler := handlers.NewAuthHandler(authClient)
	tickerHandler := handlers.NewTickerHandler(marketService, appConfig.TickerInterval, appConfig.TickerTopN)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Live ticker stream for the landing page
	router.GET("/ws/ticker", tickerHandler.Stream)

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public auth routes (delegation to the external provider)
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/2fa", authHandler.CompleteTwoFactor)

	// Session-protected auth routes
	session := v1.Group("/auth")
	session.Use(middleware.SessionMiddleware())
	session.POST("/logout", authHandler.Logout)
	session.GET("/kyc", authHandler.GetKYCStatus)

	// Market routes (public; the marketing site reads these unauthenticated)
	markets := v1.Group("/markets")
	markets.GET("", marketHandler.ListAssets)
	markets.GET("/search", marketHandler.SearchAssets)
	markets.GET("/movers/:kind", marketHandler.GetTopMovers)
	markets.GET("/trending", marketHandler.GetTrending)
	markets.GET("/top", marketHandler.GetTopAssets)
	markets.GET("/summary", marketHandler.GetSummary)
	markets.POST("/refresh", marketHandler.RefreshMarket)
	markets.GET("/:id", marketHandler.GetAsset)

	// Research routes
	researchGroup := v1.Group("/research")
	researchGroup.GET("/sentiment", researchHandler.GetSentiment)
	researchGroup.GET("/feed", researchHandler.GetFeed)
	researchGroup.GET("/calendar", researchHandler.GetCalendar)
	researchGroup.GET("/analysis/:id", researchHandler.GetAnalysis)

	log.Infof("Starting CoinPulse backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
