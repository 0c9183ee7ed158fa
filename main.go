package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/controllers"
	"github.com/Yaser-2004/flipkart-clone-server/database"
	"github.com/Yaser-2004/flipkart-clone-server/kafka"
	"github.com/Yaser-2004/flipkart-clone-server/logger"
	"github.com/Yaser-2004/flipkart-clone-server/repository"
	"github.com/Yaser-2004/flipkart-clone-server/routes"
	"github.com/Yaser-2004/flipkart-clone-server/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer zap.L().Sync()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- Storage ---

	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			zap.L().Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Fatal("Failed to ensure user indexes", zap.Error(err))
	}
	if err := orderRepo.EnsureIndexes(context.Background()); err != nil {
		zap.L().Fatal("Failed to ensure order indexes", zap.Error(err))
	}

	idemStore := repository.NewRedisIdempotencyStore(redisClient)

	// --- Event publishing (optional) ---

	var publisher services.IEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
		zap.L().Info("Order event publishing enabled", zap.String("topic", cfg.KafkaTopic))
	}

	// --- Services & controllers ---

	tokenService := services.NewTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService)
	cartService := services.NewCartService(userRepo)
	stripeService := services.NewStripeService(cfg.StripeKey)
	orderService := services.NewOrderService(orderRepo, userRepo, idemStore, publisher)

	authController := controllers.NewAuthController(authService)
	cartController := controllers.NewCartController(cartService)
	paymentController := controllers.NewPaymentController(stripeService)
	orderController := controllers.NewOrderController(orderService)

	// --- HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(r, []byte(cfg.JWTSecret), authController, cartController, paymentController, orderController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
