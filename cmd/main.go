package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orion/internal/clients"
	"orion/internal/config"
	"orion/internal/handlers"
	"orion/internal/middleware"
	"orion/internal/repository"
	"orion/internal/service"
	"orion/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Загрузка .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Orion Dashboard Backend Starting ===")

	cfg := config.Load()

	// Redis опционален: без него работаем, просто без счетчиков запросов
	// и серверных метрик в /system/stats
	stats := repository.NewNoopStatsRepository()
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		client, err := redis.Connect(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Printf("Redis connection failed, continuing without stats: %v", err)
		} else {
			defer client.Close()
			redisClient = client
			stats = repository.NewStatsRepository(redisClient)
		}
	}

	// Клиенты апстримов
	issClient := clients.NewISSClient(cfg.ISS.BaseURL, cfg.ISS.Timeout)
	jwstClient := clients.NewJWSTClient(clients.JWSTConfig{
		Host:    cfg.JWST.Host,
		APIKey:  cfg.JWST.APIKey,
		Email:   cfg.JWST.Email,
		Timeout: cfg.JWST.Timeout,
	})
	osdrClient := clients.NewOSDRClient(cfg.OSDR.BaseURL, cfg.OSDR.Timeout)
	astroClient := clients.NewAstroClient(clients.AstroConfig{
		AppID:   cfg.Astro.AppID,
		Secret:  cfg.Astro.Secret,
		BaseURL: cfg.Astro.BaseURL,
		Timeout: cfg.Astro.Timeout,
	})

	// Сервисы
	issService := service.NewISSService(issClient)
	jwstService := service.NewJWSTService(jwstClient)
	osdrService := service.NewOSDRService(osdrClient)
	astroService := service.NewAstroService(astroClient)
	dashboardService := service.NewDashboardService(issService, jwstService, osdrService)

	// Хендлеры
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, stats)
	issHandler := handlers.NewISSHandler(issService, stats)
	jwstHandler := handlers.NewJWSTHandler(jwstService, stats)
	osdrHandler := handlers.NewOSDRHandler(osdrService, stats, cfg.Export.OutputDir)
	astroHandler := handlers.NewAstroHandler(astroService, stats)
	systemHandler := handlers.NewSystemHandler(stats, redisClient)

	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())

	// CORS для фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (только для продакшена)
	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimitMiddleware(limiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	api := r.Group("/api/v1")

	api.GET("/dashboard", dashboardHandler.GetDashboard)

	api.GET("/iss/last", issHandler.GetLast)
	api.GET("/iss/trend", issHandler.GetTrend)

	api.GET("/jwst/feed", jwstHandler.GetFeed)

	api.GET("/osdr/list", osdrHandler.GetList)
	api.GET("/osdr/export", osdrHandler.Export)

	api.GET("/astro/events", astroHandler.GetEvents)

	api.GET("/health", systemHandler.HealthCheck)
	api.GET("/system/stats", systemHandler.GetStats)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}
