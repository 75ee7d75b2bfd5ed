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

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/pandamarket/api/docs"
	"github.com/pandamarket/api/internal/article"
	articledomain "github.com/pandamarket/api/internal/article/domain"
	"github.com/pandamarket/api/internal/comment"
	commentdomain "github.com/pandamarket/api/internal/comment/domain"
	"github.com/pandamarket/api/internal/config"
	imagehttp "github.com/pandamarket/api/internal/image/delivery/http"
	"github.com/pandamarket/api/internal/image/storage"
	"github.com/pandamarket/api/internal/metrics"
	"github.com/pandamarket/api/internal/middleware"
	"github.com/pandamarket/api/internal/product"
	producthttp "github.com/pandamarket/api/internal/product/delivery/http"
	productdomain "github.com/pandamarket/api/internal/product/domain"
	"github.com/pandamarket/api/internal/user"
	userdomain "github.com/pandamarket/api/internal/user/domain"
	"github.com/pandamarket/api/pkg/auth"
	"github.com/pandamarket/api/pkg/database"
	"github.com/pandamarket/api/pkg/httpx"
	"github.com/pandamarket/api/pkg/logger"
	"github.com/pandamarket/api/pkg/tracing"
)

const serviceName = "pandamarket-api"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.Init(serviceName, cfg.Log.Level, cfg.IsDevelopment())

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Env).
		Str("log_level", cfg.Log.Level).
		Msg("Starting API server")

	// Initialize token signing
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName, cfg.Trace.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.DatabaseConfig())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&userdomain.User{},
		&productdomain.Product{},
		&productdomain.Favorite{},
		&articledomain.Article{},
		&articledomain.ArticleLike{},
		&commentdomain.Comment{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Shared Prometheus metrics
	m := metrics.New()

	// Initialize handlers with Wire DI
	userHandler, err := user.InitializeHandler(db, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	productHandler, err := product.InitializeHandler(db, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize product handler")
	}
	articleHandler, err := article.InitializeHandler(db, m)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize article handler")
	}
	commentHandler, err := comment.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize comment handler")
	}

	// Object storage for image uploads
	store, err := storage.NewImageStore(storage.Config{
		Endpoint:   cfg.Storage.Endpoint,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Bucket:     cfg.Storage.Bucket,
		UseSSL:     cfg.Storage.UseSSL,
		PublicURL:  cfg.Storage.PublicURL,
		PresignTTL: cfg.Storage.PresignTTL,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize object storage")
	}
	bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.EnsureBucket(bucketCtx); err != nil {
		logger.Logger.Warn().Err(err).Msg("Object storage bucket not ready")
	}
	cancelBucket()
	imageHandler := imagehttp.NewImageHandler(store)

	// Setup router
	router := mux.NewRouter()
	router.Use(
		middleware.Recover,
		middleware.Logging,
		middleware.Metrics(m),
		middleware.Tracing(serviceName),
	)

	// Register routes
	userHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	articleHandler.RegisterRoutes(router)
	commentHandler.RegisterRoutes(router)
	imageHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			httpx.RespondError(w, http.StatusServiceUnavailable, "데이터베이스에 연결할 수 없습니다.")
			return
		}
		httpx.RespondData(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Swagger UI
	producthttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTP.Port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}

	logger.Logger.Info().Msg("Server stopped")
}
