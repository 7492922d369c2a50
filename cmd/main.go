package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/sbilibin2017/gw-tweet-studio/internal/facades"
	"github.com/sbilibin2017/gw-tweet-studio/internal/handlers"
	"github.com/sbilibin2017/gw-tweet-studio/internal/health"
	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/jwt"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/middlewares"
	"github.com/sbilibin2017/gw-tweet-studio/internal/repositories"
	"github.com/sbilibin2017/gw-tweet-studio/internal/services"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/sbilibin2017/gw-tweet-studio/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-tweet-studio API
// @version 1.0.0
// @description Service for AI-assisted tweet and image generation with live admin updates
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		databasePath, imageDir, trainingDataPath,
		tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		databasePath, imageDir, trainingDataPath,
		tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, generation-API, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	databasePath, imageDir, trainingDataPath string,
	tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config
	databasePath = getEnv("DATABASE_PATH", "database.db")
	imageDir = getEnv("IMAGE_DIR", "generated_images")
	trainingDataPath = getEnv("TRAINING_DATA_PATH", "training_data/generated_data.json")

	// Generation API config
	tweetAPIURL = getEnv("TWEET_API_URL", facades.DefaultTweetAPIURL)
	tweetAPIKey = getEnv("TWEET_API_KEY", "")
	imageAPIURL = getEnv("IMAGE_API_URL", facades.DefaultImageAPIURL)
	imageAPIKey = getEnv("IMAGE_API_KEY", "")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, hub, facades, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	databasePath, imageDir, trainingDataPath string,
	tweetAPIURL, tweetAPIKey, imageAPIURL, imageAPIKey string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open SQLite database
	logger.Log.Infof("Opening SQLite database: %s", databasePath)
	db, err := sqlx.ConnectContext(ctx, "sqlite3", databasePath)
	if err != nil {
		logger.Log.Errorw("SQLite connection error", "err", err)
		return err
	}
	defer db.Close()

	if err := repositories.Migrate(ctx, db); err != nil {
		logger.Log.Errorw("migration failed", "err", err)
		return err
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Start the broadcast hub and the health emitter
	broadcastHub := hub.New()
	go broadcastHub.Run(ctxShutdown)

	emitter := health.NewEmitter(broadcastHub, 30*time.Second)
	go emitter.Run(ctxShutdown)

	// Initialize JWT service
	sessionTTL := time.Duration(jwtExpSecond) * time.Second
	jwtService := jwt.New(jwtSecretKey, sessionTTL)

	// Initialize facades
	tweetFacade := facades.NewTweetFacade(tweetAPIURL, tweetAPIKey)
	imageFacade := facades.NewImageFacade(imageAPIURL, imageAPIKey, imageDir)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	contentReadRepo := repositories.NewContentReadRepository(db)
	contentWriteRepo := repositories.NewContentWriteRepository(db)
	trainingRepo := repositories.NewTrainingLogRepository(trainingDataPath)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, broadcastHub)
	contentService := services.NewContentService(contentReadRepo, contentWriteRepo, broadcastHub)
	generationService := services.NewGenerationService(tweetFacade, imageFacade, contentWriteRepo, trainingRepo, broadcastHub)

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionTTL)
	logoutHandler := handlers.NewLogoutHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler()
	userDashboardHandler := handlers.NewUserDashboardHandler()
	adminDashboardHandler := handlers.NewAdminDashboardHandler(authService, contentService)
	generateHandler := handlers.NewGenerateHandler(generationService)
	userContentHandler := handlers.NewUserContentHandler(contentService)
	postTweetHandler := handlers.NewPostTweetHandler(contentService)
	deleteContentHandler := handlers.NewDeleteContentHandler(contentService)
	imageHandler := handlers.NewImageHandler(imageDir)
	wsHandler := handlers.NewWSHandler(broadcastHub)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.Identity(jwtService))

	// Public routes
	r.Get("/", homeHandler)
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.Post("/generate-tweet", generateHandler)
	r.Get("/images/{filename}", imageHandler)
	r.Get("/generated_images/{filename}", imageHandler)
	r.Get("/ws", wsHandler)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAuth)
		r.Get("/logout", logoutHandler)
		r.Get("/dashboard", dashboardHandler)
		r.Get("/user-dashboard", userDashboardHandler)
		r.Get("/user-panel", userDashboardHandler)
		r.Get("/api/user-content", userContentHandler)
		r.Post("/post-tweet", postTweetHandler)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAdmin)
		r.Get("/admin-dashboard", adminDashboardHandler)
		r.Get("/admin-panel", adminDashboardHandler)
		r.Get("/admin", adminDashboardHandler)
		r.Delete("/delete-content/{id}", deleteContentHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: corsHandler.Handler(r),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
