package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boggle-server/internal/boggle"
	"boggle-server/internal/config"
	"boggle-server/internal/database"
	"boggle-server/internal/handlers"
	"boggle-server/internal/middleware"
	"boggle-server/internal/projection"
	"boggle-server/internal/queue"
	"boggle-server/internal/store"
	"boggle-server/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient, err := database.NewRedisConnection(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// sessions don't survive a restart (spec section 3): the HMAC secret
	// key below is re-rolled every boot, which would otherwise leave
	// stale sessions with unverifiable tokens.
	if err := database.TruncateSessions(db); err != nil {
		log.Fatalf("Failed to truncate stale sessions: %v", err)
	}

	serverKey, err := boggle.NewServerKey()
	if err != nil {
		log.Fatalf("Failed to mint server key: %v", err)
	}
	tokens := boggle.NewTokenMinter(serverKey)
	catalog := boggle.NewCatalog(cfg.DiceDir, cfg.DictionaryDir)
	st := store.New(db)
	q := queue.New(redisClient, "")
	w := worker.New(st, catalog)

	var dispatch queue.Dispatcher = q
	if cfg.SyncScoring {
		dispatch = w
	} else {
		workerCtx, cancelWorkers := context.WithCancel(context.Background())
		defer cancelWorkers()
		for i := 0; i < cfg.WorkerPoolSize; i++ {
			go w.Run(workerCtx, q)
		}
	}

	proj := projection.New(st, catalog, dispatch, cfg.BoardRows, cfg.BoardCols)
	h := handlers.New(st, proj, tokens, serverKey, cfg.GracePeriod, cfg.RoundCountdown, cfg.RoundDuration, cfg.MaxPlayerNameChars, cfg.DefaultDiceConfig)
	tok := middleware.NewTokens(tokens)

	// Setup router
	router := setupRouter(h, tok, catalog, db, redisClient, cfg)

	// Setup HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func setupRouter(h *handlers.Handlers, tok *middleware.Tokens, catalog *boggle.Catalog, db *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit(cfg.RateLimit))
	router.Use(middleware.Logger())

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck(db, redisClient))
	router.GET("/options", h.Options(catalog))

	// Session routes, path-token authorised per spec section 5
	api := router.Group("/session")
	{
		api.POST("", h.CreateSession)

		manage := api.Group("/:sid/:pep/manage/:mtok")
		manage.Use(tok.Management())
		{
			manage.GET("", h.GetManagement)
			manage.POST("", h.AdvanceRound)
			manage.DELETE("", h.DestroySession)
			manage.PATCH("/approve_word", h.ApproveWord)
		}

		join := api.Group("/:sid/:pep/join/:itok")
		join.Use(tok.Invitation())
		{
			join.POST("", h.Join)
		}

		play := api.Group("/:sid/:pep/play/:pid/:ptok")
		play.Use(tok.Player())
		{
			play.GET("", h.GetPlay)
			play.PUT("", h.SubmitWords)
			play.DELETE("", h.LeaveSession)
		}

		stats := api.Group("/:sid/:pep/stats/:itok")
		stats.Use(tok.Invitation())
		{
			stats.GET("", h.Stats)
		}
	}

	return router
}
