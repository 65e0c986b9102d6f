package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Moosic/cache"
	"Moosic/config"
	"Moosic/core/auth"
	"Moosic/core/books"
	"Moosic/core/gemini"
	"Moosic/core/recommend"
	"Moosic/core/spotify"
	"Moosic/core/youtube"
	"Moosic/db"
	"Moosic/logger"
	"Moosic/model"
	"Moosic/repository"

	"github.com/gorilla/mux"
)

// Start initializes dependencies and runs the HTTP server until a
// shutdown signal arrives.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.InfoLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	})

	if err := db.ConnectGormDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(&model.User{}, &model.MoodEntry{}); err != nil {
		logger.Fatal("Failed to migrate models", logger.ErrorField(err))
	}

	// Redis is optional: without it the recommendation cache just misses.
	if err := db.ConnectRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, recommendation cache disabled", logger.ErrorField(err))
	} else {
		defer db.CloseRedis()
		logger.Info("Successfully connected to Redis")
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenExpiry)
	if err != nil {
		logger.Fatal("Failed to initialize token manager", logger.ErrorField(err))
	}

	userRepo := repository.NewGormUserRepository(db.GormDB)
	moodRepo := repository.NewGormMoodEntryRepository(db.GormDB)

	analyzer := gemini.NewClient(&gemini.Config{
		APIURL: cfg.GeminiAPIURL,
		APIKey: cfg.GeminiAPIKey,
	})

	musicClient := spotify.NewClient(&spotify.Config{
		ClientID:     cfg.SpotifyClientID,
		ClientSecret: cfg.SpotifyClientSecret,
	}, spotify.NewTokenCache())
	videoClient := youtube.NewClient(&youtube.Config{APIKey: cfg.YouTubeAPIKey})
	bookClient := books.NewClient(&books.Config{})

	aggregator := recommend.NewAggregator(musicClient, videoClient, bookClient)
	recCache := cache.NewRecommendationCache(db.RedisClient, cache.DefaultRecommendationTTL)

	apiHandler := NewAPIHandler(userRepo, moodRepo, tokens, analyzer, aggregator, recCache, cfg)

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(requestIDMiddleware)

	// Auth endpoints
	router.HandleFunc("/api/auth/signup", apiHandler.SignupHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", apiHandler.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", apiHandler.AuthMiddleware(apiHandler.MeHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/auth/logout", apiHandler.LogoutHandler).Methods(http.MethodPost)

	// Mood endpoints
	router.HandleFunc("/api/analyze-mood", apiHandler.AnalyzeMoodHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/mood-recommendations", apiHandler.MoodRecommendationsHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/mood-history", apiHandler.AuthMiddleware(apiHandler.MoodHistoryHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/mood-stats", apiHandler.AuthMiddleware(apiHandler.MoodStatsHandler)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}
