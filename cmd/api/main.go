// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Internal packages
	"github.com/emberdate/ember-backend/internal/auth"
	"github.com/emberdate/ember-backend/internal/common/database"
	"github.com/emberdate/ember-backend/internal/common/utils"
	"github.com/emberdate/ember-backend/internal/config"
	"github.com/emberdate/ember-backend/internal/matching"
	"github.com/emberdate/ember-backend/internal/profile"
	"github.com/emberdate/ember-backend/internal/safety"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Ember Matching API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load and validate configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration loaded and valid")

	// 3. Connect to PostgreSQL
	log.Println("\n🗄️  Step 3: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("❌ Failed to ping PostgreSQL:", err)
	}
	log.Println("✅ Connected to PostgreSQL successfully")

	sqlxDB := sqlx.NewDb(db, "postgres")

	// 4. Connect to Redis
	log.Println("\n📮 Step 4: Connecting to Redis...")
	redisClient, err := database.NewRedisClientFromURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to Redis:", err)
	}
	defer redisClient.Close()
	log.Println("✅ Connected to Redis successfully")

	// 5. Initialize Profile module
	log.Println("\n👤 Step 5: Initializing Profile module...")
	profileRepo := profile.NewPostgresRepository(sqlxDB)
	profileService := profile.NewService(profileRepo, nil)
	profileHandler := profile.NewHandler(profileService)
	log.Println("✅ Profile module initialized")

	// 6. Initialize Safety module
	log.Println("\n🛡️  Step 6: Initializing Safety module...")
	safetyRepo := safety.NewPostgresRepository(sqlxDB)
	safetyService := safety.NewService(safetyRepo, nil)
	safetyHandler := safety.NewHandler(safetyService)
	log.Println("✅ Safety module initialized")

	// 7. Initialize Matching module
	log.Println("\n💘 Step 7: Initializing Matching module...")
	matchingRepo := matching.NewPostgresRepository(sqlxDB)
	pickViews := matching.NewRedisPickViewStore(redisClient, cfg.PickViewTTL)

	dailyService := matching.NewDailyService(profileRepo, matchingRepo, safetyService, pickViews, matching.DailyConfig{
		LikeLimit:       cfg.DailyLikeLimit,
		PassLimit:       cfg.DailyPassLimit,
		UnlimitedLikes:  cfg.UnlimitedLikes,
		UnlimitedPasses: cfg.UnlimitedPasses,
		Timezone:        cfg.Timezone(),
	}, nil)

	undoService := matching.NewUndoService(matchingRepo, cfg.UndoWindow, nil)

	weights := matching.QualityWeights{
		Distance:  cfg.DistanceWeight,
		Age:       cfg.AgeWeight,
		Interests: cfg.InterestWeight,
		Lifestyle: cfg.LifestyleWeight,
		Pace:      cfg.PaceWeight,
		Response:  cfg.ResponseWeight,
	}
	if err := weights.Validate(); err != nil {
		log.Fatal("❌ Invalid quality weights:", err)
	}

	hub := matching.NewHub()
	go hub.Run()
	log.Println("   ✅ WebSocket hub started")

	matchingService := matching.NewService(matchingRepo, profileRepo, safetyService, dailyService, undoService, hub, weights, nil)
	matchingHandler := matching.NewHandler(matchingService)
	log.Println("✅ Matching module initialized")

	// 8. Initialize auth middleware
	log.Println("\n🔐 Step 8: Initializing auth middleware...")
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)
	log.Println("✅ Auth middleware initialized")

	// 9. Setup routes
	log.Println("\n🛣️  Step 9: Setting up routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	log.Println("   ✅ Profile routes registered")

	safety.RegisterRoutes(router, safetyHandler, authMiddleware)
	log.Println("   ✅ Safety routes registered")

	matching.RegisterRoutes(router, matchingHandler, hub, authMiddleware)
	log.Println("   ✅ Matching routes registered")

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	// 10. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.RequestURI, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
