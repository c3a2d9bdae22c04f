package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mxchen/qrpanel/codec"
	"github.com/mxchen/qrpanel/config"
	"github.com/mxchen/qrpanel/controllers"
	"github.com/mxchen/qrpanel/database"
	appmiddleware "github.com/mxchen/qrpanel/middleware"
	"github.com/mxchen/qrpanel/recognition"
	"github.com/mxchen/qrpanel/repositories"
	"github.com/mxchen/qrpanel/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	defer logger.Sync()

	// Load configuration from .env / environment
	cfg := config.Load()

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	// Get database connection
	db := database.GetDB()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize capability adapters
	qrCodec := codec.NewQRCodec()
	recognizer := recognition.NewTesseractRecognizer(cfg.OCRLanguages)

	// Initialize services
	srvs := services.NewServices(repos, qrCodec, qrCodec, recognizer, logger)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, logger)

	// Set up router
	r := setupRouter(ctrl, srvs, cfg)

	logger.Info("qrpanel starting",
		zap.String("port", cfg.Port),
		zap.String("database", cfg.DatabasePath),
		zap.Int("rate_limit_requests", cfg.RateLimitRequests),
		zap.Duration("rate_limit_window", cfg.RateLimitWindow))

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // bound pathological image processing
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	// Access audit trail for everything except the operation endpoints,
	// which write their own specific actions
	r.Use(appmiddleware.AccessLogger(srvs.Audit, "/generate", "/decode", "/ocr"))

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static/"))))

	r.Get("/", ctrl.Home.Index)
	r.Get("/stats", ctrl.Stats.Index)
	r.Get("/logs/export", ctrl.Stats.Export)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"status": "ok"}`)
	})

	// Operation endpoints, each with its own per-IP quota
	r.With(appmiddleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)).
		Post("/generate", ctrl.QR.Generate)
	r.With(appmiddleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)).
		Post("/decode", ctrl.QR.Decode)
	r.With(appmiddleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)).
		Post("/ocr", ctrl.OCR.Extract)

	return r
}
