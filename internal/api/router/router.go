package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/laundrylady/order-intake/internal/http/middleware"
	"github.com/laundrylady/order-intake/internal/orders"
	"github.com/laundrylady/order-intake/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	OrdersHandler      *orders.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limiting for the public form endpoints; disabled when
	// RateLimitPerSecond is zero.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.OrdersHandler != nil {
		r.Route("/orders", func(r chi.Router) {
			if cfg.RateLimitPerSecond > 0 {
				r.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}
			r.Post("/", cfg.OrdersHandler.Submit)
			r.Get("/quote", cfg.OrdersHandler.Quote)
			r.Get("/slots", cfg.OrdersHandler.Slots)
		})
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
