// Package router wires the HTTP surface of the lead gateway.
package router

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/seedsofinnocence/leads-gateway/internal/forms"
	httpmiddleware "github.com/seedsofinnocence/leads-gateway/internal/http/middleware"
	"github.com/seedsofinnocence/leads-gateway/internal/leads"
	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	CORSAllowedOrigins []string
	MetricsHandler     http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	r.Use(httpmiddleware.Recover(cfg.Logger))
	r.Use(middleware.Compress(5))
	r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/internal-consultation", cfg.LeadsHandler.Submit(forms.International()))
		api.Post("/landing-pages", cfg.LeadsHandler.Submit(forms.National()))
		api.Post("/new-website/book-appointment", cfg.LeadsHandler.Submit(forms.BookAppointment()))
		api.Post("/website-bookings", cfg.LeadsHandler.Submit(forms.WebsiteBooking()))
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		OK        bool   `json:"ok"`
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}{true, "healthy", time.Now().UTC().Format(time.RFC3339)})
}
