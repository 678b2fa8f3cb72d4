package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seedsofinnocence/leads-gateway/internal/api/router"
	appconfig "github.com/seedsofinnocence/leads-gateway/internal/config"
	"github.com/seedsofinnocence/leads-gateway/internal/forms"
	"github.com/seedsofinnocence/leads-gateway/internal/leads"
	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
	"github.com/seedsofinnocence/leads-gateway/internal/notify"
	"github.com/seedsofinnocence/leads-gateway/internal/observability/metrics"
	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

func main() {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel, cfg.Env)
	logger.Info("starting leads-gateway API server", "port", cfg.Port)

	crm := leadsquared.New(leadsquared.Config{
		Endpoint:  cfg.LeadSquaredEndpoint,
		BaseURL:   cfg.LeadSquaredBaseURL,
		AccessKey: cfg.LeadSquaredAccessKey,
		SecretKey: cfg.LeadSquaredSecretKey,
		Logger:    logger,
	})

	notifier := notify.NewService(buildEmailSender(cfg, logger), cfg.EmailFrom, cfg.NotificationEmail, logger)

	submissionMetrics := metrics.NewSubmissionMetrics(prometheus.DefaultRegisterer)

	leadsHandler := leads.NewHandler(crm, notifier, forms.Defaults{
		LeadSource: cfg.DefaultLeadSource,
	}, submissionMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		CORSAllowedOrigins: cfg.AllowedOrigins,
		MetricsHandler:     promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the configured email provider. A nil return means
// notifications are disabled; the notify service treats that as a no-op.
func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		if sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); sender != nil {
			return sender
		}
		return nil
	case "none":
		return nil
	default:
		if sender := notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			Secure:   cfg.SMTPSecure,
			From:     cfg.EmailFrom,
		}, logger); sender != nil {
			return sender
		}
		return nil
	}
}
