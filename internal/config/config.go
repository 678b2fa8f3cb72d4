package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string

	// SMTP / notification email configuration
	SMTPHost          string
	SMTPPort          string
	SMTPUser          string
	SMTPPass          string
	SMTPSecure        bool
	EmailFrom         string
	NotificationEmail string
	EmailProvider     string

	// SendGrid (alternative email provider)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// LeadSquared CRM configuration
	LeadSquaredBaseURL   string
	LeadSquaredEndpoint  string
	LeadSquaredAccessKey string
	LeadSquaredSecretKey string
	DefaultLeadSource    string
}

// Load reads configuration from environment variables. Values may carry a
// trailing "# comment" which is stripped before use.
func Load() *Config {
	smtpUser := getEnv("SMTP_USER", "")
	smtpFrom := getEnv("SMTP_FROM", "")

	emailFrom := getEnvAny([]string{"EMAIL_FROM"}, smtpFrom)
	if emailFrom == "" {
		sender := smtpUser
		if sender == "" {
			sender = "no-reply@example.com"
		}
		emailFrom = fmt.Sprintf("%q <%s>", "SOI Website", sender)
	}

	secure := getEnv("SMTP_SECURE", "")

	return &Config{
		Port:           getEnv("PORT", "4000"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "")),

		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", ""),
		SMTPUser:          smtpUser,
		SMTPPass:          getEnv("SMTP_PASS", ""),
		SMTPSecure:        secure == "true" || secure == "1",
		EmailFrom:         emailFrom,
		NotificationEmail: getEnvAny([]string{"RECEIVER_EMAIL", "NOTIFICATION_EMAIL"}, "digital@seedsofinnocence.com"),
		EmailProvider:     strings.ToLower(getEnv("EMAIL_PROVIDER", "smtp")),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Seeds of Innocence"),

		LeadSquaredBaseURL:   getEnvAny([]string{"LSQ_BASE_URL", "LEADSQUARED_BASE_URL", "LEADSQUARED_DOMAIN"}, ""),
		LeadSquaredEndpoint:  getEnvAny([]string{"LSQ_ENDPOINT", "LEADSQUARED_ENDPOINT", "LEADSQUARED_URL"}, ""),
		LeadSquaredAccessKey: getEnvAny([]string{"LSQ_ACCESS_KEY", "LEADSQUARED_ACCESS_KEY", "ACCESS_KEY"}, ""),
		LeadSquaredSecretKey: getEnvAny([]string{"LSQ_SECRET_KEY", "LEADSQUARED_SECRET_KEY", "SECRET_KEY"}, ""),
		DefaultLeadSource:    getEnv("DEFAULT_LEAD_SOURCE", ""),
	}
}

// cleanValue drops an inline "# comment" suffix and surrounding whitespace.
func cleanValue(value string) string {
	if i := strings.Index(value, "#"); i >= 0 {
		value = value[:i]
	}
	return strings.TrimSpace(value)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := cleanValue(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAny returns the first non-empty value among the given keys
func getEnvAny(keys []string, defaultValue string) string {
	for _, key := range keys {
		if value := cleanValue(os.Getenv(key)); value != "" {
			return value
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
