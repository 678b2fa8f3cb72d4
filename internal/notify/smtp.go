package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
	gomail "github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP transport configuration.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	// Secure enables implicit TLS (typically port 465). When false, STARTTLS
	// is required on the submission port 587 and opportunistic otherwise.
	Secure bool
	From   string
}

// SMTPSender delivers notification emails over SMTP.
type SMTPSender struct {
	client *gomail.Client
	from   string
	logger *logging.Logger
}

// NewSMTPSender creates an SMTP email sender. Returns nil when credentials
// are incomplete, so callers can treat notifications as disabled.
func NewSMTPSender(cfg SMTPConfig, logger *logging.Logger) *SMTPSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Host == "" || cfg.Port == "" || cfg.Username == "" || cfg.Password == "" {
		logger.Warn("email credentials are not fully configured, skipping mail delivery")
		return nil
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		logger.Warn("invalid SMTP port, skipping mail delivery", "port", cfg.Port)
		return nil
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	switch {
	case cfg.Secure:
		opts = append(opts, gomail.WithSSL())
	case port == 587:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		logger.Error("failed to construct SMTP client", "error", err)
		return nil
	}

	return &SMTPSender{
		client: client,
		from:   cfg.From,
		logger: logger,
	}
}

// Send delivers one HTML email.
func (s *SMTPSender) Send(ctx context.Context, msg EmailMessage) error {
	from := msg.From
	if from == "" {
		from = s.from
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return fmt.Errorf("notify: invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("notify: invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("smtp send failed", "error", err, "to", msg.To)
		return fmt.Errorf("notify: smtp send failed: %w", err)
	}

	s.logger.Info("email sent via smtp", "to", msg.To, "subject", msg.Subject)
	return nil
}
