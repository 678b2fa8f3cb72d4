package notify

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode"

	"github.com/seedsofinnocence/leads-gateway/internal/forms"
	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

// Service sends the per-submission operational notification email. Delivery
// is strictly best effort: every failure is logged and discarded so the
// submission outcome is never affected.
type Service struct {
	email  EmailSender
	from   string
	to     string
	logger *logging.Logger
}

// NewService creates a notification service. A nil sender or empty recipient
// turns the service into a silent no-op.
func NewService(email EmailSender, from, to string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		email:  email,
		from:   from,
		to:     to,
		logger: logger,
	}
}

// LeadSubmitted emails a summary of the normalized lead plus the CRM
// dispatch status to the operational mailbox.
func (s *Service) LeadSubmitted(ctx context.Context, form *forms.Form, lead *forms.Lead, crmStatus string) {
	if s == nil || s.email == nil || s.to == "" {
		return
	}

	subject := fmt.Sprintf("%s - %s", form.SubjectPrefix, form.SubjectName(lead))
	msg := EmailMessage{
		From:    s.from,
		To:      s.to,
		Subject: subject,
		HTML:    renderLeadHTML(form.Title, lead, crmStatus),
	}

	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send notification email", "error", err, "form", form.Name)
		return
	}
	s.logger.Info("notification email sent", "form", form.Name, "to", s.to)
}

// renderLeadHTML builds the summary table: one row per lead field in order,
// plus a trailing row with the CRM dispatch status.
func renderLeadHTML(title string, lead *forms.Lead, crmStatus string) string {
	var rows strings.Builder
	for _, field := range lead.Fields() {
		writeRow(&rows, field.Key, field.Value)
	}
	if crmStatus != "" {
		writeRow(&rows, "leadSquaredStatus", crmStatus)
	}

	return fmt.Sprintf(`
    <div style="font-family:Arial,sans-serif;">
      <h2 style="color:#c62828;margin-bottom:8px;">%s</h2>
      <table style="border-collapse:collapse;width:100%%;max-width:640px;">
        <tbody>%s</tbody>
      </table>
    </div>
  `, html.EscapeString(title), rows.String())
}

func writeRow(b *strings.Builder, key, value string) {
	if value == "" {
		value = "NA"
	}
	fmt.Fprintf(b, `<tr>
          <td style="padding:6px 12px;text-transform:capitalize;">%s</td>
          <td style="padding:6px 12px;font-weight:600;">%s</td>
        </tr>`, html.EscapeString(splitWords(key)), html.EscapeString(value))
}

// splitWords inserts a space before every capital letter, turning camelCase
// field keys into readable labels ("firstName" -> "first Name").
func splitWords(key string) string {
	var b strings.Builder
	for _, r := range key {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
