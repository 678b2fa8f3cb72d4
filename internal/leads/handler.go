// Package leads runs the submission pipeline shared by every landing-page
// form: normalize, dispatch to the CRM, notify operators, respond.
package leads

import (
	"context"
	"net/http"
	"time"

	"github.com/seedsofinnocence/leads-gateway/internal/forms"
	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
	"github.com/seedsofinnocence/leads-gateway/internal/observability/metrics"
	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

// maxBodyBytes caps submission bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// CRMDispatcher performs the lead-creation call.
type CRMDispatcher interface {
	CreateLead(ctx context.Context, attrs []leadsquared.Attribute) (*leadsquared.CreateLeadResult, error)
}

// Notifier sends the best-effort operational email. Implementations must
// never fail the request.
type Notifier interface {
	LeadSubmitted(ctx context.Context, form *forms.Form, lead *forms.Lead, crmStatus string)
}

// Handler handles HTTP form submissions for all form variants.
type Handler struct {
	crm      CRMDispatcher
	notifier Notifier
	defaults forms.Defaults
	metrics  *metrics.SubmissionMetrics
	logger   *logging.Logger
}

// NewHandler creates a submission handler.
func NewHandler(crm CRMDispatcher, notifier Notifier, defaults forms.Defaults, m *metrics.SubmissionMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		crm:      crm,
		notifier: notifier,
		defaults: defaults,
		metrics:  m,
		logger:   logger,
	}
}

// Submit returns the POST handler for one form variant.
func (h *Handler) Submit(form *forms.Form) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submittedAt := time.Now().UTC()

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		raw, err := forms.ParseSubmission(r.Body)
		if err != nil {
			h.logger.Error("failed to decode submission", "form", form.Name, "error", err)
			h.metrics.ObserveSubmission(form.Name, "validation_error")
			writeError(w, form, err)
			return
		}

		lead, err := form.Normalize(raw, h.defaults)
		if err != nil {
			// Validation failures short-circuit: no CRM call, no email.
			h.logger.Info("submission rejected", "form", form.Name, "error", err)
			h.metrics.ObserveSubmission(form.Name, "validation_error")
			writeError(w, form, err)
			return
		}

		attrs := form.Attributes(lead)

		start := time.Now()
		result, crmErr := h.crm.CreateLead(r.Context(), attrs)
		h.metrics.ObserveCRMLatency(form.Name, time.Since(start).Seconds())

		crmStatus := "Success"
		if crmErr != nil {
			crmStatus = "FAILED – " + leadsquared.Describe(crmErr)
			h.logger.Error("leadsquared submission failed",
				"form", form.Name,
				"error", crmErr,
			)
		}

		// The notifier always runs so operators learn of failed leads too.
		h.notifier.LeadSubmitted(r.Context(), form, lead, crmStatus)

		if crmErr != nil {
			h.metrics.ObserveSubmission(form.Name, "crm_error")
			writeError(w, form, crmErr)
			return
		}

		outcome := "accepted"
		if result.Duplicate {
			outcome = "duplicate"
		}
		h.metrics.ObserveSubmission(form.Name, outcome)
		h.logger.Info("lead submitted",
			"form", form.Name,
			"duplicate", result.Duplicate,
		)
		writeSuccess(w, form, result, submittedAt)
	}
}
