// Package forms declares the landing-page form schemas and the shared
// normalization applied to every submission before it reaches the CRM.
package forms

import (
	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

// ResponseStyle selects the JSON key names and the success status code used
// when shaping a handler response. The decision logic is identical across
// forms; only the cosmetics differ.
type ResponseStyle int

const (
	// StyleSuccessMessage renders {success, message, ...} with errors under
	// "message". Used by the international consultation form.
	StyleSuccessMessage ResponseStyle = iota
	// StyleOKMessage renders {ok, ...} with errors under "message".
	StyleOKMessage
	// StyleOKError renders {ok, ...} with errors under "error".
	StyleOKError
)

// Defaults carries configured fallbacks applied during normalization.
type Defaults struct {
	LeadSource string
}

// Form is the static schema for one landing-page variant.
type Form struct {
	// Name is the short slug used in logs and metrics.
	Name string
	// Title is the heading of the notification email.
	Title string
	// SubjectPrefix precedes the lead name in the email subject.
	SubjectPrefix string
	// SubjectKeys lists lead fields tried in order for the subject name.
	SubjectKeys []string

	// SuccessStatus is the HTTP status of a successful submission.
	SuccessStatus int
	Style         ResponseStyle

	// Normalize validates the raw submission and produces a Lead.
	Normalize func(raw Submission, defaults Defaults) (*Lead, error)
	// Attributes maps a normalized Lead onto the CRM attribute list.
	Attributes func(lead *Lead) []leadsquared.Attribute
}

// SubjectName picks the first non-empty subject field, defaulting to "Lead".
func (f *Form) SubjectName(lead *Lead) string {
	for _, key := range f.SubjectKeys {
		if v := lead.Get(key); v != "" {
			return v
		}
	}
	return "Lead"
}

// Field is one named value of a normalized lead, in notification order.
type Field struct {
	Key   string
	Value string
}

// Lead is the validated, cleaned result of applying a Form to a submission.
// Fields appear in the notification email in insertion order; extra values
// feed the CRM payload only.
type Lead struct {
	fields []Field
	extra  map[string]string
}

// Set records a field that is shown in the notification email.
func (l *Lead) Set(key, value string) {
	l.fields = append(l.fields, Field{Key: key, Value: value})
}

// SetExtra records a value used for the CRM payload but not the email.
func (l *Lead) SetExtra(key, value string) {
	if l.extra == nil {
		l.extra = make(map[string]string)
	}
	l.extra[key] = value
}

// Get returns the named value, checking email fields first.
func (l *Lead) Get(key string) string {
	for _, f := range l.fields {
		if f.Key == key {
			return f.Value
		}
	}
	return l.extra[key]
}

// Fields returns the email-visible fields in order.
func (l *Lead) Fields() []Field {
	return l.fields
}

// ValidationError reports missing or invalid required input. It maps to a
// 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// All returns every registered form schema.
func All() []*Form {
	return []*Form{
		International(),
		National(),
		BookAppointment(),
		WebsiteBooking(),
	}
}

// buildAttributes drops entries whose value is blank after trimming, so the
// CRM never receives empty attributes.
func buildAttributes(entries []leadsquared.Attribute) []leadsquared.Attribute {
	out := make([]leadsquared.Attribute, 0, len(entries))
	for _, e := range entries {
		if trimmed := e.Value; trimOK(trimmed) {
			out = append(out, e)
		}
	}
	return out
}
