package forms

import (
	"net/http"
	"strings"

	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

// National is the lead form embedded on the national ad landing pages.
func National() *Form {
	return &Form{
		Name:          "national",
		Title:         "National Landing Page Lead",
		SubjectPrefix: "New National Landing Page Lead",
		SubjectKeys:   []string{"firstName", "email"},
		SuccessStatus: http.StatusOK,
		Style:         StyleOKMessage,
		Normalize:     normalizeNational,
		Attributes:    nationalAttributes,
	}
}

func normalizeNational(raw Submission, _ Defaults) (*Lead, error) {
	firstName := raw.Get("firstName")
	if strings.TrimSpace(firstName) == "" {
		return nil, &ValidationError{Message: "First name is required"}
	}

	phone := SanitizePhone(raw.Get("phone"))
	if phone == "" {
		return nil, &ValidationError{Message: "Phone is required"}
	}

	source := strings.TrimSpace(firstNonEmpty(raw.Get("source"), "landing Google Ads"))
	message := raw.Get("message")

	lead := &Lead{}
	lead.Set("firstName", firstName)
	lead.Set("lastName", raw.Get("lastName"))
	lead.Set("email", raw.Get("email"))
	lead.Set("phone", phone)
	lead.Set("message", message)
	lead.Set("source", source)
	lead.SetExtra("notes", firstNonEmpty(message, "Free Fertility Consultation Request"))
	return lead, nil
}

func nationalAttributes(lead *Lead) []leadsquared.Attribute {
	return buildAttributes([]leadsquared.Attribute{
		{Attribute: "FirstName", Value: lead.Get("firstName")},
		{Attribute: "LastName", Value: lead.Get("lastName")},
		{Attribute: "EmailAddress", Value: lead.Get("email")},
		{Attribute: "Phone", Value: lead.Get("phone")},
		{Attribute: "Source", Value: lead.Get("source")},
		{Attribute: "Notes", Value: lead.Get("notes")},
	})
}
