package forms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

// International is the consultation form served to overseas patients.
// At least one of the husband/wife names must be present alongside email
// and a valid phone.
func International() *Form {
	return &Form{
		Name:          "international",
		Title:         "International Consultation Lead",
		SubjectPrefix: "New International Consultation",
		SubjectKeys:   []string{"husbandName", "wifeName", "email"},
		SuccessStatus: http.StatusOK,
		Style:         StyleSuccessMessage,
		Normalize:     normalizeInternational,
		Attributes:    internationalAttributes,
	}
}

func normalizeInternational(raw Submission, _ Defaults) (*Lead, error) {
	husbandName := raw.Get("husbandName")
	wifeName := raw.Get("wifeName")
	email := raw.Get("email")

	if husbandName == "" && wifeName == "" {
		return nil, &ValidationError{Message: "At least one of husbandName or wifeName is required"}
	}
	if email == "" {
		return nil, &ValidationError{Message: "Email is required"}
	}

	phone := SanitizePhone(raw.Get("phone"))
	if phone == "" {
		return nil, &ValidationError{Message: "Phone is required"}
	}

	var nameParts []string
	for _, part := range []string{husbandName, wifeName} {
		if part != "" {
			nameParts = append(nameParts, part)
		}
	}

	lead := &Lead{}
	lead.Set("husbandName", husbandName)
	lead.Set("wifeName", wifeName)
	lead.Set("email", email)
	lead.Set("phone", phone)
	lead.Set("typeOfService", raw.Get("typeOfService"))
	lead.Set("centerLocation", raw.Get("centerLocation"))
	lead.Set("source", "international")
	lead.SetExtra("fullName", strings.Join(nameParts, " & "))
	lead.SetExtra("notes", fmt.Sprintf("Type of service: %s", orNA(raw.Get("typeOfService"))))
	return lead, nil
}

func internationalAttributes(lead *Lead) []leadsquared.Attribute {
	return buildAttributes([]leadsquared.Attribute{
		{Attribute: "FirstName", Value: firstNonEmpty(lead.Get("fullName"), lead.Get("husbandName"), lead.Get("wifeName"))},
		{Attribute: "EmailAddress", Value: lead.Get("email")},
		{Attribute: "Phone", Value: lead.Get("phone")},
		{Attribute: "mx_Center_Location", Value: lead.Get("centerLocation")},
		{Attribute: "Source", Value: lead.Get("source")},
		{Attribute: "Notes", Value: lead.Get("notes")},
	})
}
