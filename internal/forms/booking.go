package forms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

// WebsiteBooking is the booking form on the main website, carrying the
// richest set of descriptive fields (city/state/centre/treatment).
func WebsiteBooking() *Form {
	return &Form{
		Name:          "website-booking",
		Title:         "Website Appointment Lead",
		SubjectPrefix: "New Website Booking",
		SubjectKeys:   []string{"fullName", "firstName"},
		SuccessStatus: http.StatusCreated,
		Style:         StyleOKError,
		Normalize:     normalizeWebsiteBooking,
		Attributes:    websiteBookingAttributes,
	}
}

func normalizeWebsiteBooking(raw Submission, defaults Defaults) (*Lead, error) {
	firstName := raw.Get("firstName")
	phone := SanitizePhone(raw.Get("phone"))
	if firstName == "" || phone == "" {
		return nil, &ValidationError{Message: "Missing required fields: firstName and phone"}
	}

	lastName := raw.Get("lastName")
	city := raw.Get("city")
	state := raw.Get("state")
	centre := raw.Get("centre")
	treatment := raw.Get("treatmentPreference")
	tryingDuration := raw.Get("tryingDuration")
	message := raw.Get("message")

	source := strings.TrimSpace(firstNonEmpty(
		raw.Get("source"), raw.Get("leadSource"), defaults.LeadSource, "Website Form"))

	// Notes carry only treatment details; the email message carries the lot.
	notes := firstNonEmpty(message, fmt.Sprintf(
		"Treatment: %s | Trying duration: %s", orNA(treatment), orNA(tryingDuration)))
	fullMessage := firstNonEmpty(message, fmt.Sprintf(
		"City: %s | State: %s | Centre: %s | Treatment: %s | Trying duration: %s",
		orNA(city), orNA(state), orNA(centre), orNA(treatment), orNA(tryingDuration)))

	var locationParts []string
	for _, part := range []string{city, state} {
		if part != "" {
			locationParts = append(locationParts, part)
		}
	}

	lead := &Lead{}
	lead.Set("fullName", strings.TrimSpace(firstName+" "+lastName))
	lead.Set("phone", phone)
	lead.Set("email", raw.Get("email"))
	lead.Set("city", city)
	lead.Set("state", state)
	lead.Set("centre", centre)
	lead.Set("treatmentPreference", treatment)
	lead.Set("tryingDuration", tryingDuration)
	lead.Set("source", source)
	lead.Set("message", fullMessage)
	lead.SetExtra("firstName", firstName)
	lead.SetExtra("lastName", lastName)
	lead.SetExtra("centerLocation", strings.Join(locationParts, ", "))
	lead.SetExtra("notes", notes)
	return lead, nil
}

func websiteBookingAttributes(lead *Lead) []leadsquared.Attribute {
	return buildAttributes([]leadsquared.Attribute{
		{Attribute: "FirstName", Value: lead.Get("firstName")},
		{Attribute: "LastName", Value: lead.Get("lastName")},
		{Attribute: "Phone", Value: lead.Get("phone")},
		{Attribute: "EmailAddress", Value: lead.Get("email")},
		{Attribute: "mx_City", Value: lead.Get("city")},
		{Attribute: "mx_State", Value: lead.Get("state")},
		{Attribute: "mx_Center_Name", Value: lead.Get("centre")},
		{Attribute: "mx_Center_Location", Value: lead.Get("centerLocation")},
		{Attribute: "Source", Value: lead.Get("source")},
		{Attribute: "Notes", Value: lead.Get("notes")},
	})
}
