package forms

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

// BookAppointment is the appointment-booking form on the redesigned website.
// It takes a single full-name field which is split into first/last for the
// CRM.
func BookAppointment() *Form {
	return &Form{
		Name:          "book-appointment",
		Title:         "New Appointment Booking Request",
		SubjectPrefix: "New Appointment Booking",
		SubjectKeys:   []string{"name"},
		SuccessStatus: http.StatusCreated,
		Style:         StyleOKError,
		Normalize:     normalizeBookAppointment,
		Attributes:    bookAppointmentAttributes,
	}
}

func normalizeBookAppointment(raw Submission, _ Defaults) (*Lead, error) {
	name := raw.Get("name")
	phone := SanitizePhone(raw.Get("phone"))
	if name == "" || phone == "" {
		return nil, &ValidationError{Message: "Missing required fields: name and phone"}
	}

	firstName, lastName := SplitName(name)
	date := raw.Get("date")
	timeSlot := raw.Get("time")
	center := raw.Get("center")
	message := raw.Get("message")

	// Notes keep only the detail lines that have real values.
	detailLines := []string{
		fmt.Sprintf("Preferred Date: %s", orNA(date)),
		fmt.Sprintf("Preferred Time: %s", orNA(timeSlot)),
		fmt.Sprintf("Center: %s", orNA(center)),
	}
	var details []string
	for _, line := range detailLines {
		if !strings.Contains(line, "NA") {
			details = append(details, line)
		}
	}
	appointmentDetails := strings.Join(details, " | ")

	notes := appointmentDetails
	if message != "" {
		if appointmentDetails != "" {
			notes = appointmentDetails + " | Message: " + message
		} else {
			notes = "Message: " + message
		}
	}
	if notes == "" {
		notes = "Appointment booking request"
	}

	// The email message keeps every line, NA substituted for blanks.
	fullLines := detailLines
	if message != "" {
		fullLines = append(fullLines, "Message: "+message)
	}
	fullMessage := strings.Join(fullLines, " | ")

	lead := &Lead{}
	lead.Set("name", strings.TrimSpace(firstName+" "+lastName))
	lead.Set("phone", phone)
	lead.Set("email", raw.Get("email"))
	lead.Set("date", date)
	lead.Set("time", timeSlot)
	lead.Set("center", center)
	lead.Set("message", fullMessage)
	lead.SetExtra("firstName", firstName)
	lead.SetExtra("lastName", lastName)
	lead.SetExtra("source", "website form")
	lead.SetExtra("notes", notes)
	return lead, nil
}

func bookAppointmentAttributes(lead *Lead) []leadsquared.Attribute {
	return buildAttributes([]leadsquared.Attribute{
		{Attribute: "FirstName", Value: lead.Get("firstName")},
		{Attribute: "LastName", Value: lead.Get("lastName")},
		{Attribute: "Phone", Value: lead.Get("phone")},
		{Attribute: "EmailAddress", Value: lead.Get("email")},
		{Attribute: "mx_Appointment_Date", Value: lead.Get("date")},
		{Attribute: "mx_Appointment_Time", Value: lead.Get("time")},
		{Attribute: "mx_Center_Name", Value: lead.Get("center")},
		{Attribute: "Source", Value: lead.Get("source")},
		{Attribute: "Notes", Value: lead.Get("notes")},
	})
}
