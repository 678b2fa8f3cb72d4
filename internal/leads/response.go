package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/seedsofinnocence/leads-gateway/internal/forms"
	"github.com/seedsofinnocence/leads-gateway/internal/leadsquared"
)

const (
	duplicateMessage = "We have already received your consultation request with these details."
	submittedMessage = "Your consultation request has been submitted successfully!"
)

type consultationResponse struct {
	Success             bool            `json:"success"`
	Message             string          `json:"message"`
	Duplicate           bool            `json:"duplicate"`
	LeadSquaredResponse json.RawMessage `json:"leadSquaredResponse"`
	SubmittedAt         string          `json:"submittedAt"`
}

type okResponse struct {
	OK                  bool            `json:"ok"`
	Duplicate           bool            `json:"duplicate"`
	LeadSquaredResponse json.RawMessage `json:"leadSquaredResponse"`
	SubmittedAt         string          `json:"submittedAt"`
}

func writeSuccess(w http.ResponseWriter, form *forms.Form, result *leadsquared.CreateLeadResult, submittedAt time.Time) {
	var body any
	switch form.Style {
	case forms.StyleSuccessMessage:
		message := submittedMessage
		if result.Duplicate {
			message = duplicateMessage
		}
		body = consultationResponse{
			Success:             true,
			Message:             message,
			Duplicate:           result.Duplicate,
			LeadSquaredResponse: result.Raw,
			SubmittedAt:         submittedAt.Format(time.RFC3339),
		}
	default:
		body = okResponse{
			OK:                  true,
			Duplicate:           result.Duplicate,
			LeadSquaredResponse: result.Raw,
			SubmittedAt:         submittedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, form.SuccessStatus, body)
}

func writeError(w http.ResponseWriter, form *forms.Form, err error) {
	status, message := shapeError(err)

	var body any
	switch form.Style {
	case forms.StyleSuccessMessage:
		body = struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{false, message}
	case forms.StyleOKMessage:
		body = struct {
			OK      bool   `json:"ok"`
			Message string `json:"message"`
		}{false, message}
	default:
		body = struct {
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		}{false, message}
	}
	writeJSON(w, status, body)
}

// shapeError maps the closed set of pipeline errors to an HTTP status and a
// caller-facing message. Anything unrecognized becomes a 500.
func shapeError(err error) (int, string) {
	var validationErr *forms.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	var configErr *leadsquared.ConfigError
	if errors.As(err, &configErr) {
		return http.StatusInternalServerError, configErr.Message
	}

	var apiErr *leadsquared.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, apiErr.ResponseMessage()
	}

	message := "Unknown error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return http.StatusInternalServerError, message
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
