package leadsquared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError indicates the CRM endpoint or credentials are not configured.
// It maps to a 500-class response.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// APIError is a non-2xx response from LeadSquared.
type APIError struct {
	StatusCode int
	StatusText string
	Message    string // Message/message field extracted from the body, if any
	Body       string // raw response body
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("leadsquared: %s (status=%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("leadsquared: http status %d", e.StatusCode)
}

// ResponseMessage is the text surfaced to the submitting caller: the raw
// body when present, falling back to the extracted message.
func (e *APIError) ResponseMessage() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	if e.Message != "" {
		return e.Message
	}
	return "Unknown error"
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		StatusText: http.StatusText(status),
		Body:       string(body),
	}

	var parsed struct {
		MessageUpper string `json:"Message"`
		MessageLower string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.MessageUpper != "" {
			apiErr.Message = parsed.MessageUpper
		} else {
			apiErr.Message = parsed.MessageLower
		}
	}
	return apiErr
}

// Describe builds the human-readable failure description recorded in the
// notification email: "HTTP <code> <text> - <message>" with either part
// omitted when unavailable.
func Describe(err error) string {
	var parts []string

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		statusPart := fmt.Sprintf("HTTP %d", apiErr.StatusCode)
		if apiErr.StatusText != "" {
			statusPart += " " + apiErr.StatusText
		}
		parts = append(parts, statusPart)

		switch {
		case apiErr.Message != "":
			parts = append(parts, apiErr.Message)
		case strings.TrimSpace(apiErr.Body) != "":
			parts = append(parts, apiErr.Body)
		}
	} else if err != nil && err.Error() != "" {
		parts = append(parts, err.Error())
	}

	if len(parts) == 0 {
		return "Unknown LeadSquared error"
	}
	return strings.Join(parts, " - ")
}
