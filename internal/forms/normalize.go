package forms

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Submission is a raw form submission exactly as received from the caller.
// Values are string-coerced; any field may be absent.
type Submission map[string]string

// Get returns the named raw field, or "" when absent.
func (s Submission) Get(key string) string {
	return s[key]
}

// ParseSubmission decodes a JSON request body into a Submission. Scalar
// values are coerced to strings the way the landing pages send them (phone
// numbers occasionally arrive as JSON numbers).
func ParseSubmission(r io.Reader) (Submission, error) {
	var raw map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, &ValidationError{Message: "Invalid request body"}
	}

	sub := make(Submission, len(raw))
	for key, value := range raw {
		sub[key] = coerceString(value)
	}
	return sub, nil
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// SanitizePhone strips every non-digit character and keeps only the last 10
// digits, so a leading country code is dropped. Returns "" for inputs with
// no digits at all.
func SanitizePhone(phone string) string {
	var digits []byte
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return string(digits)
}

// SplitName splits a single full-name string on whitespace: first token
// becomes the first name, the remainder the last name.
func SplitName(fullName string) (firstName, lastName string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// orNA substitutes the literal "NA" for unset descriptive fields inside
// composed text, never an empty string.
func orNA(value string) string {
	if value == "" {
		return "NA"
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func trimOK(s string) bool {
	return strings.TrimSpace(s) != ""
}
