// Package leadsquared wraps the LeadSquared Lead.Create REST endpoint.
package leadsquared

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

const leadCreatePath = "/v2/LeadManagement.svc/Lead.Create"

// Attribute is a single entry of the flat attribute list LeadSquared expects
// as the Lead.Create request body.
type Attribute struct {
	Attribute string `json:"Attribute"`
	Value     string `json:"Value"`
}

// Config controls how the LeadSquared client behaves.
type Config struct {
	// Endpoint, when set, is used verbatim and overrides BaseURL + keys.
	Endpoint  string
	BaseURL   string
	AccessKey string
	SecretKey string

	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client performs lead-creation calls against LeadSquared.
type Client struct {
	endpoint   string
	baseURL    string
	accessKey  string
	secretKey  string
	httpClient *http.Client
	logger     *logging.Logger
}

// New creates a configured Client. Credential validation is deferred to the
// first call so that a misconfigured deployment still serves health checks.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		baseURL:    strings.TrimSpace(cfg.BaseURL),
		accessKey:  cfg.AccessKey,
		secretKey:  cfg.SecretKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// CreateLeadResult carries the raw CRM response body plus the duplicate
// classification derived from it.
type CreateLeadResult struct {
	Raw       json.RawMessage
	Duplicate bool
}

// resolveURL picks the explicit endpoint if configured, otherwise builds the
// Lead.Create URL from the base URL and the access/secret key pair.
func (c *Client) resolveURL() (string, error) {
	if c.endpoint != "" {
		return c.endpoint, nil
	}

	base := strings.TrimSuffix(c.baseURL, "/")
	if base == "" {
		return "", &ConfigError{Message: "LeadSquared base URL is not configured"}
	}
	if c.accessKey == "" || c.secretKey == "" {
		return "", &ConfigError{Message: "LeadSquared keys are not configured"}
	}

	return fmt.Sprintf("%s%s?accessKey=%s&secretKey=%s",
		base, leadCreatePath,
		url.QueryEscape(c.accessKey), url.QueryEscape(c.secretKey)), nil
}

// CreateLead performs a single Lead.Create call. It makes exactly one
// attempt: the caller decides how a failure is surfaced.
func (c *Client) CreateLead(ctx context.Context, attrs []Attribute) (*CreateLeadResult, error) {
	target, err := c.resolveURL()
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(attrs)
	if err != nil {
		return nil, fmt.Errorf("leadsquared: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("leadsquared: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("leadsquared: http error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leadsquared: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp.StatusCode, data)
		c.logger.Error("leadsquared call failed",
			"status", resp.StatusCode,
			"body", string(data),
		)
		return nil, apiErr
	}

	raw := json.RawMessage(data)
	if !json.Valid(data) {
		// LeadSquared occasionally returns a bare string body; keep it
		// representable as JSON for the caller's response.
		raw, _ = json.Marshal(string(data))
	}

	return &CreateLeadResult{
		Raw:       raw,
		Duplicate: isDuplicate(data),
	}, nil
}

// isDuplicate reports whether a successful Lead.Create response signals that
// an equivalent lead already exists: `duplicate` truthy, `status` equal to
// "duplicate", or `errorCode` equal to "DUPLICATE".
func isDuplicate(body []byte) bool {
	// Decode into a loose map so one ill-typed field cannot mask the other
	// signals.
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	if truthy(fields["duplicate"]) {
		return true
	}
	if status, ok := fields["status"].(string); ok && status == "duplicate" {
		return true
	}
	if code, ok := fields["errorCode"].(string); ok && code == "DUPLICATE" {
		return true
	}
	return false
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}
