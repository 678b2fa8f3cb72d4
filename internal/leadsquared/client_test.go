package leadsquared

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateLeadSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type %s", got)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var attrs []Attribute
		if err := json.Unmarshal(body, &attrs); err != nil {
			t.Fatalf("body is not an attribute list: %v", err)
		}
		if len(attrs) != 2 || attrs[0].Attribute != "FirstName" {
			t.Fatalf("unexpected payload: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Status":"Success","Message":{"Id":"lead-123"}}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	result, err := client.CreateLead(context.Background(), []Attribute{
		{Attribute: "FirstName", Value: "Jane"},
		{Attribute: "Phone", Value: "9876543210"},
	})
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}
	if result.Duplicate {
		t.Error("expected non-duplicate result")
	}
	if !strings.Contains(string(result.Raw), "lead-123") {
		t.Errorf("raw response not retained: %s", result.Raw)
	}
}

func TestCreateLeadDuplicateSignals(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"duplicate bool", `{"duplicate":true}`, true},
		{"duplicate string", `{"duplicate":"yes"}`, true},
		{"status duplicate", `{"status":"duplicate"}`, true},
		{"errorCode DUPLICATE", `{"errorCode":"DUPLICATE"}`, true},
		{"duplicate beside non-string status", `{"duplicate":true,"status":5}`, true},
		{"errorCode beside numeric duplicate", `{"duplicate":0,"errorCode":"DUPLICATE"}`, true},
		{"non-string status only", `{"status":5}`, false},
		{"fresh lead", `{"Status":"Success"}`, false},
		{"duplicate false", `{"duplicate":false}`, false},
		{"duplicate zero", `{"duplicate":0}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(Config{Endpoint: server.URL})
			result, err := client.CreateLead(context.Background(), nil)
			if err != nil {
				t.Fatalf("create lead: %v", err)
			}
			if result.Duplicate != tt.want {
				t.Errorf("duplicate = %v, want %v for body %s", result.Duplicate, tt.want, tt.body)
			}
		})
	}
}

func TestCreateLeadAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		w.Write([]byte(`{"Message":"Invalid attribute name"}`))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.CreateLead(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusPreconditionFailed {
		t.Errorf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid attribute name" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}

	want := "HTTP 412 Precondition Failed - Invalid attribute name"
	if got := Describe(err); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestCreateLeadPlainTextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	_, err := client.CreateLead(context.Background(), nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.ResponseMessage() != "upstream unavailable" {
		t.Errorf("unexpected response message %q", apiErr.ResponseMessage())
	}
	if got := Describe(err); got != "HTTP 502 Bad Gateway - upstream unavailable" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestResolveURLFromBaseAndKeys(t *testing.T) {
	client := New(Config{
		BaseURL:   "https://api.leadsquared.com/",
		AccessKey: "a key",
		SecretKey: "s/key",
	})

	got, err := client.resolveURL()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := "https://api.leadsquared.com/v2/LeadManagement.svc/Lead.Create?accessKey=a+key&secretKey=s%2Fkey"
	if got != want {
		t.Errorf("resolveURL() = %q, want %q", got, want)
	}
}

func TestResolveURLEndpointOverride(t *testing.T) {
	client := New(Config{
		Endpoint: "https://proxy.example.com/lead-create",
		BaseURL:  "https://ignored.example.com",
	})

	got, err := client.resolveURL()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "https://proxy.example.com/lead-create" {
		t.Errorf("endpoint override not used verbatim: %q", got)
	}
}

func TestResolveURLConfigErrors(t *testing.T) {
	var configErr *ConfigError

	_, err := New(Config{}).resolveURL()
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError for missing base URL, got %v", err)
	}

	_, err = New(Config{BaseURL: "https://api.leadsquared.com"}).resolveURL()
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError for missing keys, got %v", err)
	}
	if !strings.Contains(err.Error(), "keys") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestCreateLeadTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := New(Config{Endpoint: server.URL})
	_, err := client.CreateLead(context.Background(), nil)
	if err == nil {
		t.Fatal("expected transport error")
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failure should not be an APIError: %v", err)
	}
	if Describe(err) == "Unknown LeadSquared error" {
		t.Error("transport error should carry its own description")
	}
}

func TestDescribeUnknown(t *testing.T) {
	if got := Describe(errors.New("")); got != "Unknown LeadSquared error" {
		t.Errorf("Describe(empty) = %q", got)
	}
}

func TestCreateLeadNonJSONSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := New(Config{Endpoint: server.URL})
	result, err := client.CreateLead(context.Background(), nil)
	if err != nil {
		t.Fatalf("create lead: %v", err)
	}
	if !json.Valid(result.Raw) {
		t.Errorf("raw body must stay JSON-representable, got %s", result.Raw)
	}
}
