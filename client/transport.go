package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tomatoplanet/leads-go/fieldschema"
)

// Result is the settled outcome of a submission call: exactly one of the
// two fields is set.
type Result struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Transport performs the remote submit call for a draft. Implementations
// must be safe for reuse across drafts.
type Transport interface {
	Submit(ctx context.Context, kind fieldschema.Kind, payload map[string]string) (Result, error)
}

// DefaultSubmitTimeout bounds a submission request. The original form had no
// timeout at all, which left the submit button disabled for as long as the
// network stack cared to wait; a bounded default avoids that while staying
// configurable.
const DefaultSubmitTimeout = 15 * time.Second

// HTTPTransport posts drafts to the leads API.
type HTTPTransport struct {
	BaseURL string
	// Locale is sent as Accept-Language so the success message comes
	// back localized.
	Locale string
	Client *http.Client
}

func NewHTTPTransport(baseURL string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: DefaultSubmitTimeout},
	}
}

func (t *HTTPTransport) Submit(ctx context.Context, kind fieldschema.Kind, payload map[string]string) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/applications/%s", t.BaseURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.Locale != "" {
		req.Header.Set("Accept-Language", t.Locale)
	}

	httpClient := t.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultSubmitTimeout}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("submit %s application: %w", kind, err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
