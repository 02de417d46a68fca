// Package carrier implements the outbound client for the carrier's
// credential validation endpoint.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client validates merchant carrier credentials against the carrier's test
// endpoint. Validation has no side effect on the carrier's side, so a failed
// request is safe to retry verbatim.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a carrier client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// credentialsRequest is the carrier's expected payload. The field casing is
// the carrier's, not ours.
type credentialsRequest struct {
	Company companyPayload `json:"company"`
}

type companyPayload struct {
	Name  string `json:"name"`
	Key   string `json:"Key"`
	Token string `json:"Token"`
}

type credentialsResponse struct {
	Good bool `json:"good"`
}

// ValidateCredentials posts the credentials to the carrier's test endpoint.
// A 2xx response with a parseable body yields the carrier's verdict; anything
// else is a TransportError, which callers treat as retryable.
func (c *Client) ValidateCredentials(ctx context.Context, companyName, key, token string) (bool, error) {
	payload := credentialsRequest{
		Company: companyPayload{
			Name:  companyName,
			Key:   key,
			Token: token,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, errs.NewTransportErrorWithCause("carrier credentials payload", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/carrier/test", bytes.NewReader(body))
	if err != nil {
		return false, errs.NewTransportErrorWithCause("carrier test request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errs.NewTransportErrorWithCause("carrier test endpoint", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, errs.NewTransportError(
			fmt.Sprintf("carrier test endpoint returned status %d", resp.StatusCode))
	}

	var verdict credentialsResponse
	if err = json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return false, errs.NewTransportErrorWithCause("carrier test response", err)
	}

	return verdict.Good, nil
}
