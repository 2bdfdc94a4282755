// Package client is the typed SDK for the billing API. Every operation is a
// single round trip: no retries, no caching. Payloads are validated against
// the entity schemas before anything goes on the wire, so a validation
// failure never costs a network call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// PermissionDeniedMessage replaces the raw transport error when an update is
// rejected with 403.
const PermissionDeniedMessage = "You don't have permission to update this resource"

// ErrPermissionDenied is returned by update operations on a 403 response.
var ErrPermissionDenied = errors.New(PermissionDeniedMessage)

// APIError is any non-2xx response from the API, carried to the caller
// unexamined.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// Page is the list-response envelope.
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"totalCount"`
}

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// expandValues turns relation names into the expansion query params the API
// understands, e.g. ["customer"] becomes "?customer=true".
func expandValues(relations []string) url.Values {
	if len(relations) == 0 {
		return nil
	}
	v := url.Values{}
	for _, relation := range relations {
		v.Set(relation, "true")
	}
	return v
}

// translateUpdateError substitutes the fixed permission message for a 403 so
// callers can show it as-is instead of the raw transport error.
func translateUpdateError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		return ErrPermissionDenied
	}
	return err
}
