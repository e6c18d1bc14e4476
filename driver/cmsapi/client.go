// Package cmsapi provides an HTTP client for the CMS's internal content
// API, used for URL resolution.
package cmsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const serviceTokenHeader = "X-Service-Token"

// Client talks to the CMS URL-provider endpoint. It implements
// gateway.URLDriver.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type urlResponse struct {
	URL string `json:"url"`
}

// ResolveURL returns the public URL of the content entity. Unpublished or
// unroutable content (404 from the CMS) yields an empty URL and no error.
func (c *Client) ResolveURL(ctx context.Context, contentID int64) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/content/%d/url", c.baseURL, contentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("ResolveURL: %w", err)
	}
	if c.serviceToken != "" {
		req.Header.Set(serviceTokenHeader, c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ResolveURL: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", nil
	default:
		return "", fmt.Errorf("ResolveURL: unexpected status %d for content %d", resp.StatusCode, contentID)
	}

	var body urlResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("ResolveURL: decode response: %w", err)
	}

	return body.URL, nil
}
