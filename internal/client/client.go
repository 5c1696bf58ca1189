// Package client talks to the proxy daemon's v1 JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/peerview/peerview/internal/config"
	"github.com/peerview/peerview/internal/logWriter"
	"github.com/peerview/peerview/internal/project"
)

// Client fetches session, project and revision data from the proxy.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	log     *logWriter.Logger
}

// APIError is a non-2xx reply decoded from the proxy's error body.
type APIError struct {
	Status  int
	Message string `json:"message"`
	Variant string `json:"variant"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("proxy: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("proxy: %s (status %d)", e.Message, e.Status)
}

// New creates a client for the proxy at cfg.ProxyBaseURL.
func New(cfg *config.Config, log *logWriter.Logger) (*Client, error) {
	if cfg.ProxyBaseURL == "" {
		return nil, fmt.Errorf("client: PROXY_BASE_URL is not set")
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	rc.HTTPClient.Timeout = cfg.RequestTimeout

	return &Client{
		baseURL: cfg.ProxyBaseURL,
		http:    rc,
		log:     log,
	}, nil
}

// Session fetches the active local session.
func (c *Client) Session(ctx context.Context) (project.Session, error) {
	var s project.Session
	if err := c.get(ctx, "/v1/session", &s); err != nil {
		return project.Session{}, fmt.Errorf("fetching session: %w", err)
	}
	return s, nil
}

// Project fetches the metadata of the project with the given urn.
func (c *Client) Project(ctx context.Context, urn string) (project.Project, error) {
	var p project.Project
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(urn), &p); err != nil {
		return project.Project{}, fmt.Errorf("fetching project %s: %w", urn, err)
	}
	return p, nil
}

// Revisions fetches the revision list of the project with the given urn.
// The proxy puts the local peer's revision first, which makes it the
// default selection.
func (c *Client) Revisions(ctx context.Context, urn string) ([]project.Revision, error) {
	var revs []project.Revision
	if err := c.get(ctx, "/v1/projects/"+url.PathEscape(urn)+"/revisions", &revs); err != nil {
		return nil, fmt.Errorf("fetching revisions of %s: %w", urn, err)
	}
	return revs, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		// A body that is not the proxy's error shape still yields a usable
		// status-only error.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		c.log.Errorf("GET %s failed: %v", path, apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding reply of GET %s: %w", path, err)
	}
	return nil
}
