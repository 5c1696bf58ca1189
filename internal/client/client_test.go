package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerview/peerview/internal/config"
	"github.com/peerview/peerview/internal/logWriter"
	"github.com/peerview/peerview/internal/project"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ProxyBaseURL:   srv.URL,
		RequestTimeout: 2 * time.Second,
	}
	c, err := New(cfg, logWriter.New(io.Discard, false, true))
	require.NoError(t, err)
	// Retries would slow the error-path tests down to no benefit here.
	c.http.RetryMax = 0
	return c
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(&config.Config{}, logWriter.New(io.Discard, false, true))
	require.Error(t, err)
}

func TestSession(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/session", r.URL.Path)
		w.Write([]byte(`{"identity":{"peerId":"alice","urn":"rad:git:alice","handle":"alice"}}`))
	}))

	s, err := c.Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, project.PeerID("alice"), s.Identity.PeerID)
	assert.Equal(t, "alice", s.Identity.Handle)
}

func TestProject(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/rad:git:hwd1yre", r.URL.Path)
		w.Write([]byte(`{
			"urn": "rad:git:hwd1yre",
			"name": "sourcetree",
			"description": "a tree of sources",
			"defaultBranch": "main",
			"maintainers": ["rad:git:alice"]
		}`))
	}))

	p, err := c.Project(context.Background(), "rad:git:hwd1yre")
	require.NoError(t, err)
	assert.Equal(t, "sourcetree", p.Name)
	assert.Equal(t, "main", p.DefaultBranch)
	assert.Equal(t, []string{"rad:git:alice"}, p.Maintainers)
}

func TestRevisions(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/projects/rad:git:hwd1yre/revisions", r.URL.Path)
		w.Write([]byte(`[
			{"id":"1b671a64-40d5-491e-99b0-da01ff1f3341","identity":{"peerId":"alice","handle":"alice"},"branches":["main"],"tags":["v1.0"]},
			{"id":"2b671a64-40d5-491e-99b0-da01ff1f3341","identity":{"peerId":"bob","handle":"bob"},"branches":["main","wip"],"tags":[]}
		]`))
	}))

	revs, err := c.Revisions(context.Background(), "rad:git:hwd1yre")
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.Equal(t, project.PeerID("alice"), revs[0].Identity.PeerID)
	assert.Equal(t, []string{"main", "wip"}, revs[1].Branches)
}

func TestAPIErrorFromErrorBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"project not found","variant":"NOT_FOUND"}`))
	}))

	_, err := c.Project(context.Background(), "rad:git:missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "project not found", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "project not found")
}

func TestAPIErrorFromOpaqueBody(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))

	_, err := c.Session(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "unexpected status 500")
}
