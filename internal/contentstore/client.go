// Copyright (c) 2025-2026 GIReach Academia
// SPDX-License-Identifier: GPL-3.0-or-later

package contentstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mrscientist29/GIReachAcademia-sub000/internal/model"
)

// ErrNotFound reports a page the remote API does not have.
var ErrNotFound = errors.New("page not found")

// Client talks to the content API. The remote side is the source of truth
// for page content.
type Client struct {
	baseURL string
	http    *http.Client

	// tokenSource supplies the current session token for write requests.
	// Content writes are admin-only on the server, so an unauthenticated
	// client can read but its writes will be rejected.
	tokenSource func() string
}

// NewClient creates a content API client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client, tokenSource func() string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        httpClient,
		tokenSource: tokenSource,
	}
}

// authorize attaches the bearer token, if a token source is configured and
// currently yields one.
func (c *Client) authorize(req *http.Request) {
	if c.tokenSource == nil {
		return
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// envelope matches the API's {data: ...} response shape.
type envelope[T any] struct {
	Data T `json:"data"`
}

// FetchAll retrieves the full page collection.
func (c *Client) FetchAll(ctx context.Context) ([]model.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/content", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching content collection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching content collection: status %d", resp.StatusCode)
	}

	var body envelope[[]model.PageContent]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding content collection: %w", err)
	}
	return body.Data, nil
}

// FetchPage retrieves one page. Returns ErrNotFound on a 404.
func (c *Client) FetchPage(ctx context.Context, pageID string) (*model.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/content/"+pageID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %s: %w", pageID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("fetching page %s: status %d", pageID, resp.StatusCode)
	}

	var body envelope[model.PageContent]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding page %s: %w", pageID, err)
	}
	return &body.Data, nil
}

// PutPage writes a page to the remote API.
func (c *Client) PutPage(ctx context.Context, pc *model.PageContent) error {
	payload, err := json.Marshal(pc)
	if err != nil {
		return fmt.Errorf("encoding page %s: %w", pc.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/api/v1/content/"+pc.ID, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("saving page %s: %w", pc.ID, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("saving page %s: status %d", pc.ID, resp.StatusCode)
	}
	return nil
}
