// Package api talks to the remote to-do service over JSON/HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Makepad-fr/tada/internal/model"
)

// DefaultBaseURL is the collection URL used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/Todo"

// Client is a thin wrapper over the four collection endpoints.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends "Authorization: Bearer <token>" on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	c := &Client{base: baseURL, http: &http.Client{}}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// BaseURL returns the collection URL.
func (c *Client) BaseURL() string { return c.base }

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, c.base, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create posts a new incomplete item and returns what the server stored. A
// reply without an id is ErrNoID: the item could not be addressed later.
func (c *Client) Create(ctx context.Context, title string) (model.Item, error) {
	var out model.Item
	if err := c.do(ctx, http.MethodPost, c.base, model.NewItem{Title: title}, &out); err != nil {
		return model.Item{}, err
	}
	if out.ID.IsZero() {
		return model.Item{}, fmt.Errorf("%s %s: %w", http.MethodPost, c.base, ErrNoID)
	}
	return out, nil
}

// Update replaces the item. The response body is not needed by callers.
func (c *Client) Update(ctx context.Context, item model.Item) error {
	return c.do(ctx, http.MethodPut, c.itemURL(item.ID), item, nil)
}

func (c *Client) Delete(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id model.ID) string {
	return c.base + "/" + url.PathEscape(id.String())
}

func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: marshal: %w", method, target, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, target, err)
	}
	return nil
}
