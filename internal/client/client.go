package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/rest"
)

const (
	DefaultBaseURL = "http://localhost:3000"
	defaultTimeout = 15 * time.Second
)

// EnvelopeError is a response that arrived with success=false.
type EnvelopeError struct {
	Message string
}

func (e *EnvelopeError) Error() string {
	return e.Message
}

// Client reads the portal content API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for baseURL. A nil httpClient uses a client with a default timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// NewFromConfig creates a client for the public API URL of app (NEXT_PUBLIC_API_URL).
func NewFromConfig(app config.App, httpClient *http.Client) *Client {
	return NewClient(app.APIURL, httpClient)
}

// Videos lists videos from /api/videos-v2. Empty categoria and zero limit use the server defaults.
func (c *Client) Videos(ctx context.Context, categoria string, limit int) (rest.VideosResponse, error) {
	var resp rest.VideosResponse
	err := c.get(ctx, "/api/videos-v2", listQuery(categoria, limit), &resp)
	return resp, err
}

// MockVideos lists videos from /api/videos.
func (c *Client) MockVideos(ctx context.Context, categoria string, limit int) (rest.VideosResponse, error) {
	var resp rest.VideosResponse
	err := c.get(ctx, "/api/videos", listQuery(categoria, limit), &resp)
	return resp, err
}

func (c *Client) Posts(ctx context.Context, categoria string, limit int) (rest.PostsResponse, error) {
	var resp rest.PostsResponse
	err := c.get(ctx, "/api/posts", listQuery(categoria, limit), &resp)
	return resp, err
}

func (c *Client) Video(ctx context.Context, id int) (rest.Video, error) {
	var resp rest.VideoResponse
	err := c.get(ctx, "/api/videos/"+strconv.Itoa(id), nil, &resp)
	return resp.Video, err
}

func (c *Client) Post(ctx context.Context, id int) (rest.Post, error) {
	var resp rest.PostResponse
	err := c.get(ctx, "/api/posts/"+strconv.Itoa(id), nil, &resp)
	return resp.Post, err
}

// SiteCategories lists /api/categorias/site. That endpoint has no success flag, an
// error field alone marks a failure.
func (c *Client) SiteCategories(ctx context.Context) (rest.Categories, error) {
	var resp rest.CategoriesResponse
	body, err := c.do(ctx, "/api/categorias/site", nil)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	if resp.Error != "" {
		return nil, &EnvelopeError{Message: resp.Error}
	}

	return resp.Categorias, nil
}

func listQuery(categoria string, limit int) url.Values {
	q := url.Values{}
	if categoria != "" {
		q.Set("categoria", categoria)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

// get fetches path and decodes an envelope into out, turning success=false into *EnvelopeError.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.do(ctx, path, query)
	if err != nil {
		return err
	}

	var status rest.FailedResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if !status.Success {
		return &EnvelopeError{Message: status.Error}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		var e rest.ErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, e.Error)
		}
		return nil, fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}

	return body, nil
}
