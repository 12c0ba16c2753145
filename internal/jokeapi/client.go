package jokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tinytelemetry/punchline/internal/model"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client fetches two-part jokes from a JokeAPI v2 compatible service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for baseURL. An empty baseURL uses the public service.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = model.DefaultAPIBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    model.DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response covers both the success and the error payload.
type response struct {
	Error    bool   `json:"error"`
	Message  string `json:"message"`
	ID       int    `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

// URL returns the request URL for category, which must already be canonical.
func (c *Client) URL(category string) string {
	q := url.Values{}
	q.Set("blacklistFlags", strings.Join(model.BlacklistFlags, ","))
	q.Set("type", "twopart")
	// Encode escapes the commas; the service accepts both forms.
	return c.baseURL + "/" + url.PathEscape(category) + "?" + q.Encode()
}

// Fetch performs one request for category. It never retries.
func (c *Client) Fetch(ctx context.Context, category string) (model.Joke, error) {
	canonical, ok := model.CanonicalCategory(category)
	if !ok {
		return model.Joke{}, &FetchError{Kind: KindInvalidCategory, Category: category}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(canonical), nil)
	if err != nil {
		return model.Joke{}, &FetchError{Kind: KindTransport, Category: canonical, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.Joke{}, &FetchError{Kind: KindTransport, Category: canonical, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return model.Joke{}, &FetchError{Kind: KindHTTPStatus, Category: canonical, StatusCode: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		kind := KindDecode
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			kind = KindTransport
		}
		return model.Joke{}, &FetchError{Kind: kind, Category: canonical, Err: err}
	}

	if body.Error {
		return model.Joke{}, &FetchError{Kind: KindApplication, Category: canonical, Message: body.Message}
	}
	if body.Setup == "" || body.Delivery == "" {
		return model.Joke{}, &FetchError{
			Kind:     KindDecode,
			Category: canonical,
			Err:      fmt.Errorf("response missing setup or delivery (type %q)", body.Type),
		}
	}

	joke := model.Joke{
		ID:       body.ID,
		Category: body.Category,
		Setup:    body.Setup,
		Delivery: body.Delivery,
	}
	if joke.Category == "" {
		joke.Category = model.CategoryAny
	}
	return joke, nil
}
