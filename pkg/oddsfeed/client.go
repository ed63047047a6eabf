package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is The Odds API v4 base URL.
	DefaultBaseURL = "https://api.the-odds-api.com/v4"

	// Conservative client-side ceiling; the real limit is the monthly
	// request quota, not a rate.
	defaultRateLimit = 5.0
	defaultBurst     = 3
)

// Client is an Odds API client. All requests carry the API key as a
// query parameter, per the API's auth scheme.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	oddsFormat string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRegions sets the bookmaker regions to query (default "us").
func WithRegions(regions string) ClientOption {
	return func(c *Client) {
		c.regions = regions
	}
}

// WithRateLimit sets custom rate limiting.
func WithRateLimit(rps float64, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a new Odds API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		regions:    "us",
		oddsFormat: "american",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Sports lists the sport keys the feed currently carries. Does not
// count against the request quota.
func (c *Client) Sports(ctx context.Context) ([]Sport, error) {
	var sports []Sport
	if _, err := c.get(ctx, "/sports", nil, &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

// Odds fetches current lines for a sport key in the given markets
// (comma-separated keys, e.g. "h2h" or "h2h,h2h_3_way").
func (c *Client) Odds(ctx context.Context, sportKey, markets string) (*OddsResponse, error) {
	params := url.Values{}
	params.Set("markets", markets)

	var events []Event
	quota, err := c.get(ctx, "/sports/"+sportKey+"/odds", params, &events)
	if err != nil {
		return nil, err
	}
	return &OddsResponse{Events: events, Quota: quota}, nil
}

// Outrights fetches futures lines for an outrights sport key (for
// example "basketball_nba_championship_winner").
func (c *Client) Outrights(ctx context.Context, sportKey string) (*OddsResponse, error) {
	return c.Odds(ctx, sportKey, MarketOutrights)
}

// get performs a GET request with rate limiting and returns the quota
// headers from the response.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) (Quota, error) {
	var quota Quota

	if err := c.limiter.Wait(ctx); err != nil {
		return quota, fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("oddsFormat", c.oddsFormat)

	u := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return quota, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return quota, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	quota = quotaFromHeaders(resp.Header)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return quota, fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return quota, fmt.Errorf("decode response: %w", err)
	}

	return quota, nil
}

// quotaFromHeaders parses the per-response usage headers. Missing or
// malformed headers read as zero.
func quotaFromHeaders(h http.Header) Quota {
	var q Quota
	if v, err := strconv.Atoi(h.Get("x-requests-remaining")); err == nil {
		q.Remaining = v
	}
	if v, err := strconv.Atoi(h.Get("x-requests-used")); err == nil {
		q.Used = v
	}
	return q
}
