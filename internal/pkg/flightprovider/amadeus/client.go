package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cnwoye/itinerary-planner-service/internal/pkg/flightprovider"
	"github.com/go-redis/redis_rate/v10"
)

const (
	tokenPath        = "/v1/security/oauth2/token"
	flightOffersPath = "/v2/shopping/flight-offers"

	// searchTimeLayout is the zone-less timestamp format of offer departure
	// and arrival times; values are taken as UTC, matching the planner's
	// time base.
	searchTimeLayout = "2006-01-02T15:04:05"

	maxOffers = 100
)

// Client talks to the Amadeus self-service API: oauth2 client-credentials
// token handling plus flight-offers search with bounded timeout, retry with
// exponential backoff, and a shared rate limiter. Safe for concurrent use;
// the token cache is the only mutable state.
type Client struct {
	apiURL       string
	apiKey       string
	apiSecret    string
	timeout      time.Duration
	maxRetries   int
	rateLimitRPS int
	limiter      *redis_rate.Limiter
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(config flightprovider.FlightProviderConfig) *Client {
	return &Client{
		apiURL:       config.APIURL,
		apiKey:       config.APIKey,
		apiSecret:    config.APISecret,
		timeout:      config.Timeout,
		maxRetries:   config.MaxRetries,
		rateLimitRPS: config.RateLimitRPS,
		limiter:      config.Limiter,
		httpClient:   &http.Client{},
	}
}

// SearchOffers fetches flight offers for the route on the given calendar
// date. Transport and server errors are retried with exponential backoff up
// to MaxRetries; the whole call runs under the configured timeout.
func (c *Client) SearchOffers(ctx context.Context, origin, destination string,
	date time.Time) ([]Offer, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.allowRequest(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		offers, err := c.searchOnce(ctx, origin, destination, date)
		if err == nil {
			return offers, nil
		}

		lastErr = err
		slog.WarnContext(ctx, "flight offers search failed",
			slog.Int("attempt", attempt+1),
			slog.String("origin", origin),
			slog.String("destination", destination),
			slog.Any("error", err))

		if attempt < c.maxRetries {
			// Exponential backoff: 200ms * 2^attempt
			backoff := time.Duration(200*(1<<attempt)) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("flight offers search failed after %d attempts: %w",
		c.maxRetries+1, lastErr)
}

func (c *Client) allowRequest(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	res, err := c.limiter.Allow(ctx, "limit:amadeus", redis_rate.PerSecond(c.rateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}

func (c *Client) searchOnce(ctx context.Context, origin, destination string,
	date time.Time) ([]Offer, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", origin)
	query.Set("destinationLocationCode", destination)
	query.Set("departureDate", date.Format("2006-01-02"))
	query.Set("adults", "1")
	query.Set("currencyCode", "USD")
	query.Set("max", fmt.Sprintf("%d", maxOffers))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.apiURL+flightOffersPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build flight offers request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight offers request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, fmt.Errorf("flight offers request: unexpected status %d: %s",
			resp.StatusCode, string(body))
	}

	var offers flightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, fmt.Errorf("decode flight offers response: %w", err)
	}

	return offers.Data, nil
}

// token returns a cached access token, fetching a fresh one when the cached
// token is missing or within a minute of expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request: unexpected status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.accessToken, nil
}
