// Package amadeus is a small client for the Amadeus Self-Service flight APIs.
// It authenticates with the OAuth2 client-credentials flow and returns the
// upstream "data" payloads without reshaping them.
package amadeus

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

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/flight-search/flightsai/internal/infrastructure/logger"
)

// Upstream environments.
const (
	HostnameTest       = "test"
	HostnameProduction = "production"

	testBaseURL       = "https://test.api.amadeus.com"
	productionBaseURL = "https://api.amadeus.com"

	tokenPath = "/v1/security/oauth2/token"
	userAgent = "flightsai/1.0"
)

// Config holds the settings needed to build a Client.
type Config struct {
	// ClientID is the API key
	ClientID string

	// ClientSecret is the API secret
	ClientSecret string

	// Hostname selects the environment: "test" (default) or "production"
	Hostname string

	// BaseURL overrides Hostname when set (e.g., a local stub)
	BaseURL string

	// HTTPClient is the transport used for token and API calls.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives debug logs for upstream calls. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client talks to the Amadeus API. It is safe for concurrent use;
// the access token is fetched lazily and refreshed before it expires.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Response is a successful upstream reply.
type Response struct {
	// StatusCode is the HTTP status of the reply
	StatusCode int

	// Data is the raw "data" member of the body
	Data json.RawMessage

	// Meta is the raw "meta" member of the body, if any
	Meta json.RawMessage

	// Warnings lists non-fatal issues reported alongside the data
	Warnings []APIError
}

// BaseURLForHostname maps an environment name to its API base URL.
func BaseURLForHostname(hostname string) (string, error) {
	switch hostname {
	case "", HostnameTest:
		return testBaseURL, nil
	case HostnameProduction:
		return productionBaseURL, nil
	default:
		return "", fmt.Errorf("amadeus: unknown hostname %q (want %q or %q)", hostname, HostnameTest, HostnameProduction)
	}
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("amadeus: client id and secret are required")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		var err error
		baseURL, err = BaseURLForHostname(cfg.Hostname)
		if err != nil {
			return nil, err
		}
	}

	base := cfg.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	// The context only carries the base transport for token requests.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	return &Client{
		baseURL:    baseURL,
		httpClient: credentials.Client(tokenCtx),
		log:        log,
	}, nil
}

// BaseURL returns the API base URL the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the common shape of successful Amadeus replies.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	Meta     json.RawMessage `json:"meta,omitempty"`
	Warnings []APIError      `json:"warnings,omitempty"`
}

// get performs an authenticated GET and decodes the reply envelope.
// API-reported failures are returned as *ResponseError.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("amadeus: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/vnd.amadeus+json, application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			c.log.Debug().
				Str("request_id", logger.RequestIDFromContext(ctx)).
				Str("path", path).
				Msg("Token request rejected")
			return nil, newAuthenticationError(retrieveErr)
		}
		return nil, fmt.Errorf("amadeus: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("amadeus: read %s response: %w", path, err)
	}

	c.log.Debug().
		Str("request_id", logger.RequestIDFromContext(ctx)).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Upstream request")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newResponseError(resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("amadeus: decode %s response: %w", path, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Data:       env.Data,
		Meta:       env.Meta,
		Warnings:   env.Warnings,
	}, nil
}
