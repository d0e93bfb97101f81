// Package tmdb is a client for The Movie Database REST API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/network"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the public v3 endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// DefaultLanguage is sent with every localized request unless configured otherwise.
const DefaultLanguage = "en-US"

// ErrDetails is returned when a details record could not be loaded.
var ErrDetails = errors.New("failed to fetch details")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s: unexpected status %d %s", e.Endpoint, e.Code, http.StatusText(e.Code))
}

// Client talks to the catalog with a single API key.
// It is safe for concurrent use.
type Client struct {
	key      string
	baseURL  string
	language string
	cache    bool
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithCache toggles the on-disk cache of details, people and seasons.
func WithCache(enabled bool) Option {
	return func(c *Client) {
		c.cache = enabled
	}
}

// WithLanguage overrides the language parameter.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// New returns a client for apiKey. Defaults are taken from the config.
func New(apiKey string, options ...Option) *Client {
	c := &Client{
		key:      strings.TrimSpace(apiKey),
		baseURL:  strings.TrimSuffix(viper.GetString(key.TMDBBaseURL), "/"),
		language: viper.GetString(key.TMDBLanguage),
		cache:    viper.GetBool(key.TMDBCache),
		http:     network.Client,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}

	if c.language == "" {
		c.language = DefaultLanguage
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// get requests endpoint with params plus the API key and decodes the body into target.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, target any) error {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	log.Debugf("tmdb: GET %s", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warnf("tmdb: %s returned status code %d", endpoint, resp.StatusCode)
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		log.Error(err)
		return fmt.Errorf("tmdb %s: decode: %w", endpoint, err)
	}

	return nil
}

// localized returns params with the language set.
func (c *Client) localized(params url.Values) url.Values {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("language") == "" {
		params.Set("language", c.language)
	}
	return params
}

// ValidateKey reports whether the key is accepted by the configuration endpoint.
// Any failure, including network errors, counts as invalid.
func (c *Client) ValidateKey(ctx context.Context) bool {
	if c.key == "" {
		return false
	}

	if err := c.get(ctx, "/configuration", nil, nil); err != nil {
		log.Warnf("tmdb: key validation failed: %v", err)
		return false
	}

	return true
}
