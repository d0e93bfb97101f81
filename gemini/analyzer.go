// Package gemini turns natural-language queries into catalog filters
// with the Gemini generative language API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cinemind-cli/cinemind/internal/cache"
	"github.com/cinemind-cli/cinemind/key"
	"github.com/cinemind-cli/cinemind/log"
	"github.com/cinemind-cli/cinemind/network"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"
)

// ErrMissingKey is returned before any request when no key is configured.
var ErrMissingKey = errors.New("missing Gemini API key")

var errEmptyResponse = errors.New("no response from model")

// Analyzer calls the generateContent endpoint of one model.
type Analyzer struct {
	key     string
	baseURL string
	model   string
	cache   bool
	http    *http.Client
}

// Option configures an Analyzer.
type Option func(*Analyzer)

func WithBaseURL(baseURL string) Option {
	return func(a *Analyzer) {
		a.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(a *Analyzer) {
		a.http = client
	}
}

// WithCache toggles the on-disk cache of successful analyses.
func WithCache(enabled bool) Option {
	return func(a *Analyzer) {
		a.cache = enabled
	}
}

// New returns an analyzer for apiKey. Defaults are taken from the config.
func New(apiKey string, options ...Option) *Analyzer {
	a := &Analyzer{
		key:     strings.TrimSpace(apiKey),
		baseURL: strings.TrimSuffix(viper.GetString(key.GeminiBaseURL), "/"),
		model:   viper.GetString(key.GeminiModel),
		cache:   viper.GetBool(key.GeminiCache),
		http:    network.Client,
	}

	if a.baseURL == "" {
		a.baseURL = DefaultBaseURL
	}

	if a.model == "" {
		a.model = DefaultModel
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// Model is the model name requests are sent to.
func (a *Analyzer) Model() string {
	return a.model
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
	GenerationConfig  struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Analyze converts query into a Filter.
// Only a missing key is an error; every other failure yields Fallback(query).
func (a *Analyzer) Analyze(ctx context.Context, query string) (*Filter, error) {
	if a.key == "" {
		return nil, ErrMissingKey
	}

	cacheKey := cache.GenerateKey(query, a.model)
	if a.cache {
		var cached Filter
		if cache.Read(cacheKey, &cached) {
			log.Debugf("gemini: cached analysis for %q", query)
			return &cached, nil
		}
	}

	filter, err := a.generate(ctx, query)
	if err != nil {
		log.Warnf("gemini: falling back to a keyword search for %q: %v", query, err)
		return Fallback(query), nil
	}

	if a.cache {
		if err := cache.Write(cacheKey, filter); err != nil {
			log.Warnf("gemini: failed to cache analysis: %v", err)
		}
	}

	return filter, nil
}

func (a *Analyzer) generate(ctx context.Context, query string) (*Filter, error) {
	var body generateRequest
	body.SystemInstruction = content{Parts: []part{{Text: SystemPrompt}}}
	body.Contents = []content{{Role: "user", Parts: []part{{Text: query}}}}
	body.GenerationConfig.ResponseMimeType = "application/json"

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", a.baseURL, a.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.key)

	log.Infof("gemini: analysing %q with %s", query, a.model)
	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response.Candidates) == 0 {
		return nil, errEmptyResponse
	}

	var text strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	if strings.TrimSpace(text.String()) == "" {
		return nil, errEmptyResponse
	}

	var filter Filter
	if err := json.Unmarshal([]byte(text.String()), &filter); err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}

	if filter.SearchType == "" {
		filter.SearchType = General
	}

	return &filter, nil
}
