// Package network provides the shared HTTP client used for catalog and language-model requests.
package network

import (
	"net/http"
	"time"

	"github.com/cinemind-cli/cinemind/constant"
)

// Client is shared by every API client. Requests carry the application User-Agent
// unless the caller already set one.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: &userAgentTransport{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 50
	// season batches hit one host with up to 15 requests at once
	t.MaxIdleConnsPerHost = 20
	t.MaxConnsPerHost = 40
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 20 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", constant.UserAgent)
	return t.base.RoundTrip(clone)
}
