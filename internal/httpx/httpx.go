package httpx

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/Adaptive-Decentralized-Home-Devices/CryptoMAX/internal/provider"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=httpx_test -destination=mock_http_client_test.go -source=httpx.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a small wrapper around http.Client with sane defaults.
// Headers are applied to every request unless the call overrides them.
type Client struct {
	HTTP      HTTPClient
	UserAgent string
	Headers   map[string]string
}

func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          64,
		MaxIdleConnsPerHost:   8,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout, Transport: transport},
		UserAgent: "CryptoMAX Staking Bot",
		Headers:   map[string]string{"Accept": "application/json"},
	}
}

func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, v := range c.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return c.HTTP.Do(req)
}

// GetJSON issues a GET against url and decodes the body as arbitrary
// JSON. Extra headers take precedence over the client defaults.
// Failures come back as *provider.FetchError so the aggregator can
// classify them without inspecting message strings.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, provider.TransportErr(url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, provider.TransportErr(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, provider.StatusErr(url, resp.StatusCode)
	}
	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, provider.DecodeErr(url, err)
	}
	return payload, nil
}
