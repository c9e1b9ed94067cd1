// Copyright (C) 2017 ScyllaDB

package reaperclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/scylladb/go-log"
)

// Config specifies the connection to the reaper service.
type Config struct {
	// BaseURL is the address of the reaper REST API, scheme, host and port.
	BaseURL string
	// Transport is an optional http.RoundTripper override, used in tests.
	Transport http.RoundTripper
}

// DefaultConfig returns a Config pointing at a local reaper instance.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080",
	}
}

// Validate checks if the config is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return errors.Wrap(err, "invalid base URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host in base URL")
	}
	return nil
}

// Client provides means to interact with the reaper service. Every call is a
// single blocking round trip, there are no implicit retries.
type Client struct {
	config Config
	client *http.Client
	logger log.Logger
}

// NewClient creates a new reaper REST API client.
func NewClient(config Config, logger log.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	transport := config.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		config: config,
		client: &http.Client{Transport: transport},
		logger: logger,
	}, nil
}

// Call performs a single request against the service and returns the raw
// response payload. Parameters travel in the verb's conventional channel,
// query string for GET and PUT, form body for POST. Non-2xx responses fail
// with HTTPError carrying the status code and the raw body.
func (c *Client) Call(ctx context.Context, method, path string, params url.Values) (Value, error) {
	u, err := c.url(path)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(params) > 0 {
		if method == http.MethodPost {
			body = strings.NewReader(params.Encode())
		} else {
			u.RawQuery = params.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "invalid request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, TransportError{Cause: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, TransportError{Cause: errors.Wrap(err, "read response")}
	}

	c.logger.Debug(ctx, "Call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode/100 != 2 {
		return nil, HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}

	return Value(b), nil
}

func (c *Client) url(path string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(c.config.BaseURL, "/") + "/" + path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", path)
	}
	return u, nil
}
