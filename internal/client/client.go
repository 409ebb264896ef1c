// Package client queries a remote databoxes server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ivoronin/databoxes/internal/server"
	"github.com/ivoronin/databoxes/internal/store"
	"github.com/ivoronin/databoxes/internal/version"
)

// Client talks to one server.
type Client struct {
	base    *url.URL
	http    *retryablehttp.Client
	log     *slog.Logger
	version string
}

// Options configures a Client.
type Options struct {
	Timeout time.Duration
	Retries int
	Version string // client version, compared with the server's
	Logger  *slog.Logger
}

// New returns a client for the server at baseURL.
func New(baseURL string, opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.Retries
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = log
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}

	return &Client{base: base, http: rc, log: log, version: opts.Version}, nil
}

// ListParams are the query parameters of GET /databoxes. Zero values are
// left for the server to default.
type ListParams struct {
	Where  string
	Select string
	Take   *int
	Skip   *int
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Where != "" {
		v.Set("where", p.Where)
	}
	if p.Select != "" {
		v.Set("select", p.Select)
	}
	if p.Take != nil {
		v.Set("take", strconv.Itoa(*p.Take))
	}
	if p.Skip != nil {
		v.Set("skip", strconv.Itoa(*p.Skip))
	}
	return v
}

// RequestError is returned for non-2xx responses.
type RequestError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("server returned %d (%s): %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// List fetches one page of databoxes.
func (c *Client) List(ctx context.Context, p ListParams) ([]store.Record, error) {
	var records []store.Record
	if err := c.get(ctx, "/databoxes", p.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single databox.
func (c *Client) Get(ctx context.Context, id string) (store.Record, error) {
	var record store.Record
	if err := c.get(ctx, "/databoxes/"+url.PathEscape(id), nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// ServerVersion returns the version reported by the server's health check.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	var health map[string]string
	v, err := c.do(ctx, "/health", nil, &health)
	if err != nil {
		return "", err
	}
	return v, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, path, query, out)
	return err
}

// do performs a GET, decodes a 200 body into out and returns the server
// version header.
func (c *Client) do(ctx context.Context, path string, query url.Values, out any) (string, error) {
	u := *c.base
	u.Path += path
	u.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u.Redacted(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	serverVersion := resp.Header.Get(server.VersionHeader)
	c.checkVersion(serverVersion)

	if resp.StatusCode != http.StatusOK {
		var body server.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return serverVersion, &RequestError{StatusCode: resp.StatusCode, Kind: body.Kind, Message: body.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return serverVersion, fmt.Errorf("decode %s: %w", u.Redacted(), err)
	}
	return serverVersion, nil
}

// checkVersion warns when client and server disagree on the major version.
func (c *Client) checkVersion(serverVersion string) {
	if serverVersion == "" || c.version == "" {
		return
	}
	ok, err := version.Compatible(c.version, serverVersion)
	if err != nil {
		c.log.Debug("cannot compare versions", "client", c.version, "server", serverVersion, "error", err)
		return
	}
	if !ok {
		c.log.Warn("server version differs in major version", "client", c.version, "server", serverVersion)
	}
}
