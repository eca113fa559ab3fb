package tracker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const probeTimeout = 5 * time.Second

// forwardedParams are the only query parameters the fast redirect path
// passes through to the tracker.
var forwardedParams = []string{
	"sub1", "sub2", "sub3", "sub4", "sub5",
	"source",
	"utm_source", "utm_medium", "utm_campaign",
}

// ClickContext carries per-request attributes appended to a tracked
// click URL. Empty fields are omitted from the query string.
type ClickContext struct {
	UserAgent string
	Referer   string
	IPAddress string
}

// Client builds outbound Keitaro tracker URLs and probes tracker
// reachability. URL construction is pure; only Probe touches the
// network.
type Client struct {
	baseURL     *url.URL
	apiKey      string
	fallbackURL string
	httpClient  *http.Client
}

// NewClient validates the tracker base URL and returns a client. A
// malformed base URL is a configuration error and fails startup.
func NewClient(baseURL, apiKey, fallbackURL string) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("tracker base url is empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse tracker base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("tracker base url %q must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("tracker base url %q has no host", baseURL)
	}
	return &Client{
		baseURL:     parsed,
		apiKey:      strings.TrimSpace(apiKey),
		fallbackURL: strings.TrimSpace(fallbackURL),
		httpClient:  &http.Client{Timeout: probeTimeout},
	}, nil
}

// ClickURL builds the tracked redirect target for a campaign. Request
// attributes are appended only when present; the api key is appended
// only when configured.
func (c *Client) ClickURL(campaignID string, clickCtx ClickContext) string {
	target := c.clickPath(campaignID)
	query := url.Values{}
	if ua := strings.TrimSpace(clickCtx.UserAgent); ua != "" {
		query.Set("ua", ua)
	}
	if ref := strings.TrimSpace(clickCtx.Referer); ref != "" {
		query.Set("ref", ref)
	}
	if ip := strings.TrimSpace(clickCtx.IPAddress); ip != "" {
		query.Set("ip", ip)
	}
	if c.apiKey != "" {
		query.Set("api_key", c.apiKey)
	}
	if encoded := query.Encode(); encoded != "" {
		return target + "?" + encoded
	}
	return target
}

// GoURL builds the untracked fast redirect target, forwarding only the
// allow-listed query parameters.
func (c *Client) GoURL(campaignID string, incoming url.Values) string {
	target := c.clickPath(campaignID)
	query := url.Values{}
	for _, name := range forwardedParams {
		if value := strings.TrimSpace(incoming.Get(name)); value != "" {
			query.Set(name, value)
		}
	}
	if encoded := query.Encode(); encoded != "" {
		return target + "?" + encoded
	}
	return target
}

// FallbackURL is the redirect target used when click recording cannot
// produce a tracker URL.
func (c *Client) FallbackURL() string {
	return c.fallbackURL
}

// BaseURL returns the configured tracker base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Probe checks tracker reachability for the health endpoint. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL.String(), nil)
	if err != nil {
		return fmt.Errorf("build tracker probe request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tracker unreachable: %w", err)
	}
	defer resp.Body.Close()
	return nil
}

func (c *Client) clickPath(campaignID string) string {
	return c.baseURL.String() + "/click/" + url.PathEscape(strings.TrimSpace(campaignID))
}
