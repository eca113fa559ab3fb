package tracker

import (
	"net/url"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, apiKey string) *Client {
	t.Helper()
	client, err := NewClient("https://track.example.com/", apiKey, "https://site.example.com/")
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	return client
}

func TestNewClientRejectsMalformedBaseURL(t *testing.T) {
	cases := []string{"", "   ", "not a url", "ftp://track.example.com", "https://"}
	for _, base := range cases {
		if _, err := NewClient(base, "", ""); err == nil {
			t.Fatalf("base url %q should be rejected", base)
		}
	}
}

func TestClickURLShape(t *testing.T) {
	client := newTestClient(t, "")

	got := client.ClickURL("1001", ClickContext{
		UserAgent: "Mozilla/5.0",
		Referer:   "https://ref.example.com/page",
		IPAddress: "203.0.113.10",
	})
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse click url failed: %v", err)
	}
	if parsed.Path != "/click/1001" {
		t.Fatalf("unexpected path: %s", parsed.Path)
	}
	query := parsed.Query()
	if query.Get("ua") != "Mozilla/5.0" {
		t.Fatalf("missing ua param: %s", got)
	}
	if query.Get("ref") != "https://ref.example.com/page" {
		t.Fatalf("missing ref param: %s", got)
	}
	if query.Get("ip") != "203.0.113.10" {
		t.Fatalf("missing ip param: %s", got)
	}
	if query.Has("api_key") {
		t.Fatalf("api_key should be absent when unconfigured: %s", got)
	}
}

func TestClickURLOmitsEmptyParams(t *testing.T) {
	client := newTestClient(t, "")

	got := client.ClickURL("1001", ClickContext{})
	if got != "https://track.example.com/click/1001" {
		t.Fatalf("empty context should produce bare url, got %s", got)
	}
	if strings.Contains(got, "ua=") || strings.Contains(got, "ref=") || strings.Contains(got, "ip=") {
		t.Fatalf("empty params must be omitted, not blank: %s", got)
	}
}

func TestClickURLIncludesAPIKey(t *testing.T) {
	client := newTestClient(t, "secret-key")

	got := client.ClickURL("1001", ClickContext{})
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse click url failed: %v", err)
	}
	if parsed.Query().Get("api_key") != "secret-key" {
		t.Fatalf("api_key missing: %s", got)
	}
}

func TestGoURLForwardsOnlyAllowListedParams(t *testing.T) {
	client := newTestClient(t, "secret-key")

	incoming := url.Values{}
	incoming.Set("sub1", "a")
	incoming.Set("sub5", "e")
	incoming.Set("source", "newsletter")
	incoming.Set("utm_campaign", "spring")
	incoming.Set("foo", "bar")
	incoming.Set("utm_content", "dropped")

	got := client.GoURL("2002", incoming)
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse go url failed: %v", err)
	}
	if parsed.Path != "/click/2002" {
		t.Fatalf("unexpected path: %s", parsed.Path)
	}
	query := parsed.Query()
	if query.Get("sub1") != "a" || query.Get("sub5") != "e" {
		t.Fatalf("sub params missing: %s", got)
	}
	if query.Get("source") != "newsletter" || query.Get("utm_campaign") != "spring" {
		t.Fatalf("source/utm params missing: %s", got)
	}
	if query.Has("foo") || query.Has("utm_content") {
		t.Fatalf("unknown params must be dropped: %s", got)
	}
	if query.Has("api_key") {
		t.Fatalf("go url must not carry api_key: %s", got)
	}
}

func TestClickURLEscapesCampaignID(t *testing.T) {
	client := newTestClient(t, "")

	got := client.ClickURL("camp/1 2", ClickContext{})
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse click url failed: %v", err)
	}
	if parsed.EscapedPath() != "/click/camp%2F1%202" {
		t.Fatalf("campaign id should be path-escaped, got %s", parsed.EscapedPath())
	}
}
