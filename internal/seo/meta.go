package seo

import (
	"strings"

	"github.com/casinodex-next/internal/config"
)

// Meta is the SEO metadata document for one route.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Canonical   string `json:"canonical"`
	Robots      string `json:"robots"`
}

// MetaBuilder produces route metadata from site configuration.
type MetaBuilder struct {
	siteName string
	baseURL  string
}

// NewMetaBuilder creates a meta builder.
func NewMetaBuilder(site config.SiteConfig) *MetaBuilder {
	return &MetaBuilder{
		siteName: strings.TrimSpace(site.Name),
		baseURL:  strings.TrimRight(strings.TrimSpace(site.BaseURL), "/"),
	}
}

// ForPath builds metadata for a site path. Unknown paths get the site
// defaults; tracked redirect paths are marked noindex.
func (b *MetaBuilder) ForPath(path string) Meta {
	normalized := "/" + strings.Trim(strings.TrimSpace(path), "/")

	meta := Meta{
		Title:       b.siteName,
		Description: b.siteName + " casino reviews, bonuses and games.",
		Canonical:   b.baseURL + normalized,
		Robots:      "index, follow",
	}

	switch {
	case normalized == "/":
		meta.Title = b.siteName + " | Online Casino Reviews"
	case strings.HasPrefix(normalized, "/go/"), strings.HasPrefix(normalized, "/api/"):
		meta.Robots = "noindex, nofollow"
	case strings.HasPrefix(normalized, "/casinos"):
		meta.Title = "Casino Reviews | " + b.siteName
		meta.Description = "Independent casino reviews with ratings, licenses and payout times."
	case strings.HasPrefix(normalized, "/bonuses"):
		meta.Title = "Casino Bonuses | " + b.siteName
		meta.Description = "Current welcome offers, free spins and reload bonuses."
	case strings.HasPrefix(normalized, "/games"):
		meta.Title = "Casino Games | " + b.siteName
		meta.Description = "Slots, table games and live casino titles with RTP data."
	}
	return meta
}

// RobotsTxt renders robots.txt content for the site.
func (b *MetaBuilder) RobotsTxt() string {
	var sb strings.Builder
	sb.WriteString("User-agent: *\n")
	sb.WriteString("Disallow: /api/\n")
	sb.WriteString("Disallow: /go/\n")
	sb.WriteString("Sitemap: " + b.baseURL + "/sitemap.xml\n")
	return sb.String()
}
