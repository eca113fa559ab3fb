package seo

import (
	"encoding/xml"
	"strings"
	"time"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapURL is one entry in the sitemap.
type SitemapURL struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod,omitempty"`
	ChangeFreq string   `xml:"changefreq,omitempty"`
	Priority   string   `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SlugLister supplies the slugs of one catalog section.
type SlugLister interface {
	ListSlugs() ([]string, error)
}

// SitemapBuilder renders sitemap.xml from the catalog.
type SitemapBuilder struct {
	baseURL string
	casinos SlugLister
	games   SlugLister
}

// NewSitemapBuilder creates a sitemap builder.
func NewSitemapBuilder(baseURL string, casinos, games SlugLister) *SitemapBuilder {
	return &SitemapBuilder{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		casinos: casinos,
		games:   games,
	}
}

// Build renders the sitemap XML document.
func (b *SitemapBuilder) Build(now time.Time) ([]byte, error) {
	lastMod := now.UTC().Format("2006-01-02")

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs,
		SitemapURL{Loc: b.baseURL + "/", LastMod: lastMod, ChangeFreq: "daily", Priority: "1.0"},
		SitemapURL{Loc: b.baseURL + "/casinos", LastMod: lastMod, ChangeFreq: "daily", Priority: "0.9"},
		SitemapURL{Loc: b.baseURL + "/bonuses", LastMod: lastMod, ChangeFreq: "daily", Priority: "0.8"},
		SitemapURL{Loc: b.baseURL + "/games", LastMod: lastMod, ChangeFreq: "weekly", Priority: "0.7"},
	)

	casinoSlugs, err := b.casinos.ListSlugs()
	if err != nil {
		return nil, err
	}
	for _, slug := range casinoSlugs {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        b.baseURL + "/casinos/" + slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	gameSlugs, err := b.games.ListSlugs()
	if err != nil {
		return nil, err
	}
	for _, slug := range gameSlugs {
		set.URLs = append(set.URLs, SitemapURL{
			Loc:        b.baseURL + "/games/" + slug,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
