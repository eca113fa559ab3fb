package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/casinodex-next/internal/config"
)

type stubSlugLister struct {
	slugs []string
}

func (s stubSlugLister) ListSlugs() ([]string, error) {
	return s.slugs, nil
}

func TestSitemapBuildContainsCatalogURLs(t *testing.T) {
	builder := NewSitemapBuilder(
		"https://casinodex.example/",
		stubSlugLister{slugs: []string{"lucky-spin"}},
		stubSlugLister{slugs: []string{"mega-wheel"}},
	)

	body, err := builder.Build(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("build sitemap failed: %v", err)
	}
	content := string(body)

	if !strings.HasPrefix(content, "<?xml") {
		t.Fatalf("sitemap should start with xml header")
	}
	for _, loc := range []string{
		"<loc>https://casinodex.example/</loc>",
		"<loc>https://casinodex.example/casinos/lucky-spin</loc>",
		"<loc>https://casinodex.example/games/mega-wheel</loc>",
	} {
		if !strings.Contains(content, loc) {
			t.Fatalf("sitemap missing %s:\n%s", loc, content)
		}
	}
	if !strings.Contains(content, "<lastmod>2026-03-01</lastmod>") {
		t.Fatalf("sitemap missing lastmod")
	}
}

func TestMetaBuilderForPath(t *testing.T) {
	builder := NewMetaBuilder(config.SiteConfig{
		Name:    "CasinoDex",
		BaseURL: "https://casinodex.example/",
	})

	home := builder.ForPath("/")
	if home.Canonical != "https://casinodex.example/" {
		t.Fatalf("unexpected canonical: %s", home.Canonical)
	}
	if !strings.Contains(home.Title, "CasinoDex") {
		t.Fatalf("title should carry site name: %s", home.Title)
	}

	redirect := builder.ForPath("/go/1001")
	if redirect.Robots != "noindex, nofollow" {
		t.Fatalf("redirect paths must be noindex: %s", redirect.Robots)
	}

	casinos := builder.ForPath("/casinos")
	if casinos.Robots != "index, follow" {
		t.Fatalf("catalog paths must be indexable: %s", casinos.Robots)
	}
}

func TestRobotsTxt(t *testing.T) {
	builder := NewMetaBuilder(config.SiteConfig{
		Name:    "CasinoDex",
		BaseURL: "https://casinodex.example",
	})

	robots := builder.RobotsTxt()
	for _, line := range []string{
		"Disallow: /api/",
		"Disallow: /go/",
		"Sitemap: https://casinodex.example/sitemap.xml",
	} {
		if !strings.Contains(robots, line) {
			t.Fatalf("robots.txt missing %q:\n%s", line, robots)
		}
	}
}
