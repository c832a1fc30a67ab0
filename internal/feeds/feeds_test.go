package feeds

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-content/pkg/interfaces"
)

func testResolver(t *testing.T) *URLResolver {
	t.Helper()
	manager := urlkit.NewRouteManager(DefaultRouteConfig("site", "https://example.com"))
	return NewURLResolver(URLResolverOptions{Manager: manager, Group: "site"})
}

func testDocs() []*interfaces.Document {
	return []*interfaces.Document{
		{
			Slug: "shipping-the-changelog",
			FrontMatter: interfaces.FrontMatter{
				Title:    "Shipping The Changelog",
				Snippet:  "Release notes that read well.",
				Category: "product",
			},
			PublishedAt:  time.Date(2024, 12, 15, 9, 30, 0, 0, time.UTC),
			LastModified: time.Date(2024, 12, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			Slug: "structured-data-basics",
			FrontMatter: interfaces.FrontMatter{
				Title: "Structured Data Basics",
			},
			PublishedAt: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteRSS(t *testing.T) {
	writer := NewWriter(Site{
		Name:        "Example Blog",
		Description: "Notes on shipping.",
	}, testResolver(t))
	writer.now = func() time.Time {
		return time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	}

	var buf bytes.Buffer
	if err := writer.WriteRSS(&buf, testDocs()); err != nil {
		t.Fatalf("WriteRSS: %v", err)
	}

	if !strings.HasPrefix(buf.String(), xml.Header) {
		t.Fatalf("expected XML declaration prefix")
	}

	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("unmarshal rss: %v", err)
	}

	if feed.Version != "2.0" {
		t.Fatalf("expected rss version 2.0, got %q", feed.Version)
	}
	if feed.Channel.Title != "Example Blog" || feed.Channel.Link != "https://example.com/" {
		t.Fatalf("unexpected channel %+v", feed.Channel)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(feed.Channel.Items))
	}

	first := feed.Channel.Items[0]
	if first.Link != "https://example.com/blog/shipping-the-changelog" {
		t.Fatalf("unexpected item link %q", first.Link)
	}
	if first.GUID != first.Link {
		t.Fatalf("expected guid to match link, got %q", first.GUID)
	}
	if first.PubDate != "Sun, 15 Dec 2024 09:30:00 +0000" {
		t.Fatalf("unexpected pubDate %q", first.PubDate)
	}
	if first.Category != "product" {
		t.Fatalf("unexpected category %q", first.Category)
	}
}

func TestWriteRSSCapsItems(t *testing.T) {
	docs := make([]*interfaces.Document, 0, maxFeedItems+5)
	for i := 0; i < maxFeedItems+5; i++ {
		docs = append(docs, &interfaces.Document{
			Slug:        "post",
			FrontMatter: interfaces.FrontMatter{Title: "Post"},
			PublishedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		})
	}

	var buf bytes.Buffer
	writer := NewWriter(Site{Name: "Example Blog"}, testResolver(t))
	if err := writer.WriteRSS(&buf, docs); err != nil {
		t.Fatalf("WriteRSS: %v", err)
	}

	var feed rssXML
	if err := xml.Unmarshal(buf.Bytes(), &feed); err != nil {
		t.Fatalf("unmarshal rss: %v", err)
	}
	if len(feed.Channel.Items) != maxFeedItems {
		t.Fatalf("expected feed capped at %d items, got %d", maxFeedItems, len(feed.Channel.Items))
	}
}

func TestWriteSitemap(t *testing.T) {
	writer := NewWriter(Site{Name: "Example Blog"}, testResolver(t))

	var buf bytes.Buffer
	if err := writer.WriteSitemap(&buf, testDocs()); err != nil {
		t.Fatalf("WriteSitemap: %v", err)
	}

	var sitemap sitemapURLSet
	if err := xml.Unmarshal(buf.Bytes(), &sitemap); err != nil {
		t.Fatalf("unmarshal sitemap: %v", err)
	}

	if sitemap.XMLNS != sitemapNamespace {
		t.Fatalf("unexpected namespace %q", sitemap.XMLNS)
	}
	if len(sitemap.URLs) != 3 {
		t.Fatalf("expected home plus 2 entries, got %d", len(sitemap.URLs))
	}
	if sitemap.URLs[0].Loc != "https://example.com/" {
		t.Fatalf("expected home first, got %q", sitemap.URLs[0].Loc)
	}
	if sitemap.URLs[1].LastMod != "2024-12-16" {
		t.Fatalf("expected file timestamp for lastmod, got %q", sitemap.URLs[1].LastMod)
	}
	if sitemap.URLs[2].LastMod != "2024-12-10" {
		t.Fatalf("expected publish-date fallback for lastmod, got %q", sitemap.URLs[2].LastMod)
	}
}

func TestResolverMissingRoute(t *testing.T) {
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: "https://example.com",
				Paths:   map[string]string{RouteHome: "/"},
			},
		},
	})
	resolver := NewURLResolver(URLResolverOptions{Manager: manager, Group: "site"})

	if _, err := resolver.Post("missing"); err == nil {
		t.Fatalf("expected missing route to surface as error")
	}
}

func TestResolverWithoutManager(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{})
	if _, err := resolver.Home(); err == nil {
		t.Fatalf("expected error without route manager")
	}
}
