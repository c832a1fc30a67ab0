package feeds

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/goliatone/go-content/pkg/interfaces"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// WriteSitemap renders an XML sitemap covering the site root and every
// supplied document. Last modification falls back to the publish date when
// the file timestamp is missing.
func (fw *Writer) WriteSitemap(w io.Writer, docs []*interfaces.Document) error {
	home, err := fw.urls.Home()
	if err != nil {
		return err
	}

	urls := make([]sitemapURL, 0, len(docs)+1)
	urls = append(urls, sitemapURL{Loc: home})

	for _, doc := range docs {
		link, err := fw.urls.Post(doc.Slug)
		if err != nil {
			return err
		}
		lastMod := doc.LastModified
		if lastMod.IsZero() {
			lastMod = doc.PublishedAt
		}
		entry := sitemapURL{Loc: link}
		if !lastMod.IsZero() {
			entry.LastMod = lastMod.UTC().Format("2006-01-02")
		}
		urls = append(urls, entry)
	}

	sitemap := sitemapURLSet{
		XMLNS: sitemapNamespace,
		URLs:  urls,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("feeds: write sitemap header: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(sitemap); err != nil {
		return fmt.Errorf("feeds: encode sitemap: %w", err)
	}
	return nil
}
