package feeds

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/goliatone/go-content/pkg/interfaces"
)

// maxFeedItems caps the channel size so a large archive does not produce an
// unbounded feed.
const maxFeedItems = 100

// Site describes the channel-level feed metadata.
type Site struct {
	Name        string
	Description string
	BaseURL     string
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// Writer renders feed documents for a site. URLs come from the resolver; the
// document order is preserved, so callers pass an already-sorted published
// listing.
type Writer struct {
	site Site
	urls *URLResolver
	now  func() time.Time
}

// NewWriter constructs a feed writer.
func NewWriter(site Site, urls *URLResolver) *Writer {
	return &Writer{site: site, urls: urls, now: time.Now}
}

// WriteRSS renders an RSS 2.0 channel for the supplied documents.
func (fw *Writer) WriteRSS(w io.Writer, docs []*interfaces.Document) error {
	home, err := fw.urls.Home()
	if err != nil {
		return err
	}

	if len(docs) > maxFeedItems {
		docs = docs[:maxFeedItems]
	}

	items := make([]rssItem, 0, len(docs))
	for _, doc := range docs {
		link, err := fw.urls.Post(doc.Slug)
		if err != nil {
			return err
		}
		items = append(items, rssItem{
			Title:       doc.FrontMatter.Title,
			Link:        link,
			Description: doc.FrontMatter.Snippet,
			Category:    doc.FrontMatter.Category,
			PubDate:     doc.PublishedAt.UTC().Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:         fw.site.Name,
			Link:          home,
			Description:   fw.site.Description,
			LastBuildDate: fw.now().UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("feeds: write rss header: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(feed); err != nil {
		return fmt.Errorf("feeds: encode rss: %w", err)
	}
	return nil
}
