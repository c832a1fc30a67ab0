package store

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-content/internal/markdown"
	"github.com/goliatone/go-content/pkg/interfaces"
)

func post(fields string) *fstest.MapFile {
	return &fstest.MapFile{
		Data:    []byte("---\n" + fields + "---\n\nbody text\n"),
		ModTime: time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC),
	}
}

func newTestStore(t *testing.T, files fstest.MapFS, cfg Config) *Store {
	t.Helper()

	service, err := markdown.NewServiceWithFS(files, markdown.Config{}, nil)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}

	s, err := New(cfg, service, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func threePosts(middleDraft bool) fstest.MapFS {
	middle := "draft: false\n"
	if middleDraft {
		middle = "draft: true\n"
	}
	return fstest.MapFS{
		"newest.md": post("title: Newest\npublishDate: 2024-12-15\ndraft: false\n"),
		"middle.md": post("title: Middle\npublishDate: 2024-12-10\n" + middle),
		"oldest.md": post("title: Oldest\npublishDate: 2024-12-05\ndraft: false\n"),
	}
}

func titles(docs []*interfaces.Document) []string {
	out := make([]string, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.FrontMatter.Title)
	}
	return out
}

func TestListPublishedOrdersByDateDescending(t *testing.T) {
	s := newTestStore(t, threePosts(false), Config{})

	got := titles(s.ListPublished(context.Background()))
	want := []string{"Newest", "Middle", "Oldest"}
	if len(got) != len(want) {
		t.Fatalf("expected %d documents, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %v", i, want[i], got)
		}
	}
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	s := newTestStore(t, threePosts(true), Config{})

	got := titles(s.ListPublished(context.Background()))
	if len(got) != 2 || got[0] != "Newest" || got[1] != "Oldest" {
		t.Fatalf("expected [Newest Oldest], got %v", got)
	}
}

func TestListPublishedTieBreaksByTitle(t *testing.T) {
	files := fstest.MapFS{
		"b.md": post("title: Bravo\npublishDate: 2024-12-15 09:30\n"),
		"a.md": post("title: Alpha\npublishDate: 2024-12-15 09:30\n"),
		"c.md": post("title: Charlie\npublishDate: 2024-12-15 09:30\n"),
	}
	s := newTestStore(t, files, Config{})

	got := titles(s.ListPublished(context.Background()))
	if got[0] != "Alpha" || got[1] != "Bravo" || got[2] != "Charlie" {
		t.Fatalf("expected title-ascending tie break, got %v", got)
	}
}

func TestMalformedDocumentDoesNotTakeDownListing(t *testing.T) {
	files := threePosts(false)
	files["broken.md"] = post("publishDate: 2024-12-12\n") // no title
	s := newTestStore(t, files, Config{})

	if got := s.ListPublished(context.Background()); len(got) != 3 {
		t.Fatalf("expected 3 published documents despite malformed sibling, got %d", len(got))
	}

	diags := s.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Path != "broken.md" {
		t.Fatalf("expected diagnostic for broken.md, got %q", diags[0].Path)
	}
	var verr *ValidationError
	if !errors.As(diags[0].Err, &verr) || verr.Field != "title" {
		t.Fatalf("expected title validation error, got %v", diags[0].Err)
	}
}

func TestUndecodableFrontMatterDoesNotTakeDownListing(t *testing.T) {
	files := threePosts(false)
	files["broken.md"] = post("draft: [nope\n") // unterminated flow sequence
	s := newTestStore(t, files, Config{})

	if got := s.ListPublished(context.Background()); len(got) != 3 {
		t.Fatalf("expected 3 published documents despite undecodable sibling, got %d", len(got))
	}

	diags := s.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Path != "broken.md" {
		t.Fatalf("expected diagnostic for broken.md, got %q", diags[0].Path)
	}
	if !errors.Is(diags[0].Err, markdown.ErrFrontMatterParse) {
		t.Fatalf("expected frontmatter parse error, got %v", diags[0].Err)
	}
}

func TestGetBeforeLoadReportsNotLoaded(t *testing.T) {
	service, err := markdown.NewServiceWithFS(threePosts(false), markdown.Config{}, nil)
	if err != nil {
		t.Fatalf("NewServiceWithFS: %v", err)
	}
	s, err := New(Config{}, service, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Loaded() {
		t.Fatalf("expected fresh store to report not loaded")
	}
	if _, err := s.Get(context.Background(), "newest"); !errors.Is(err, ErrStoreNotLoaded) {
		t.Fatalf("expected ErrStoreNotLoaded before load, got %v", err)
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Loaded() {
		t.Fatalf("expected store to report loaded after Load")
	}
	if _, err := s.Get(context.Background(), "newest"); err != nil {
		t.Fatalf("Get after load: %v", err)
	}
}

func TestPublishedIteratorIsRestartable(t *testing.T) {
	s := newTestStore(t, threePosts(false), Config{})

	count := func() int {
		n := 0
		for range s.Published() {
			n++
		}
		return n
	}

	if first, second := count(), count(); first != 3 || second != 3 {
		t.Fatalf("expected restartable sequence of 3, got %d then %d", first, second)
	}
}

func TestPublishedIteratorStopsEarly(t *testing.T) {
	s := newTestStore(t, threePosts(false), Config{})

	var got []string
	for doc := range s.Published() {
		got = append(got, doc.FrontMatter.Title)
		break
	}
	if len(got) != 1 || got[0] != "Newest" {
		t.Fatalf("expected early stop after Newest, got %v", got)
	}
}

func TestGetPublishedBySlug(t *testing.T) {
	s := newTestStore(t, threePosts(true), Config{})

	doc, err := s.Get(context.Background(), "newest")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc.FrontMatter.Title != "Newest" {
		t.Fatalf("unexpected document %q", doc.FrontMatter.Title)
	}

	if _, err := s.Get(context.Background(), "middle"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected draft lookup to miss, got %v", err)
	}
}

func TestCategoriesAndTags(t *testing.T) {
	files := fstest.MapFS{
		"one.md": post("title: One\npublishDate: 2024-12-15\ncategory: seo\ntags:\n  - geo\n  - seo\n"),
		"two.md": post("title: Two\npublishDate: 2024-12-14\ncategory: product\ntags:\n  - seo\n"),
		"hid.md": post("title: Hidden\npublishDate: 2024-12-13\ncategory: internal\ndraft: true\n"),
	}
	s := newTestStore(t, files, Config{})

	categories := s.Categories()
	if len(categories) != 2 || categories[0] != "product" || categories[1] != "seo" {
		t.Fatalf("unexpected categories %v", categories)
	}

	tags := s.Tags()
	if len(tags) != 2 || tags[0] != "geo" || tags[1] != "seo" {
		t.Fatalf("unexpected tags %v", tags)
	}
}

func TestRenderOnLoad(t *testing.T) {
	s := newTestStore(t, threePosts(false), Config{Render: true})

	docs := s.ListPublished(context.Background())
	if len(docs) == 0 || len(docs[0].BodyHTML) == 0 {
		t.Fatalf("expected rendered HTML on loaded documents")
	}
}

func TestFrontMatterSchemaEnforcesVocabulary(t *testing.T) {
	files := fstest.MapFS{
		"ok.md":  post("title: Ok\npublishDate: 2024-12-15\ncategory: engineering\n"),
		"bad.md": post("title: Bad\npublishDate: 2024-12-14\ncategory: gossip\n"),
	}
	s := newTestStore(t, files, Config{
		FrontMatterSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"enum": []any{"engineering", "product"},
				},
			},
		},
	})

	if got := s.ListPublished(context.Background()); len(got) != 1 || got[0].FrontMatter.Title != "Ok" {
		t.Fatalf("expected schema to exclude off-vocabulary category, got %v", titles(got))
	}

	diags := s.Diagnostics()
	if len(diags) != 1 || !errors.Is(diags[0].Err, ErrSchemaValidation) {
		t.Fatalf("expected schema validation diagnostic, got %v", diags)
	}
}

func TestReloadPicksUpSnapshot(t *testing.T) {
	files := threePosts(false)
	s := newTestStore(t, files, Config{})

	files["extra.md"] = post("title: Extra\npublishDate: 2024-12-16\n")
	if err := s.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	got := titles(s.ListPublished(context.Background()))
	if len(got) != 4 || got[0] != "Extra" {
		t.Fatalf("expected reloaded listing led by Extra, got %v", got)
	}
}
