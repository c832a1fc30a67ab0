package markdown

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"
)

func fixtureFS() fstest.MapFS {
	now := time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)
	post := func(title, date string) *fstest.MapFile {
		return &fstest.MapFile{
			Data: []byte("---\ntitle: " + title + "\npublishDate: " + date + "\n---\n\nbody\n"),
			ModTime: now,
		}
	}
	return fstest.MapFS{
		"first.md":        post("First Post", "2024-12-15 09:00"),
		"second.md":       post("Second Post", "2024-12-10 09:00"),
		"notes.txt":       {Data: []byte("not markdown"), ModTime: now},
		"nested/third.md": post("Third Post", "2024-12-05 09:00"),
	}
}

func TestLoaderLoadFile(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{})

	result, err := loader.LoadFile(context.Background(), "first.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if result.Document.FrontMatter.Title != "First Post" {
		t.Fatalf("unexpected title %q", result.Document.FrontMatter.Title)
	}
	if len(result.Document.Checksum) == 0 {
		t.Fatalf("expected checksum to be populated")
	}
	if len(result.Source) == 0 {
		t.Fatalf("expected raw source to be retained")
	}
}

func TestLoaderLoadDirectoryNonRecursive(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{})

	results, _, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 root documents, got %d", len(results))
	}
	// Results come back sorted by path, so the ordering is stable.
	if results[0].Document.FilePath != "first.md" || results[1].Document.FilePath != "second.md" {
		t.Fatalf("unexpected ordering: %q, %q", results[0].Document.FilePath, results[1].Document.FilePath)
	}
}

func TestLoaderLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{Recursive: true})

	results, _, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 documents with recursion, got %d", len(results))
	}
}

func TestLoaderPatternOverride(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{})

	results, _, err := loader.LoadDirectory(context.Background(), ".", LoadParams{Pattern: "first.*"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 1 || results[0].Document.FilePath != "first.md" {
		t.Fatalf("expected pattern override to match only first.md: %#v", results)
	}
}

func TestLoaderHonoursCancelledContext(t *testing.T) {
	loader := NewLoader(fixtureFS(), LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := loader.LoadDirectory(ctx, ".", LoadParams{}); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}

func TestLoaderCollectsUndecodableFrontMatter(t *testing.T) {
	files := fixtureFS()
	files["broken.md"] = &fstest.MapFile{
		Data:    []byte("---\ndraft: [nope\n---\n\nbody\n"),
		ModTime: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
	}
	loader := NewLoader(files, LoaderConfig{})

	results, issues, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected broken sibling to leave 2 documents, got %d", len(results))
	}
	if len(issues) != 1 || issues[0].Path != "broken.md" {
		t.Fatalf("expected one issue for broken.md, got %v", issues)
	}
	if !errors.Is(issues[0].Err, ErrFrontMatterParse) {
		t.Fatalf("expected frontmatter parse error, got %v", issues[0].Err)
	}
}

func TestLoaderCollectsWrongTypedScalarField(t *testing.T) {
	files := fixtureFS()
	files["typed.md"] = &fstest.MapFile{
		Data:    []byte("---\ndraft: maybe\ntitle: Typed\n---\n\nbody\n"),
		ModTime: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
	}
	loader := NewLoader(files, LoaderConfig{})

	results, issues, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 decodable documents, got %d", len(results))
	}
	if len(issues) != 1 || !errors.Is(issues[0].Err, ErrFrontMatterParse) {
		t.Fatalf("expected a parse issue for typed.md, got %v", issues)
	}
}
