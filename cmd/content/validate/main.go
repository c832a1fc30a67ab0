package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	content "github.com/goliatone/go-content"
)

func main() {
	if err := runValidate(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("content validate: %v", err)
	}
}

func runValidate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("content-validate", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", true, "Traverse sub-directories")
	failOnInvalid := fs.Bool("fail-on-invalid", false, "Exit with an error when any document fails validation")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := content.DefaultConfig()
	cfg.BasePath = *contentDir
	cfg.Markdown.Pattern = *pattern
	cfg.Markdown.Recursive = *recursive

	module, err := content.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	ctx := context.Background()
	set, err := module.RegisterCommands(nil)
	if err != nil {
		return err
	}
	execErr := set.Refresh.Execute(ctx, content.RefreshStoreCommand{FailOnInvalid: *failOnInvalid})

	for _, diag := range module.Diagnostics() {
		fmt.Fprintf(out, "invalid: %s: %v\n", diag.Path, diag.Err)
	}
	docs := module.ListPublished(ctx)
	fmt.Fprintf(out, "published: %d documents\n", len(docs))

	return execErr
}
