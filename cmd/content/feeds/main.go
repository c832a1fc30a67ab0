package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	content "github.com/goliatone/go-content"
)

func main() {
	if err := runFeeds(os.Args[1:]); err != nil {
		log.Fatalf("content feeds: %v", err)
	}
}

func runFeeds(args []string) error {
	fs := flag.NewFlagSet("content-feeds", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	outputDir := fs.String("output", "dist", "Directory feed artifacts are written to")
	baseURL := fs.String("base-url", "", "Public site base URL, e.g. https://example.com")
	siteName := fs.String("site-name", "", "Channel title used in the RSS feed")
	siteDescription := fs.String("site-description", "", "Channel description used in the RSS feed")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := content.DefaultConfig()
	cfg.BasePath = *contentDir
	cfg.Site.Name = *siteName
	cfg.Site.Description = *siteDescription
	cfg.Site.BaseURL = *baseURL
	cfg.Features.Feeds = true

	module, err := content.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	ctx := context.Background()
	if err := module.Load(ctx); err != nil {
		return err
	}

	set, err := module.RegisterCommands(nil)
	if err != nil {
		return err
	}
	return set.BuildFeeds.Execute(ctx, content.BuildFeedsCommand{OutputDir: *outputDir})
}
