// Package feeds renders RSS and sitemap documents from the published
// collection, resolving document URLs through a go-urlkit route manager.
package feeds

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names the resolver expects in the configured group.
const (
	RouteHome = "home"
	RoutePost = "post"
)

// URLResolverOptions configures the go-urlkit backed resolver.
type URLResolverOptions struct {
	Manager   *urlkit.RouteManager
	Group     string
	SlugParam string
}

// URLResolver builds absolute URLs for the site home page and individual
// documents using a go-urlkit RouteManager.
type URLResolver struct {
	manager   *urlkit.RouteManager
	group     string
	slugParam string
}

// NewURLResolver constructs a resolver backed by go-urlkit.
func NewURLResolver(opts URLResolverOptions) *URLResolver {
	if opts.Group == "" {
		opts.Group = "site"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	return &URLResolver{
		manager:   opts.Manager,
		group:     opts.Group,
		slugParam: opts.SlugParam,
	}
}

// DefaultRouteConfig returns a urlkit configuration serving the resolver's
// expected routes for a single-site blog rooted at baseURL.
func DefaultRouteConfig(group, baseURL string) *urlkit.Config {
	if group == "" {
		group = "site"
	}
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    group,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					RouteHome: "/",
					RoutePost: "/blog/:slug",
				},
			},
		},
	}
}

// Home resolves the site root URL.
func (r *URLResolver) Home() (string, error) {
	builder, err := r.builder(RouteHome)
	if err != nil {
		return "", err
	}
	return builder.Build()
}

// Post resolves the canonical URL for a document slug.
func (r *URLResolver) Post(slug string) (string, error) {
	builder, err := r.builder(RoutePost)
	if err != nil {
		return "", err
	}
	return builder.WithParam(r.slugParam, slug).Build()
}

// builder looks up the route builder, converting urlkit's missing-group and
// missing-route panics into errors.
func (r *URLResolver) builder(route string) (builder *urlkit.Builder, err error) {
	if r == nil || r.manager == nil {
		return nil, fmt.Errorf("feeds: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("feeds: route %s.%s not found: %v", r.group, route, rec)
		}
	}()
	builder = r.manager.Group(r.group).Builder(route)
	return builder, err
}
