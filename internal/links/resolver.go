// Package links builds public URLs for blog content using go-urlkit.
package links

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// ResolverOptions configures the go-urlkit backed permalink resolver.
type ResolverOptions struct {
	Manager   *urlkit.RouteManager
	Group     string
	PostRoute string
	ListRoute string
	SlugParam string
}

// Resolver turns post slugs and list filters into absolute URLs.
type Resolver struct {
	manager *urlkit.RouteManager

	group     string
	postRoute string
	listRoute string
	slugParam string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewResolver constructs a resolver backed by go-urlkit.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.Group == "" {
		opts.Group = "site"
	}
	if opts.PostRoute == "" {
		opts.PostRoute = "post"
	}
	if opts.ListRoute == "" {
		opts.ListRoute = "blog"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}

	return &Resolver{
		manager: opts.Manager,

		group:     strings.TrimSpace(opts.Group),
		postRoute: opts.PostRoute,
		listRoute: opts.ListRoute,
		slugParam: opts.SlugParam,

		groupCache: make(map[string]*urlkit.Group),
	}
}

// Post builds the permalink for a single post slug.
func (r *Resolver) Post(slug string) (string, error) {
	slug = strings.TrimSpace(slug)
	if r == nil || r.manager == nil || slug == "" {
		return "", nil
	}

	builder, err := r.routeBuilder(r.postRoute)
	if err != nil || builder == nil {
		return "", err
	}
	return builder.WithParam(r.slugParam, slug).Build()
}

// List builds the blog listing URL, optionally scoped by filter queries.
func (r *Resolver) List(queries map[string]string) (string, error) {
	if r == nil || r.manager == nil {
		return "", nil
	}

	builder, err := r.routeBuilder(r.listRoute)
	if err != nil || builder == nil {
		return "", err
	}
	for key, val := range queries {
		if strings.TrimSpace(val) == "" {
			continue
		}
		builder.WithQuery(key, val)
	}
	return builder.Build()
}

// Category builds the listing URL filtered to a single category.
func (r *Resolver) Category(category string) (string, error) {
	return r.List(map[string]string{"category": strings.TrimSpace(category)})
}

// Tag builds the listing URL filtered to a single tag.
func (r *Resolver) Tag(tag string) (string, error) {
	return r.List(map[string]string{"tag": strings.TrimSpace(tag)})
}

func (r *Resolver) routeBuilder(route string) (*urlkit.Builder, error) {
	if route == "" {
		return nil, nil
	}
	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return nil, err
	}
	return safeBuilder(group, route)
}

func (r *Resolver) groupForPath(path string) (*urlkit.Group, error) {
	if path == "" {
		return nil, nil
	}

	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func safeBuilder(group *urlkit.Group, route string) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("links: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	if manager == nil {
		return nil, fmt.Errorf("links: route manager not configured")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (*urlkit.Group, error) {
	if parent == nil {
		return nil, fmt.Errorf("links: parent group is nil")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
