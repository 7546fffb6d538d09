package links

import (
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
)

func newTestManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "site",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"post": "/blog/:slug",
					"blog": "/blog",
				},
			},
		},
	})
}

func TestResolver_Post(t *testing.T) {
	resolver := NewResolver(ResolverOptions{Manager: newTestManager()})

	url, err := resolver.Post("my-first-post")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if url != "https://example.com/blog/my-first-post" {
		t.Fatalf("unexpected permalink: %q", url)
	}
}

func TestResolver_PostEmptySlug(t *testing.T) {
	resolver := NewResolver(ResolverOptions{Manager: newTestManager()})

	url, err := resolver.Post("   ")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if url != "" {
		t.Fatalf("empty slug must not resolve, got %q", url)
	}
}

func TestResolver_CategoryAndTag(t *testing.T) {
	resolver := NewResolver(ResolverOptions{Manager: newTestManager()})

	url, err := resolver.Category("Engineering")
	if err != nil {
		t.Fatalf("Category: %v", err)
	}
	if !strings.HasPrefix(url, "https://example.com/blog") || !strings.Contains(url, "category=Engineering") {
		t.Fatalf("unexpected category URL: %q", url)
	}

	url, err = resolver.Tag("golang")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}
	if !strings.Contains(url, "tag=golang") {
		t.Fatalf("unexpected tag URL: %q", url)
	}
}

func TestResolver_NilManagerIsInert(t *testing.T) {
	resolver := NewResolver(ResolverOptions{})

	url, err := resolver.Post("anything")
	if err != nil || url != "" {
		t.Fatalf("nil manager must be inert, got %q, %v", url, err)
	}
}
