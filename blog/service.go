package blog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-portfolio/internal/identity"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
)

const defaultExtension = ".md"

// RenderOptions mirrors the markdown rendering knobs so callers configure the
// service without importing the internal renderer.
type RenderOptions struct {
	// Extensions names goldmark extensions to enable; empty selects the
	// default set (GFM, linkify, tasklist).
	Extensions []string
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough in post bodies.
	SafeMode bool
}

// Config controls where posts are read from and how bodies are rendered.
// The content directory is injected here so the service can be pointed at
// temp-directory fixtures; there is no package-level path.
type Config struct {
	// ContentDir is the flat directory holding one markdown file per post.
	ContentDir string
	// Extension selects recognized source files. Defaults to ".md"; other
	// entries in the directory are ignored.
	Extension string
	// Render configures the markdown renderer.
	Render RenderOptions
}

// Service reads the content directory and serves the blog query surface.
// Every call re-reads from disk; the directory is the single source of truth
// and there is no cache to invalidate.
type Service struct {
	cfg      Config
	renderer *markdown.Renderer
	logger   logging.Logger
}

// Option customises service construction.
type Option func(*Service)

// WithLogger injects the logger used for degraded-lookup diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a blog service rooted at cfg.ContentDir.
func New(cfg Config, opts ...Option) (*Service, error) {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return nil, ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.Extension) == "" {
		cfg.Extension = defaultExtension
	}

	s := &Service{
		cfg: cfg,
		renderer: markdown.NewRenderer(markdown.Options{
			Extensions: cfg.Render.Extensions,
			HardWraps:  cfg.Render.HardWraps,
			SafeMode:   cfg.Render.SafeMode,
		}),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// List returns every post sorted descending by PublishedAt. Ties keep their
// encounter order (the directory's lexical file order) via a stable sort.
// An unreadable directory or unparsable file fails the whole listing loudly.
func (s *Service) List(ctx context.Context) ([]*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.cfg.ContentDir)
	if err != nil {
		return nil, &StorageError{Op: "read content directory", Path: s.cfg.ContentDir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.cfg.Extension) {
			continue
		}
		files = append(files, entry.Name())
	}

	// Fan out one parse+render per file; the sort below re-imposes order
	// after the join since completion order is not guaranteed.
	posts := make([]*Post, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			post, err := s.loadFile(gctx, name)
			if err != nil {
				return err
			}
			posts[i] = post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := rejectDuplicateSlugs(posts, files); err != nil {
		return nil, err
	}

	sortByRecency(posts)
	return posts, nil
}

// GetBySlug returns the post whose slug matches, or ErrPostNotFound. Missing
// and unparsable files both degrade to the absence value; the cause is logged
// and callers render a not-found page.
func (s *Service) GetBySlug(ctx context.Context, value string) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, err := NormalizeSlug(value)
	if err != nil || normalized == "" {
		s.logger.Debug("blog.get_by_slug.invalid_slug", "slug", value)
		return nil, ErrPostNotFound
	}

	// Fast path: file named exactly after the slug.
	name := normalized + s.cfg.Extension
	if data, readErr := os.ReadFile(filepath.Join(s.cfg.ContentDir, name)); readErr == nil {
		post, buildErr := s.buildPost(name, data)
		if buildErr != nil {
			s.logger.Warn("blog.get_by_slug.unparsable", "slug", normalized, "error", buildErr)
			return nil, ErrPostNotFound
		}
		return post, nil
	}

	// Slow path: the author named the file differently than its normalized
	// slug ("My Post.md" serving /blog/my-post).
	entries, dirErr := os.ReadDir(s.cfg.ContentDir)
	if dirErr != nil {
		s.logger.Warn("blog.get_by_slug.storage", "slug", normalized, "error", dirErr)
		return nil, ErrPostNotFound
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), s.cfg.Extension) {
			continue
		}
		if s.slugFor(entry.Name()) != normalized {
			continue
		}
		post, loadErr := s.loadFile(ctx, entry.Name())
		if loadErr != nil {
			s.logger.Warn("blog.get_by_slug.unparsable", "slug", normalized, "error", loadErr)
			return nil, ErrPostNotFound
		}
		return post, nil
	}

	return nil, ErrPostNotFound
}

// Slugs returns every slug in listing order. As a set it always equals the
// slugs observable through List.
func (s *Service) Slugs(ctx context.Context) ([]string, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(posts))
	for _, post := range posts {
		slugs = append(slugs, post.Slug)
	}
	return slugs, nil
}

// Categories returns the distinct non-empty categories in first-appearance
// order over the sorted listing.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var categories []string
	seen := map[string]struct{}{}
	for _, post := range posts {
		if post.Category == "" {
			continue
		}
		if _, ok := seen[post.Category]; ok {
			continue
		}
		seen[post.Category] = struct{}{}
		categories = append(categories, post.Category)
	}
	return categories, nil
}

// Tags returns the de-duplicated union of all post tags in first-appearance
// order over the sorted listing. Duplicates within a single post are allowed
// in the record but collapse here.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var tags []string
	seen := map[string]struct{}{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// Featured returns the posts flagged featured, in the same order as List.
func (s *Service) Featured(ctx context.Context) ([]*Post, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var featured []*Post
	for _, post := range posts {
		if post.Featured {
			featured = append(featured, post)
		}
	}
	return featured, nil
}

func (s *Service) loadFile(ctx context.Context, fileName string) (*Post, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path := filepath.Join(s.cfg.ContentDir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Op: "read post", Path: path, Err: err}
	}
	return s.buildPost(fileName, data)
}

// buildPost maps front matter onto a Post field by field with named defaults:
// a missing featured flag is false, missing tags are an empty slice, and a
// missing id falls back to a deterministic UUID derived from the slug.
func (s *Service) buildPost(fileName string, data []byte) (*Post, error) {
	slugValue := s.slugFor(fileName)

	meta, body, err := markdown.Split(data)
	if err != nil {
		return nil, fmt.Errorf("blog: parse %s: %w", fileName, err)
	}

	html, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("blog: render %s: %w", fileName, err)
	}

	post := &Post{
		ID:          meta.ID,
		Slug:        slugValue,
		Title:       meta.Title,
		Excerpt:     meta.Excerpt,
		Content:     string(html),
		PublishedAt: meta.PublishedAt,
		UpdatedAt:   meta.UpdatedAt,
		Author:      meta.Author,
		Category:    meta.Category,
		Tags:        meta.Tags,
		ReadTime:    meta.ReadTime,
		Featured:    meta.Featured,
	}
	if post.ID == "" {
		post.ID = identity.PostUUID(slugValue).String()
	}
	if meta.SEO.MetaTitle != "" || meta.SEO.MetaDescription != "" || len(meta.SEO.Keywords) > 0 {
		post.SEO = &SEO{
			MetaTitle:       meta.SEO.MetaTitle,
			MetaDescription: meta.SEO.MetaDescription,
			Keywords:        meta.SEO.Keywords,
		}
	}
	return post, nil
}

// slugFor derives the canonical slug for a source file: the file name minus
// its extension, normalized to URL-safe form.
func (s *Service) slugFor(fileName string) string {
	stem := strings.TrimSuffix(fileName, s.cfg.Extension)
	normalized, err := NormalizeSlug(stem)
	if err != nil || normalized == "" {
		return strings.ToLower(stem)
	}
	return normalized
}

func rejectDuplicateSlugs(posts []*Post, files []string) error {
	bySlug := map[string]string{}
	for i, post := range posts {
		if post == nil {
			continue
		}
		if first, ok := bySlug[post.Slug]; ok {
			return &DuplicateSlugError{Slug: post.Slug, Files: []string{first, files[i]}}
		}
		bySlug[post.Slug] = files[i]
	}
	return nil
}

func sortByRecency(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt > posts[j].PublishedAt
	})
}
