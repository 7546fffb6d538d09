// Package server exposes the portfolio module over an HTTP JSON API.
package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/blog"
	"github.com/goliatone/go-portfolio/contact"
	"github.com/goliatone/go-portfolio/internal/logging"
)

// Server mounts the blog query surface and the contact relay on gin.
type Server struct {
	engine *gin.Engine
	module *portfolio.Module
	logger logging.Logger
}

// New builds the HTTP server around an assembled module.
func New(module *portfolio.Module) *Server {
	s := &Server{
		module: module,
		logger: logging.ServerLogger(module.LoggerProvider()),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	api.GET("/posts", s.handleListPosts)
	api.GET("/posts/:slug", s.handleGetPost)
	api.GET("/featured", s.handleFeatured)
	api.GET("/slugs", s.handleSlugs)
	api.GET("/categories", s.handleCategories)
	api.GET("/tags", s.handleTags)
	api.POST("/contact", contact.HTTPHandler(module.Contact(), logging.ContactLogger(module.LoggerProvider())))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = engine
	return s
}

// Handler returns the underlying http.Handler for mounting or testing.
func (s *Server) Handler() http.Handler { return s.engine }

type postView struct {
	*blog.Post
	URL string `json:"url,omitempty"`
}

func (s *Server) view(post *blog.Post) postView {
	url, err := s.module.Links().Post(post.Slug)
	if err != nil {
		s.logger.Warn("server.permalink.failed", "slug", post.Slug, "error", err)
		url = ""
	}
	return postView{Post: post, URL: url}
}

func (s *Server) views(posts []*blog.Post) []postView {
	out := make([]postView, 0, len(posts))
	for _, post := range posts {
		out = append(out, s.view(post))
	}
	return out
}

func criteriaFromQuery(c *gin.Context) blog.Criteria {
	criteria := blog.DefaultCriteria()
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		criteria.Search = search
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		criteria.Category = category
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		criteria.Tag = tag
	}
	return criteria
}

type listResponse struct {
	Posts    []postView `json:"posts"`
	Matching int        `json:"matching"`
	Total    int        `json:"total"`
	Filtered bool       `json:"filtered"`
}

func (s *Server) handleListPosts(c *gin.Context) {
	posts, err := s.module.Blog().List(c.Request.Context())
	if err != nil {
		s.logger.Error("server.posts.list_failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	filter := blog.NewFilter(posts)
	criteria := criteriaFromQuery(c)
	filter.SetSearch(criteria.Search)
	filter.SetCategory(criteria.Category)
	filter.SetTag(criteria.Tag)

	c.JSON(http.StatusOK, listResponse{
		Posts:    s.views(filter.Matches()),
		Matching: filter.MatchCount(),
		Total:    filter.Total(),
		Filtered: filter.Active(),
	})
}

func (s *Server) handleGetPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := s.module.Blog().GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		s.logger.Error("server.posts.get_failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load post"})
		return
	}
	c.JSON(http.StatusOK, s.view(post))
}

func (s *Server) handleFeatured(c *gin.Context) {
	posts, err := s.module.Blog().Featured(c.Request.Context())
	if err != nil {
		s.logger.Error("server.posts.featured_failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, s.views(posts))
}

func (s *Server) handleSlugs(c *gin.Context) {
	slugs, err := s.module.Blog().Slugs(c.Request.Context())
	if err != nil {
		s.logger.Error("server.slugs.failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, slugs)
}

func (s *Server) handleCategories(c *gin.Context) {
	categories, err := s.module.Blog().Categories(c.Request.Context())
	if err != nil {
		s.logger.Error("server.categories.failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleTags(c *gin.Context) {
	tags, err := s.module.Blog().Tags(c.Request.Context())
	if err != nil {
		s.logger.Error("server.tags.failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, tags)
}
