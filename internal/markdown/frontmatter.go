package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Meta is the typed front matter header of a blog post source file. Fields
// absent from the header keep their zero value; the blog service applies the
// named defaults, never an untyped merge.
type Meta struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	PublishedAt string   `yaml:"publishedAt"`
	UpdatedAt   string   `yaml:"updatedAt"`
	Tags        []string `yaml:"tags"`
	ReadTime    int      `yaml:"readTime"`
	Featured    bool     `yaml:"featured"`
	SEO         SEOMeta  `yaml:"seo"`
}

// SEOMeta carries passthrough search metadata. No derived behaviour.
type SEOMeta struct {
	MetaTitle       string   `yaml:"metaTitle"`
	MetaDescription string   `yaml:"metaDescription"`
	Keywords        []string `yaml:"keywords"`
}

// Split extracts the front matter header and the markdown body from the
// provided source bytes. The returned body has the delimiters stripped.
func Split(source []byte) (Meta, []byte, error) {
	var meta Meta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Tags == nil {
		meta.Tags = []string{}
	}
	if meta.SEO.Keywords == nil {
		meta.SEO.Keywords = []string{}
	}

	return meta, body, nil
}
