package blog

// Post is one blog entry parsed from a markdown source file. A Post is a
// value rebuilt from disk on every read; it carries no identity beyond its
// slug and is never mutated after construction.
type Post struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	ReadTime    int      `json:"readTime"`
	Featured    bool     `json:"featured"`
	SEO         *SEO     `json:"seo,omitempty"`
}

// SEO is passthrough search metadata attached to a post. Nil when the source
// front matter has no seo block.
type SEO struct {
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// HasTag reports whether the post carries the exact tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
