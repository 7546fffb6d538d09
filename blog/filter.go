package blog

import "strings"

// FilterAll is the sentinel criteria value meaning "no filter" for the
// category and tag dimensions.
const FilterAll = "All"

// FilterKind names one criteria dimension for targeted clearing.
type FilterKind string

const (
	FilterSearch   FilterKind = "search"
	FilterCategory FilterKind = "category"
	FilterTag      FilterKind = "tag"
)

// Criteria is the transient filter state: a free-text search term plus
// category and tag selections. The zero value is NOT unfiltered; use
// DefaultCriteria so the sentinel selections are in place.
type Criteria struct {
	Search   string
	Category string
	Tag      string
}

// DefaultCriteria returns the all-unfiltered state.
func DefaultCriteria() Criteria {
	return Criteria{Category: FilterAll, Tag: FilterAll}
}

// Active reports whether any dimension narrows the collection.
func (c Criteria) Active() bool {
	return c.Search != "" || c.Category != FilterAll || c.Tag != FilterAll
}

// Matches reports whether the post satisfies every criteria dimension:
//   - search: empty, or a case-insensitive substring of the title, the
//     excerpt, or at least one tag
//   - category: the sentinel, or exactly equal (case-sensitive)
//   - tag: the sentinel, or exact membership (case-sensitive, no substring)
func (c Criteria) Matches(post *Post) bool {
	if post == nil {
		return false
	}
	return c.matchesSearch(post) && c.matchesCategory(post) && c.matchesTag(post)
}

func (c Criteria) matchesSearch(post *Post) bool {
	if c.Search == "" {
		return true
	}
	needle := strings.ToLower(c.Search)
	if strings.Contains(strings.ToLower(post.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(post.Excerpt), needle) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func (c Criteria) matchesCategory(post *Post) bool {
	return c.Category == FilterAll || post.Category == c.Category
}

func (c Criteria) matchesTag(post *Post) bool {
	return c.Tag == FilterAll || post.HasTag(c.Tag)
}

// Apply returns the subset of posts matching the criteria, preserving order.
// It is a pure function: the same inputs always produce the same subset.
func Apply(posts []*Post, criteria Criteria) []*Post {
	matches := make([]*Post, 0, len(posts))
	for _, post := range posts {
		if criteria.Matches(post) {
			matches = append(matches, post)
		}
	}
	return matches
}

// Filter is the long-lived interactive view over a post collection: criteria
// mutate through the setters and the matching subset recomputes on every
// change. A linear scan per keystroke is the intended design; collections are
// tens to low hundreds of posts.
type Filter struct {
	posts    []*Post
	criteria Criteria
	matches  []*Post
}

// NewFilter builds an unfiltered view over posts.
func NewFilter(posts []*Post) *Filter {
	f := &Filter{
		posts:    posts,
		criteria: DefaultCriteria(),
	}
	f.recompute()
	return f
}

// SetPosts swaps the backing collection, keeping the current criteria.
func (f *Filter) SetPosts(posts []*Post) {
	f.posts = posts
	f.recompute()
}

// SetSearch updates the free-text search term.
func (f *Filter) SetSearch(term string) {
	f.criteria.Search = term
	f.recompute()
}

// SetCategory selects a category, or FilterAll to clear the dimension.
func (f *Filter) SetCategory(category string) {
	if category == "" {
		category = FilterAll
	}
	f.criteria.Category = category
	f.recompute()
}

// SetTag selects an exact tag, or FilterAll to clear the dimension. Tag chips
// under a post feed their literal value through here.
func (f *Filter) SetTag(tag string) {
	if tag == "" {
		tag = FilterAll
	}
	f.criteria.Tag = tag
	f.recompute()
}

// Clear resets a single criteria dimension to its default.
func (f *Filter) Clear(kind FilterKind) {
	switch kind {
	case FilterSearch:
		f.criteria.Search = ""
	case FilterCategory:
		f.criteria.Category = FilterAll
	case FilterTag:
		f.criteria.Tag = FilterAll
	}
	f.recompute()
}

// ClearAll resets every dimension, returning the view to Unfiltered.
func (f *Filter) ClearAll() {
	f.criteria = DefaultCriteria()
	f.recompute()
}

// Criteria returns the current criteria snapshot.
func (f *Filter) Criteria() Criteria {
	return f.criteria
}

// Matches returns the current matching subset in collection order.
func (f *Filter) Matches() []*Post {
	return f.matches
}

// MatchCount returns how many posts match the current criteria.
func (f *Filter) MatchCount() int {
	return len(f.matches)
}

// Total returns the size of the unfiltered collection.
func (f *Filter) Total() int {
	return len(f.posts)
}

// Active reports whether any filter narrows the collection; it drives the
// active-chip, empty-state, and clear-all affordances.
func (f *Filter) Active() bool {
	return f.criteria.Active()
}

func (f *Filter) recompute() {
	f.matches = Apply(f.posts, f.criteria)
}
