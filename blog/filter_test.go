package blog

import "testing"

func filterFixture() []*Post {
	return []*Post{
		{
			Slug:        "go-concurrency",
			Title:       "Concurrency Patterns in Go",
			Excerpt:     "Channels, errgroups, and when to avoid both.",
			Category:    "Engineering",
			Tags:        []string{"golang", "concurrency"},
			PublishedAt: "2024-03-01",
		},
		{
			Slug:        "product-bets",
			Title:       "Placing Product Bets",
			Excerpt:     "Portfolio thinking for roadmaps.",
			Category:    "Product",
			Tags:        []string{"strategy", "roadmaps"},
			PublishedAt: "2024-02-01",
		},
		{
			Slug:        "leading-quietly",
			Title:       "Leading Quietly",
			Excerpt:     "Influence without volume.",
			Category:    "Leadership",
			Tags:        []string{"teams"},
			PublishedAt: "2024-01-01",
		},
	}
}

func TestCriteria_DefaultsAreUnfiltered(t *testing.T) {
	criteria := DefaultCriteria()
	if criteria.Active() {
		t.Fatalf("default criteria must not be active")
	}

	matches := Apply(filterFixture(), criteria)
	if len(matches) != 3 {
		t.Fatalf("unfiltered criteria must match everything, got %d", len(matches))
	}
}

func TestApply_Idempotent(t *testing.T) {
	posts := filterFixture()
	criteria := Criteria{Search: "product", Category: FilterAll, Tag: FilterAll}

	first := Apply(posts, criteria)
	second := Apply(posts, criteria)
	if len(first) != len(second) {
		t.Fatalf("same criteria produced different counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Slug != second[i].Slug {
			t.Fatalf("same criteria produced different sets at %d", i)
		}
	}
}

func TestApply_CategoryConjunction(t *testing.T) {
	posts := filterFixture()

	matches := Apply(posts, Criteria{Category: "Product", Tag: FilterAll})
	if len(matches) != 1 || matches[0].Slug != "product-bets" {
		t.Fatalf("category filter must isolate the one Product post, got %v", matches)
	}
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	posts := filterFixture()

	matches := Apply(posts, Criteria{Search: "PRODUCT", Category: FilterAll, Tag: FilterAll})
	if len(matches) != 1 || matches[0].Slug != "product-bets" {
		t.Fatalf("expected case-insensitive title match, got %v", matches)
	}
}

func TestApply_SearchCoversTags(t *testing.T) {
	posts := filterFixture()

	matches := Apply(posts, Criteria{Search: "golang", Category: FilterAll, Tag: FilterAll})
	if len(matches) != 1 || matches[0].Slug != "go-concurrency" {
		t.Fatalf("expected tag substring search match, got %v", matches)
	}
}

func TestApply_TagExactMatchOnly(t *testing.T) {
	posts := filterFixture()

	// "go" is a substring of the tag "golang" but the tag dimension requires
	// exact membership.
	if matches := Apply(posts, Criteria{Category: FilterAll, Tag: "go"}); len(matches) != 0 {
		t.Fatalf("tag filter must not substring-match, got %v", matches)
	}
	if matches := Apply(posts, Criteria{Category: FilterAll, Tag: "golang"}); len(matches) != 1 {
		t.Fatalf("exact tag must match, got %v", matches)
	}
}

func TestApply_ConjunctionAcrossDimensions(t *testing.T) {
	posts := filterFixture()

	matches := Apply(posts, Criteria{Search: "concurrency", Category: "Product", Tag: FilterAll})
	if len(matches) != 0 {
		t.Fatalf("criteria are a conjunction; mismatched category must drop the post")
	}
}

func TestFilter_ReactiveRecompute(t *testing.T) {
	f := NewFilter(filterFixture())

	if f.Active() {
		t.Fatalf("new filter must start unfiltered")
	}
	if f.MatchCount() != 3 || f.Total() != 3 {
		t.Fatalf("unfiltered counts wrong: %d/%d", f.MatchCount(), f.Total())
	}

	f.SetSearch("bets")
	if !f.Active() {
		t.Fatalf("search term must activate the filter")
	}
	if f.MatchCount() != 1 || f.Matches()[0].Slug != "product-bets" {
		t.Fatalf("search recompute wrong: %v", f.Matches())
	}

	f.SetCategory("Engineering")
	if f.MatchCount() != 0 {
		t.Fatalf("expected NoResults state, got %d matches", f.MatchCount())
	}
	if f.Total() != 3 {
		t.Fatalf("total must stay the collection size, got %d", f.Total())
	}
}

func TestFilter_TagChipSelection(t *testing.T) {
	f := NewFilter(filterFixture())

	f.SetTag("teams")
	if f.Criteria().Tag != "teams" {
		t.Fatalf("tag chip must set the literal tag value, got %q", f.Criteria().Tag)
	}
	if f.MatchCount() != 1 || f.Matches()[0].Slug != "leading-quietly" {
		t.Fatalf("tag selection wrong: %v", f.Matches())
	}
}

func TestFilter_ClearSingleDimension(t *testing.T) {
	f := NewFilter(filterFixture())
	f.SetSearch("quietly")
	f.SetCategory("Leadership")

	f.Clear(FilterSearch)
	criteria := f.Criteria()
	if criteria.Search != "" || criteria.Category != "Leadership" {
		t.Fatalf("Clear(search) must leave other dimensions alone: %+v", criteria)
	}
	if f.MatchCount() != 1 {
		t.Fatalf("expected category filter still applied, got %d", f.MatchCount())
	}
}

func TestFilter_ClearAllResets(t *testing.T) {
	f := NewFilter(filterFixture())
	f.SetSearch("nothing-matches-this")
	f.SetCategory("Product")
	f.SetTag("strategy")

	if f.MatchCount() != 0 {
		t.Fatalf("expected empty matching set before reset")
	}

	f.ClearAll()
	if f.Active() {
		t.Fatalf("ClearAll must return to the unfiltered state")
	}
	if f.Criteria() != DefaultCriteria() {
		t.Fatalf("criteria not reset: %+v", f.Criteria())
	}
	if f.MatchCount() != f.Total() {
		t.Fatalf("ClearAll must restore the full collection: %d/%d", f.MatchCount(), f.Total())
	}
}

func TestFilter_SetPostsKeepsCriteria(t *testing.T) {
	f := NewFilter(nil)
	f.SetCategory("Product")

	f.SetPosts(filterFixture())
	if f.MatchCount() != 1 {
		t.Fatalf("criteria must apply to the swapped collection, got %d", f.MatchCount())
	}
}
