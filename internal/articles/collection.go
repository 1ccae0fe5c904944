package articles

import (
	"maps"
	"slices"
)

// Collection is the immutable result of Build.
type Collection struct {
	bySlug   map[string]*Article
	ordered  []*Article
	failures []*ParseFailure
}

// NewCollection builds a Collection from already parsed articles in encounter
// order, applying the same dedupe and ordering rules as Build.
func NewCollection(items []*Article) *Collection {
	c := &Collection{bySlug: make(map[string]*Article, len(items))}
	for _, a := range items {
		c.add(a)
	}
	c.sort()
	return c
}

// Lookup returns the article registered under slug.
func (c *Collection) Lookup(slug string) (*Article, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.bySlug[slug]
	return a, ok
}

// Slugs returns the distinct slugs in ascending order.
func (c *Collection) Slugs() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.bySlug))
}

// Len is the number of distinct slugs.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.bySlug)
}

// Articles returns every parsed article, newest first. Articles sharing a
// publish date keep their encounter order. Duplicated slugs appear once per
// document. The returned slice is a copy.
func (c *Collection) Articles() []*Article {
	if c == nil {
		return nil
	}
	out := make([]*Article, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Failures returns the documents rejected while building, in encounter order.
func (c *Collection) Failures() []*ParseFailure {
	if c == nil {
		return nil
	}
	out := make([]*ParseFailure, len(c.failures))
	copy(out, c.failures)
	return out
}

func (c *Collection) add(a *Article) (previous *Article) {
	previous = c.bySlug[a.Slug]
	c.bySlug[a.Slug] = a
	c.ordered = append(c.ordered, a)
	return previous
}

func (c *Collection) sort() {
	slices.SortStableFunc(c.ordered, func(a, b *Article) int {
		return b.PublishDate.Compare(a.PublishDate)
	})
}
