package site

import (
	"maps"

	"git.home.luguber.info/inful/orgsite/internal/articles"
)

// PageContext is the data handed to every template.
//
//	{{ .Base.domain_name }}   static site values
//	{{ .KV.title }}           per-page values (title, nav_site_href, extras)
//	{{ range .Blog.Articles }} the whole collection, newest first
//	{{ .Article.Body }}       only on article pages
type PageContext struct {
	Base    map[string]string
	KV      map[string]string
	Blog    *articles.Collection
	Article *articles.Article
}

func newPageContext(base map[string]string, p Page, coll *articles.Collection, a *articles.Article) PageContext {
	kv := map[string]string{
		"title":         p.Title,
		"nav_site_href": p.Nav,
	}
	maps.Copy(kv, p.Extra)
	if a != nil {
		kv["curr_slug"] = a.Slug
	}
	return PageContext{Base: base, KV: kv, Blog: coll, Article: a}
}
