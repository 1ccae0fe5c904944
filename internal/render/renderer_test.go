package render

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

func samplePage(kv map[string]string, a *articles.Article) site.PageContext {
	coll := articles.NewCollection([]*articles.Article{
		{
			Title:                "Hello <World>",
			Slug:                 "hello",
			Category:             "tech",
			Description:          "First & only",
			PublishDate:          time.Date(2019, time.February, 6, 0, 0, 0, 0, time.UTC),
			FormattedPublishDate: "Wed, 06 Feb 2019 00:00:00 +0000",
			TableOfContents:      `<div id="text-table-of-contents"><ul><li>1. Intro</li></ul></div>`,
			Body:                 `<div class="outline-2"><p>Body <em>text</em></p></div>`,
			Footnotes:            []string{`<div class="footdef">one</div>`, `<div class="footdef">two</div>`},
		},
	})
	if a == nil && kv["curr_slug"] != "" {
		a, _ = coll.Lookup(kv["curr_slug"])
	}
	return site.PageContext{
		Base:    site.NewStatic(map[string]string{"domain_name": "blog.test", "full_name": "Ada & Co"}).Map(),
		KV:      kv,
		Blog:    coll,
		Article: a,
	}
}

func TestDefault_CoversPageTable(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	for _, name := range site.Templates() {
		require.True(t, r.Has(name), "default theme lacks %s", name)
	}
	require.NotContains(t, r.Names(), "partials/layout.html")
}

func TestDefault_RendersEveryPage(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	for _, p := range site.Pages {
		kv := map[string]string{"title": p.Title, "nav_site_href": p.Nav}
		for k, v := range p.Extra {
			kv[k] = v
		}
		if p.PerArticle {
			kv["curr_slug"] = "hello"
		}
		out, err := r.Render(p.Template, samplePage(kv, nil))
		require.NoError(t, err, p.Name)
		require.NotEmpty(t, out, p.Name)
	}
}

func TestDefault_Robots(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	out, err := r.Render("robots.txt", samplePage(map[string]string{"title": "robots"}, nil))
	require.NoError(t, err)
	require.Equal(t, "User-agent: *\nDisallow:", string(out))
}

func TestDefault_FeedUsesTextTemplate(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	out, err := r.Render("feed.xml", samplePage(map[string]string{"nav_site_href": "/blog"}, nil))
	require.NoError(t, err)

	feed := string(out)
	require.True(t, strings.HasPrefix(feed, `<?xml version="1.0" encoding="UTF-8"?>`), feed)
	require.Equal(t, 1, strings.Count(feed, "<item>"))
	require.Contains(t, feed, "<pubDate>Wed, 06 Feb 2019 00:00:00 +0000</pubDate>")
	require.Contains(t, feed, "<title>Hello &lt;World&gt;</title>")
	require.Contains(t, feed, "<description>First &amp; only</description>")
	require.Contains(t, feed, "<link>https://blog.test/blog/hello</link>")
	require.Contains(t, feed, feedGUID("https://blog.test/blog/hello"))
}

func TestDefault_FeedKeepsDuplicateSlugs(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	coll := articles.NewCollection([]*articles.Article{
		{Title: "Old", Slug: "x", PublishDate: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "New", Slug: "x", PublishDate: time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.Equal(t, 1, coll.Len())

	pc := site.PageContext{
		Base: site.NewStatic(map[string]string{"domain_name": "blog.test"}).Map(),
		KV:   map[string]string{},
		Blog: coll,
	}
	out, err := r.Render("feed.xml", pc)
	require.NoError(t, err)

	feed := string(out)
	guid := feedGUID("https://blog.test/blog/x")
	require.Equal(t, 2, strings.Count(feed, "<item>"))
	require.Equal(t, 2, strings.Count(feed, "<link>https://blog.test/blog/x</link>"))
	require.Equal(t, 2, strings.Count(feed, guid))
	require.Less(t, strings.Index(feed, "<title>New</title>"), strings.Index(feed, "<title>Old</title>"))
}

func TestDefault_ArticlePage(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	kv := map[string]string{"title": "blog", "nav_site_href": "/blog", "curr_slug": "hello"}
	out, err := r.Render("blog/article.html", samplePage(kv, nil))
	require.NoError(t, err)

	page := string(out)
	require.Contains(t, page, "<h1>Hello &lt;World&gt;</h1>")
	require.Contains(t, page, `<div class="outline-2"><p>Body <em>text</em></p></div>`)
	require.Contains(t, page, `<div id="text-table-of-contents">`)
	require.Contains(t, page, `<div class="footdef">one</div>`+"\n"+`<div class="footdef">two</div>`)
	require.Contains(t, page, `<a href="/blog" class="active">blog</a>`)
	require.Contains(t, page, "Ada &amp; Co")
}

func TestDefault_ServerErrorPageUsesURI(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	out, err := r.Render("500.html", samplePage(map[string]string{"title": "500", "nav_site_href": "/", "uri": "/"}, nil))
	require.NoError(t, err)
	require.Contains(t, string(out), `go <a href="/">back</a>`)
}

func TestNew_PartialsAndEngines(t *testing.T) {
	fsys := fstest.MapFS{
		"partials/bits.html.tmpl": {Data: []byte(`{{ define "greet" }}hi {{ . }}{{ end }}`)},
		"page.html.tmpl":          {Data: []byte(`<p>{{ template "greet" .Name }}</p>`)},
		"plain.txt.tmpl":          {Data: []byte(`{{ .Name }}`)},
		"notes.md":                {Data: []byte(`ignored`)},
	}
	r, err := New(fsys)
	require.NoError(t, err)
	require.Equal(t, []string{"page.html", "plain.txt"}, r.Names())

	data := struct{ Name string }{Name: "<b>"}
	out, err := r.Render("page.html", data)
	require.NoError(t, err)
	require.Equal(t, "<p>hi &lt;b&gt;</p>", string(out))

	out, err = r.Render("plain.txt", data)
	require.NoError(t, err)
	require.Equal(t, "<b>", string(out))
}

func TestNew_MissingKeyIsEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html.tmpl": {Data: []byte(`[{{ .KV.absent }}]`)},
	}
	r, err := New(fsys)
	require.NoError(t, err)
	out, err := r.Render("page.html", site.PageContext{KV: map[string]string{}})
	require.NoError(t, err)
	require.Equal(t, "[]", string(out))
}

func TestNew_Errors(t *testing.T) {
	_, err := New(fstest.MapFS{"readme.md": {Data: []byte("x")}})
	require.ErrorIs(t, err, ErrNoTemplates)

	_, err = New(fstest.MapFS{"bad.html.tmpl": {Data: []byte("{{ .Unclosed ")}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.html")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	_, err = r.Render("nope.html", nil)
	require.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRender_ExecutionError(t *testing.T) {
	r, err := New(fstest.MapFS{"page.html.tmpl": {Data: []byte(`{{ .Missing.Field }}`)}})
	require.NoError(t, err)
	_, err = r.Render("page.html", struct{}{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "execute template page.html")
}

func TestDir(t *testing.T) {
	_, err := Dir(t.TempDir() + "/absent")
	require.Error(t, err)
}

func TestFuncs(t *testing.T) {
	require.Equal(t, "a&lt;b&amp;c", xmlEscape("a<b&c"))
	require.Equal(t, feedGUID("https://x/a"), feedGUID("https://x/a"))
	require.NotEqual(t, feedGUID("https://x/a"), feedGUID("https://x/b"))
	require.Equal(t, "a-b", join([]string{"a", "b"}, "-"))

	n := navItem("/blog", "/blog", "blog")
	require.True(t, n.Active)
	require.False(t, navItem("/", "/blog", "blog").Active)
}
