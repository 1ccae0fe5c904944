package site

import "strings"

// Logical page names.
const (
	PageHome        = "home"
	PageResume      = "resume"
	PageBlog        = "blog"
	PageLinkedIn    = "linkedin"
	PageGitHub      = "github"
	PageRobots      = "robots"
	PageFeed        = "feed"
	PageNotFound    = "not-found"
	PageServerError = "server-error"
	PageArticle     = "article"
)

// SlugPlaceholder is replaced by the article slug in per-article output paths.
const SlugPlaceholder = "{slug}"

// Page is one row of the page table.
type Page struct {
	Name       string
	Nav        string            // nav_site_href given to the template
	Template   string            // renderer template name
	Title      string            // kv.title
	Output     string            // path below the output root, slash separated
	Extra      map[string]string // additional kv entries
	PerArticle bool              // rendered once per slug
}

// OutputPath returns the page output for slug (ignored for site-wide pages).
func (p Page) OutputPath(slug string) string {
	if !p.PerArticle {
		return p.Output
	}
	return strings.ReplaceAll(p.Output, SlugPlaceholder, slug)
}

// Pages is the page table rendered by every Materialize run, in order.
var Pages = []Page{
	{Name: PageHome, Nav: "/", Template: "index.html", Title: "home", Output: "index.html"},
	{Name: PageResume, Nav: "/resume", Template: "resume.html", Title: "resume", Output: "resume/index.html"},
	{Name: PageBlog, Nav: "/blog", Template: "blog/index.html", Title: "blog", Output: "blog/index.html"},
	{Name: PageLinkedIn, Nav: "/linkedin", Template: "linkedin.html", Title: "linkedin", Output: "linkedin/index.html"},
	{Name: PageGitHub, Nav: "/github", Template: "github.html", Title: "github", Output: "github/index.html"},
	{Name: PageRobots, Nav: "/", Template: "robots.txt", Title: "robots", Output: "robots.txt"},
	{Name: PageFeed, Nav: "/blog", Template: "feed.xml", Title: "feed", Output: "feed/index.xml"},
	{Name: PageNotFound, Nav: "/", Template: "404.html", Title: "404", Output: "404.html",
		Extra: map[string]string{"blog_uri": ""}},
	{Name: PageServerError, Nav: "/", Template: "500.html", Title: "500", Output: "500.html",
		Extra: map[string]string{"uri": "/"}},
	{Name: PageArticle, Nav: "/blog", Template: "blog/article.html", Title: "blog",
		Output: "blog/" + SlugPlaceholder + "/index.html", PerArticle: true},
}

// Templates returns the distinct template names referenced by Pages.
func Templates() []string {
	seen := make(map[string]bool, len(Pages))
	out := make([]string, 0, len(Pages))
	for _, p := range Pages {
		if !seen[p.Template] {
			seen[p.Template] = true
			out = append(out, p.Template)
		}
	}
	return out
}
