package site

import (
	"maps"
	"slices"
	"sync"
)

// Static holds the site-wide key/value pairs every page sees as Base.
// It is never mutated after construction.
type Static struct {
	values map[string]string
}

var (
	staticMu     sync.Mutex
	staticGlobal *Static
)

// DefaultValues returns the built-in static keys and their default values.
func DefaultValues() map[string]string {
	return map[string]string{
		"domain_name":     "example.org",
		"nav_site_href":   "/",
		"root_uri":        "/",
		"blog_uri":        "/blog",
		"resume_uri":      "/resume",
		"linkedin_uri":    "/linkedin",
		"github_uri":      "/github",
		"resume_pdf_uri":  "/resume.pdf",
		"rss_uri":         "/feed/index.xml",
		"crash_uri":       "/500.html",
		"web_sep":         "--",
		"admin_email":     "admin@example.org",
		"full_name":       "Site Owner",
		"internet_handle": "owner",
		"my_email":        "owner@example.org",
		"github_url":      "https://github.com/owner",
		"github_repo_url": "https://github.com/owner/site",
		"linkedin_url":    "https://www.linkedin.com/in/owner",
	}
}

// NewStatic builds a Static from the defaults overlaid with values.
// The instance is not registered as the process context.
func NewStatic(values map[string]string) *Static {
	merged := DefaultValues()
	maps.Copy(merged, values)
	return &Static{values: merged}
}

// InitStatic creates the process-wide static context. It must be called once
// during start-up; later calls return ErrStaticInitialized and the existing context.
func InitStatic(values map[string]string) (*Static, error) {
	staticMu.Lock()
	defer staticMu.Unlock()
	if staticGlobal != nil {
		return staticGlobal, ErrStaticInitialized
	}
	staticGlobal = NewStatic(values)
	return staticGlobal, nil
}

// StaticContext returns the process-wide static context, or nil before InitStatic.
func StaticContext() *Static {
	staticMu.Lock()
	defer staticMu.Unlock()
	return staticGlobal
}

// Get returns the value stored under key.
func (s *Static) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// Keys returns every key in ascending order.
func (s *Static) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Map returns a copy of the values.
func (s *Static) Map() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return maps.Clone(s.values)
}
