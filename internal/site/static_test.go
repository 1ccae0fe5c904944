package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func resetStatic(t *testing.T) {
	t.Helper()
	staticMu.Lock()
	staticGlobal = nil
	staticMu.Unlock()
	t.Cleanup(func() {
		staticMu.Lock()
		staticGlobal = nil
		staticMu.Unlock()
	})
}

func TestDefaultValues_NecessaryKeys(t *testing.T) {
	keys := []string{
		"domain_name", "nav_site_href", "root_uri", "blog_uri", "resume_uri",
		"linkedin_uri", "github_uri", "resume_pdf_uri", "rss_uri", "crash_uri",
		"web_sep", "admin_email", "full_name", "internet_handle", "my_email",
		"github_url", "github_repo_url", "linkedin_url",
	}
	s := NewStatic(nil)
	for _, k := range keys {
		_, ok := s.Get(k)
		require.True(t, ok, "missing key %s", k)
	}
	require.Len(t, s.Keys(), len(keys))
}

func TestNewStatic_Overrides(t *testing.T) {
	s := NewStatic(map[string]string{"domain_name": "blog.test", "extra": "1"})

	v, _ := s.Get("domain_name")
	require.Equal(t, "blog.test", v)
	v, _ = s.Get("blog_uri")
	require.Equal(t, "/blog", v)
	v, ok := s.Get("extra")
	require.True(t, ok)
	require.Equal(t, "1", v)

	_, ok = s.Get("nope")
	require.False(t, ok)
}

func TestStatic_MapIsCopy(t *testing.T) {
	s := NewStatic(nil)
	m := s.Map()
	m["domain_name"] = "mutated"
	v, _ := s.Get("domain_name")
	require.Equal(t, "example.org", v)
}

func TestStatic_Keys_Sorted(t *testing.T) {
	keys := NewStatic(nil).Keys()
	require.IsNonDecreasing(t, keys)
}

func TestInitStatic_Once(t *testing.T) {
	resetStatic(t)
	require.Nil(t, StaticContext())

	first, err := InitStatic(map[string]string{"full_name": "Ada"})
	require.NoError(t, err)
	require.Same(t, first, StaticContext())

	second, err := InitStatic(map[string]string{"full_name": "Bob"})
	require.ErrorIs(t, err, ErrStaticInitialized)
	require.Same(t, first, second)

	v, _ := StaticContext().Get("full_name")
	require.Equal(t, "Ada", v)
}

func TestStatic_NilReceiver(t *testing.T) {
	var s *Static
	_, ok := s.Get("domain_name")
	require.False(t, ok)
	require.Nil(t, s.Keys())
	require.Empty(t, s.Map())
}
