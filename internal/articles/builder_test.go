package articles

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/orgsite/internal/metrics"
)

type countingRecorder struct {
	metrics.NoopRecorder
	mu      sync.Mutex
	results map[string]int
	parses  int
	workers int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{results: map[string]int{}}
}

func (r *countingRecorder) IncParseResult(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result]++
}

func (r *countingRecorder) ObserveParseDuration(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parses++
}

func (r *countingRecorder) SetParseWorkers(n int) { r.workers = n }

func slugsOf(items []*Article) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Slug)
	}
	return out
}

func TestBuild_Fixtures(t *testing.T) {
	paths, err := Locate(filepath.Join("testdata", "blog"), ".html")
	require.NoError(t, err)

	rec := newCountingRecorder()
	c := Build(context.Background(), paths, WithRecorder(rec), WithWorkers(2))

	require.Equal(t, 2, c.Len())
	require.Equal(t, []string{"garden", "hello"}, c.Slugs())
	require.Equal(t, []string{"garden", "hello"}, slugsOf(c.Articles()))

	failures := c.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, FailureDateFormat, failures[0].Kind)
	require.Equal(t, filepath.Join("testdata", "blog", "tech", "broken.html"), failures[0].Path)

	require.Equal(t, 2, rec.results[metrics.ParseResultOK])
	require.Equal(t, 1, rec.results[FailureDateFormat.String()])
	require.Equal(t, 3, rec.parses)
	require.Equal(t, 2, rec.workers)
}

func TestBuild_SortsNewestFirstAndKeepsTies(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		writeDoc(t, root, "a", "old.html", fullDoc("Old", "<2018-12-25 Tue>")),
		writeDoc(t, root, "a", "tie1.html", fullDoc("Tie one", "<2019-02-06 Wed>")),
		writeDoc(t, root, "b", "new.html", fullDoc("New", "<2020-03-01 Sun>")),
		writeDoc(t, root, "b", "tie2.html", fullDoc("Tie two", "<2019-02-06 Wed>")),
		writeDoc(t, root, "c", "tie3.html", fullDoc("Tie three", "<2019-02-06 Wed>")),
	}
	want := []string{"new", "tie1", "tie2", "tie3", "old"}

	for _, workers := range []int{1, 3, 16} {
		c := Build(context.Background(), paths, WithWorkers(workers))
		require.Equal(t, want, slugsOf(c.Articles()), "workers=%d", workers)

		ordered := c.Articles()
		for i := 1; i < len(ordered); i++ {
			require.False(t, ordered[i].PublishDate.After(ordered[i-1].PublishDate))
		}
	}
}

func TestBuild_DuplicateSlugLastWins(t *testing.T) {
	root := t.TempDir()
	paths := []string{
		writeDoc(t, root, "a", "same.html", fullDoc("First", "<2019-01-01 Tue>")),
		writeDoc(t, root, "b", "same.html", fullDoc("Second", "<2018-12-25 Tue>")),
		writeDoc(t, root, "b", "other.html", fullDoc("Other", "<2018-12-25 Tue>")),
	}

	c := Build(context.Background(), paths, WithWorkers(4))

	got, ok := c.Lookup("same")
	require.True(t, ok)
	require.Equal(t, "Second", got.Title)
	require.Equal(t, "b", got.Category)

	require.Equal(t, 2, c.Len())
	require.Len(t, c.Articles(), 3)
	require.LessOrEqual(t, c.Len(), len(c.Articles()))
}

func TestBuild_AllFailuresYieldEmptyCollection(t *testing.T) {
	root := t.TempDir()
	noTitle := fullDoc("", "<2019-02-06 Wed>")
	paths := []string{
		writeDoc(t, root, "a", "one.html", noTitle),
		filepath.Join(root, "a", "missing.html"),
	}

	c := Build(context.Background(), paths)
	require.Zero(t, c.Len())
	require.Empty(t, c.Articles())
	require.Empty(t, c.Slugs())

	failures := c.Failures()
	require.Len(t, failures, 2)
	require.Equal(t, FailureMissingTitle, failures[0].Kind)
	require.Equal(t, FailureUnreadable, failures[1].Kind)
}

func TestBuild_CanceledContext(t *testing.T) {
	root := t.TempDir()
	paths := []string{writeDoc(t, root, "a", "one.html", fullDoc("One", "<2019-02-06 Wed>"))}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := Build(ctx, paths)
	require.Zero(t, c.Len())
	require.Empty(t, c.Failures())
}

func TestBuild_NoPaths(t *testing.T) {
	c := Build(context.Background(), nil)
	require.Zero(t, c.Len())
	require.Empty(t, c.Articles())
}

func TestCollection_Accessors(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2019, time.January, d, 0, 0, 0, 0, time.UTC) }
	c := NewCollection([]*Article{
		{Slug: "b", PublishDate: day(1)},
		{Slug: "a", PublishDate: day(3)},
		{Slug: "c", PublishDate: day(2)},
	})

	require.Equal(t, []string{"a", "b", "c"}, c.Slugs())
	require.Equal(t, []string{"a", "c", "b"}, slugsOf(c.Articles()))

	_, ok := c.Lookup("zzz")
	require.False(t, ok)

	list := c.Articles()
	list[0] = nil
	require.NotNil(t, c.Articles()[0], "Articles must return a copy")

	var empty *Collection
	require.Zero(t, empty.Len())
	require.Nil(t, empty.Slugs())
	_, ok = empty.Lookup("a")
	require.False(t, ok)
}
