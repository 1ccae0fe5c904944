package articles

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
)

type buildOptions struct {
	workers  int
	recorder metrics.Recorder
}

// Option configures Build.
type Option func(*buildOptions)

// WithWorkers bounds the number of documents parsed concurrently.
// Values below one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *buildOptions) { o.workers = n }
}

// WithRecorder reports parse results and durations to r.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *buildOptions) { o.recorder = r }
}

type parseResult struct {
	article *Article
	err     error
	done    bool
}

// Build parses every path and assembles the Collection.
//
// Documents are parsed on a bounded pool, results are folded in input order
// after all workers finish, so the outcome never depends on completion order.
// When two documents share a slug the later one in paths owns the slug. When
// ctx is canceled, documents not yet started are skipped; callers check ctx.Err().
func Build(ctx context.Context, paths []string, opts ...Option) *Collection {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	rec := metrics.OrNoop(o.recorder)
	rec.SetParseWorkers(o.workers)

	results := make([]parseResult, len(paths))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			start := time.Now()
			a, err := Parse(path)
			rec.ObserveParseDuration(time.Since(start))
			results[i] = parseResult{article: a, err: err, done: true}
			return nil
		})
	}
	_ = g.Wait()

	c := &Collection{bySlug: make(map[string]*Article, len(paths))}
	for i, r := range results {
		if !r.done {
			continue
		}
		if r.err != nil {
			var pf *ParseFailure
			if !errors.As(r.err, &pf) {
				pf = newFailure(FailureUnreadable, paths[i], r.err)
			}
			c.failures = append(c.failures, pf)
			rec.IncParseResult(pf.Kind.String())
			continue
		}
		rec.IncParseResult(metrics.ParseResultOK)
		if prev := c.add(r.article); prev != nil {
			slog.Warn("Duplicate article slug, later document wins",
				logfields.Slug(r.article.Slug),
				slog.String("previous", prev.SourcePath),
				logfields.Path(r.article.SourcePath))
		}
	}
	c.sort()

	slog.Info("Built article collection",
		logfields.Count(c.Len()),
		slog.Int("failures", len(c.failures)),
		logfields.Workers(o.workers))
	return c
}
