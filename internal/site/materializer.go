package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
)

// Renderer turns a template name and its data into page bytes.
type Renderer interface {
	Render(name string, data any) ([]byte, error)
}

// Materializer writes the page table for a collection. A Materializer is not
// safe for concurrent Materialize calls.
type Materializer struct {
	renderer Renderer
	static   *Static
	pages    []Page
	recorder metrics.Recorder
	written  []string
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithRecorder counts written pages on r.
func WithRecorder(r metrics.Recorder) Option {
	return func(m *Materializer) { m.recorder = metrics.OrNoop(r) }
}

// WithStatic uses s instead of the process-wide static context.
func WithStatic(s *Static) Option {
	return func(m *Materializer) { m.static = s }
}

// NewMaterializer returns a Materializer rendering Pages through r.
// Without WithStatic it uses StaticContext, falling back to the defaults
// when InitStatic has not run.
func NewMaterializer(r Renderer, opts ...Option) *Materializer {
	m := &Materializer{
		renderer: r,
		pages:    Pages,
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.static == nil {
		m.static = StaticContext()
	}
	if m.static == nil {
		m.static = NewStatic(nil)
	}
	return m
}

// Written returns the output paths, relative to the output root, written by
// the last Materialize call in write order.
func (m *Materializer) Written() []string {
	out := make([]string, len(m.written))
	copy(out, m.written)
	return out
}

// Materialize renders every page of the table into outputRoot, which must
// already exist. Site-wide pages come first in table order; the per-article
// page is expanded in ascending slug order. The first failure aborts the run
// and is returned as a *MaterializationError; files already written stay.
// ctx is checked between pages.
func (m *Materializer) Materialize(ctx context.Context, coll *articles.Collection, outputRoot string) error {
	m.written = m.written[:0]
	start := time.Now()

	info, err := os.Stat(outputRoot)
	if err != nil || !info.IsDir() {
		cause := ErrOutputRootMissing
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			cause = err
		}
		return &MaterializationError{Kind: KindCreateDir, Path: outputRoot, Err: cause}
	}

	base := m.static.Map()
	for _, p := range m.pages {
		if !p.PerArticle {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.writePage(outputRoot, p, p.OutputPath(""), newPageContext(base, p, coll, nil)); err != nil {
				return err
			}
			continue
		}
		for _, slug := range coll.Slugs() {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := p.OutputPath(slug)
			if !safeSlug(slug) {
				return &MaterializationError{Kind: KindWrite, Page: p.Name, Path: out,
					Err: fmt.Errorf("%w: %q", ErrUnsafeSlug, slug)}
			}
			a, _ := coll.Lookup(slug)
			if err := m.writePage(outputRoot, p, out, newPageContext(base, p, coll, a)); err != nil {
				return err
			}
		}
	}

	slog.Info("Materialized site",
		logfields.Output(outputRoot),
		logfields.Count(len(m.written)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}

func (m *Materializer) writePage(root string, p Page, rel string, data PageContext) error {
	out, err := m.renderer.Render(p.Template, data)
	if err != nil {
		return &MaterializationError{Kind: KindRender, Page: p.Name, Path: rel, Err: err}
	}
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := WriteFile(full, out); err != nil {
		kind := KindWrite
		if errors.Is(err, ErrCreateDir) {
			kind = KindCreateDir
		}
		return &MaterializationError{Kind: kind, Page: p.Name, Path: rel, Err: err}
	}
	m.written = append(m.written, rel)
	m.recorder.IncPageWritten(p.Name)
	slog.Debug("Wrote page",
		logfields.Page(p.Name),
		logfields.Template(p.Template),
		logfields.Output(rel))
	return nil
}

func safeSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}
