package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// RendererFactory loads the theme named by a templates directory. An empty
// directory selects the embedded theme.
type RendererFactory func(dir string) (site.Renderer, error)

func stageLoadTemplates(factory RendererFactory) Stage {
	return func(_ context.Context, bs *BuildState) error {
		r, err := factory(bs.Config.Templates.Directory)
		if err != nil {
			return newFatalStageError(StageLoadTemplates, fmt.Errorf("%w: %w", ErrTemplates, err))
		}
		if h, ok := r.(interface{ Has(name string) bool }); ok {
			var missing []string
			for _, name := range site.Templates() {
				if !h.Has(name) {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				return newFatalStageError(StageLoadTemplates,
					fmt.Errorf("%w: missing %s", ErrTemplates, strings.Join(missing, ", ")))
			}
		}
		bs.Renderer = r
		return nil
	}
}

func stageLocateArticles(_ context.Context, bs *BuildState) error {
	paths, err := articles.Locate(bs.Config.Source.Directory, bs.Config.Source.Extension)
	if err != nil {
		return newFatalStageError(StageLocateArticles, fmt.Errorf("%w: %w", ErrLocate, err))
	}
	bs.Paths = paths
	bs.Report.Located = len(paths)
	slog.Info("Located articles", logfields.Path(bs.Config.Source.Directory), logfields.Count(len(paths)))
	return nil
}

func stageParseArticles(ctx context.Context, bs *BuildState) error {
	coll := articles.Build(ctx, bs.Paths,
		articles.WithWorkers(bs.Config.Build.Workers),
		articles.WithRecorder(bs.recorder))
	if err := ctx.Err(); err != nil {
		return newCanceledStageError(StageParseArticles, err)
	}
	bs.Collection = coll
	bs.Report.recordCollection(coll)
	if n := len(coll.Failures()); n > 0 {
		return newWarnStageError(StageParseArticles, fmt.Errorf("%w: %d skipped", ErrParseFailures, n))
	}
	return nil
}

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	out := bs.Config.Output.Directory
	if bs.Config.Output.Clean {
		if err := os.RemoveAll(out); err != nil {
			return newFatalStageError(StagePrepareOutput, fmt.Errorf("%w: clean %s: %w", ErrPrepareOutput, out, err))
		}
		slog.Debug("Cleaned output directory", logfields.Output(out))
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return newFatalStageError(StagePrepareOutput, fmt.Errorf("%w: create %s: %w", ErrPrepareOutput, out, err))
	}
	return nil
}

// stageCopyStatic copies each configured asset into the output root under its
// base name. Missing assets are warnings; copy failures are fatal.
func stageCopyStatic(_ context.Context, bs *BuildState) error {
	var missing []error
	for _, src := range bs.Config.Static.Paths {
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			missing = append(missing, fmt.Errorf("%w: %s", ErrStaticMissing, src))
			continue
		}
		dst := filepath.Join(bs.Config.Output.Directory, filepath.Base(src))
		if err := copy.Copy(src, dst); err != nil {
			return newFatalStageError(StageCopyStatic, fmt.Errorf("%w: %s: %w", ErrStaticCopy, src, err))
		}
		bs.Report.StaticCopied++
		slog.Debug("Copied static asset", logfields.Path(src), logfields.Output(dst))
	}
	if len(missing) > 0 {
		return newWarnStageError(StageCopyStatic, errors.Join(missing...))
	}
	return nil
}

func stageMaterialize(ctx context.Context, bs *BuildState) error {
	m := site.NewMaterializer(bs.Renderer,
		site.WithRecorder(bs.recorder),
		site.WithStatic(bs.Static))
	err := m.Materialize(ctx, bs.Collection, bs.Config.Output.Directory)
	bs.Report.PagesWritten = len(m.Written())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return newCanceledStageError(StageMaterialize, err)
	default:
		return newFatalStageError(StageMaterialize, fmt.Errorf("%w: %w", ErrMaterialize, err))
	}
}
