package build

import (
	"errors"

	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// classify converts a fatal or canceled stage error into a ClassifiedError
// so the CLI can pick an exit code.
func classify(se *StageError) *ferrors.ClassifiedError {
	if se.Kind == StageErrorCanceled {
		return ferrors.RuntimeError("build canceled").
			WithCause(se).
			WithContext("stage", string(se.Stage)).
			Build()
	}

	var b *ferrors.ErrorBuilder
	switch se.Stage {
	case StageLoadTemplates:
		b = ferrors.RenderError("failed to load templates").WithCause(se.Err)
	case StageLocateArticles:
		b = ferrors.ConfigError("failed to locate articles").WithCause(se.Err)
	case StagePrepareOutput:
		b = ferrors.FileSystemError("failed to prepare output directory").WithCause(se.Err)
	case StageCopyStatic:
		b = ferrors.FileSystemError("failed to copy static assets").WithCause(se.Err)
	case StageParseArticles:
		b = ferrors.BuildError("failed to parse articles").WithCause(se.Err)
	case StageMaterialize:
		b = classifyMaterialize(se.Err)
	default:
		b = ferrors.InternalError("unknown build stage").WithCause(se.Err)
	}
	return b.WithContext("stage", string(se.Stage)).Build()
}

func classifyMaterialize(err error) *ferrors.ErrorBuilder {
	var me *site.MaterializationError
	if !errors.As(err, &me) {
		return ferrors.BuildError("failed to materialize site").WithCause(err)
	}
	b := ferrors.FileSystemError("failed to materialize site")
	if me.Kind == site.KindRender {
		b = ferrors.RenderError("failed to materialize site")
	}
	b = b.WithCause(err).
		WithContext("kind", me.Kind.String()).
		WithContext("path", me.Path)
	if me.Page != "" {
		b = b.WithContext("page", me.Page)
	}
	return b
}
