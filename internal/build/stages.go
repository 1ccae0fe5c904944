package build

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	"git.home.luguber.info/inful/orgsite/internal/config"
	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// StageName identifies a pipeline stage.
type StageName string

const (
	StageLoadTemplates  StageName = "load_templates"
	StageLocateArticles StageName = "locate_articles"
	StageParseArticles  StageName = "parse_articles"
	StagePrepareOutput  StageName = "prepare_output"
	StageCopyStatic     StageName = "copy_static"
	StageMaterialize    StageName = "materialize"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage with its name.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// StageErrorKind enumerates structured stage error categories.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying category and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}
func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}
func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// BuildState carries inputs and intermediate results across stages.
type BuildState struct {
	Config     *config.Config
	Static     *site.Static
	Renderer   site.Renderer
	Paths      []string
	Collection *articles.Collection
	Report     *Report
	recorder   metrics.Recorder
}

// runStages executes stages in order, recording timing and stopping on the first fatal error.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			se := newCanceledStageError(st.Name, err)
			bs.Report.recordStage(st.Name, 0, se, bs.recorder)
			return se
		}
		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)

		var se *StageError
		if err != nil && !errors.As(err, &se) {
			se = newFatalStageError(st.Name, err)
		}
		bs.Report.recordStage(st.Name, dur, se, bs.recorder)
		slog.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())))

		if se == nil {
			continue
		}
		if se.Kind == StageErrorWarning {
			slog.Warn("Stage completed with warnings", logfields.Stage(string(st.Name)), logfields.Error(se.Err))
			continue
		}
		return se
	}
	return nil
}
