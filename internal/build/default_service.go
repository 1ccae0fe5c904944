package build

import (
	"context"
	"errors"
	"log/slog"
	"time"

	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
	"git.home.luguber.info/inful/orgsite/internal/logfields"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
	"git.home.luguber.info/inful/orgsite/internal/render"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// DefaultBuildService is the standard implementation of BuildService.
// It orchestrates the full pipeline: templates → locate → parse → output → static → pages.
type DefaultBuildService struct {
	rendererFactory RendererFactory
	recorder        metrics.Recorder
}

// NewBuildService creates a new DefaultBuildService using the built-in theme loader.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		rendererFactory: defaultRendererFactory,
		recorder:        metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder for build observability.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	s.recorder = metrics.OrNoop(r)
	return s
}

// WithRendererFactory allows injecting a custom template loader (for testing).
func (s *DefaultBuildService) WithRendererFactory(f RendererFactory) *DefaultBuildService {
	if f != nil {
		s.rendererFactory = f
	}
	return s
}

func defaultRendererFactory(dir string) (site.Renderer, error) {
	var (
		r   *render.Renderer
		err error
	)
	if dir == "" {
		r, err = render.Default()
	} else {
		r, err = render.Dir(dir)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Run executes the complete build pipeline. A non-nil error is always a
// *ClassifiedError; the result is returned in every case.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	startTime := time.Now()
	result := &BuildResult{StartTime: startTime}

	if req.Config == nil {
		result.Status = BuildStatusFailed
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(startTime)
		s.recorder.IncBuildOutcome(metrics.BuildOutcomeFailed)
		return result, ferrors.ConfigError("config required").Build()
	}
	cfg := req.Config
	result.OutputPath = cfg.Output.Directory

	report := newReport(cfg.Source.Directory, cfg.Output.Directory)
	bs := &BuildState{
		Config:   cfg,
		Static:   req.Static,
		Report:   report,
		recorder: s.recorder,
	}
	stages := []StageDef{
		{StageLoadTemplates, stageLoadTemplates(s.rendererFactory)},
		{StageLocateArticles, stageLocateArticles},
		{StageParseArticles, stageParseArticles},
		{StagePrepareOutput, stagePrepareOutput},
		{StageCopyStatic, stageCopyStatic},
		{StageMaterialize, stageMaterialize},
	}

	slog.Info("Starting build",
		logfields.Path(cfg.Source.Directory),
		logfields.Output(cfg.Output.Directory))
	runErr := runStages(ctx, bs, stages)

	report.finish()
	report.deriveOutcome()

	result.Report = report
	result.Status = statusFromOutcome(report.Outcome)
	result.Articles = report.Articles
	result.Failures = len(report.ParseFailures)
	result.PagesWritten = report.PagesWritten
	result.EndTime = report.End
	result.Duration = result.EndTime.Sub(startTime)

	s.recorder.ObserveBuildDuration(result.Duration)
	s.recorder.IncBuildOutcome(outcomeLabel(report.Outcome))

	if cfg.Build.ReportFile != "" {
		if err := report.Persist(cfg.Build.ReportFile); err != nil {
			slog.Warn("Failed to persist build report", logfields.Path(cfg.Build.ReportFile), logfields.Error(err))
		}
	}

	if runErr != nil {
		var se *StageError
		if !errors.As(runErr, &se) {
			se = newFatalStageError("", runErr)
		}
		slog.Error("Build failed", logfields.Stage(string(se.Stage)), logfields.Error(se.Err))
		return result, classify(se)
	}

	slog.Info("Build complete", slog.String("summary", report.Summary()))
	return result, nil
}

func outcomeLabel(o BuildOutcome) metrics.BuildOutcomeLabel {
	switch o {
	case OutcomeSuccess:
		return metrics.BuildOutcomeSuccess
	case OutcomeWarning:
		return metrics.BuildOutcomeWarning
	case OutcomeCanceled:
		return metrics.BuildOutcomeCanceled
	default:
		return metrics.BuildOutcomeFailed
	}
}
