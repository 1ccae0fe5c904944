package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/orgsite/internal/config"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// BuildService is the canonical interface for executing site builds.
type BuildService interface {
	// Run executes the complete pipeline and returns the outcome together with
	// any fatal error, classified for the CLI.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// BuildRequest contains all inputs required to execute a build.
type BuildRequest struct {
	// Config is the loaded configuration with CLI overrides applied.
	Config *config.Config

	// Static is the page context base. Nil uses site.StaticContext, falling
	// back to the built-in defaults merged with Config.Site.
	Static *site.Static
}

// BuildResult contains the outcome of a build execution.
type BuildResult struct {
	Status       BuildStatus
	Report       *Report
	OutputPath   string
	Articles     int // distinct slugs
	Failures     int // documents rejected by the parser
	PagesWritten int
	Duration     time.Duration
	StartTime    time.Time
	EndTime      time.Time
}

// BuildStatus represents the outcome of a build execution.
type BuildStatus string

const (
	// BuildStatusSuccess indicates every stage succeeded.
	BuildStatusSuccess BuildStatus = "success"

	// BuildStatusWarning indicates the site was written but some input was skipped.
	BuildStatusWarning BuildStatus = "warning"

	// BuildStatusFailed indicates a fatal stage error.
	BuildStatusFailed BuildStatus = "failed"

	// BuildStatusCancelled indicates the context was canceled.
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess returns true if the site was fully written.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess || s == BuildStatusWarning
}

func statusFromOutcome(o BuildOutcome) BuildStatus {
	switch o {
	case OutcomeSuccess:
		return BuildStatusSuccess
	case OutcomeWarning:
		return BuildStatusWarning
	case OutcomeCanceled:
		return BuildStatusCancelled
	default:
		return BuildStatusFailed
	}
}
