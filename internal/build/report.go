package build

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	"git.home.luguber.info/inful/orgsite/internal/metrics"
	"git.home.luguber.info/inful/orgsite/internal/site"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// StageCount aggregates counts of outcomes for a stage.
type StageCount struct {
	Success  int `json:"success"`
	Warning  int `json:"warning"`
	Fatal    int `json:"fatal"`
	Canceled int `json:"canceled"`
}

// ParseFailureEntry is one rejected document.
type ParseFailureEntry struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Report captures high-level metrics about a site generation run.
type Report struct {
	SchemaVersion   int
	Start           time.Time
	End             time.Time
	SourceDir       string
	OutputDir       string
	Located         int // documents found by the locator
	Articles        int // distinct slugs
	Entries         int // parsed documents, duplicates included
	ParseFailures   []ParseFailureEntry
	PagesWritten    int
	StaticCopied    int
	Errors          []error // fatal errors causing build abortion (at most one)
	Warnings        []error
	StageDurations  map[StageName]time.Duration
	StageErrorKinds map[StageName]StageErrorKind
	StageCounts     map[StageName]StageCount
	Outcome         BuildOutcome
}

func newReport(sourceDir, outputDir string) *Report {
	return &Report{
		SchemaVersion:   1,
		Start:           time.Now(),
		SourceDir:       sourceDir,
		OutputDir:       outputDir,
		StageDurations:  make(map[StageName]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
		StageCounts:     make(map[StageName]StageCount),
	}
}

// recordStage stores the stage timing and classification and forwards both to rec.
func (r *Report) recordStage(stage StageName, d time.Duration, se *StageError, rec metrics.Recorder) {
	r.StageDurations[stage] = d
	rec.ObserveStageDuration(string(stage), d)

	sc := r.StageCounts[stage]
	result := metrics.ResultSuccess
	if se == nil {
		sc.Success++
	} else {
		r.StageErrorKinds[stage] = se.Kind
		switch se.Kind {
		case StageErrorWarning:
			sc.Warning++
			result = metrics.ResultWarning
			r.Warnings = append(r.Warnings, se)
		case StageErrorCanceled:
			sc.Canceled++
			result = metrics.ResultCanceled
			r.Errors = append(r.Errors, se)
		default:
			sc.Fatal++
			result = metrics.ResultFatal
			r.Errors = append(r.Errors, se)
		}
	}
	r.StageCounts[stage] = sc
	rec.IncStageResult(string(stage), result)
}

func (r *Report) recordCollection(c *articles.Collection) {
	r.Articles = c.Len()
	r.Entries = len(c.Articles())
	for _, f := range c.Failures() {
		r.ParseFailures = append(r.ParseFailures, ParseFailureEntry{
			Path:    f.Path,
			Kind:    f.Kind.String(),
			Message: f.Error(),
		})
	}
}

func (r *Report) finish() { r.End = time.Now() }

// deriveOutcome sets the Outcome field based on recorded errors/warnings.
func (r *Report) deriveOutcome() {
	if len(r.Errors) > 0 {
		for _, e := range r.Errors {
			var se *StageError
			if errors.As(e, &se) && se.Kind == StageErrorCanceled {
				r.Outcome = OutcomeCanceled
				return
			}
		}
		r.Outcome = OutcomeFailed
		return
	}
	if len(r.Warnings) > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	dur := r.End.Sub(r.Start)
	return fmt.Sprintf("located=%d articles=%d failures=%d pages=%d static=%d duration=%s errors=%d warnings=%d outcome=%s",
		r.Located, r.Articles, len(r.ParseFailures), r.PagesWritten, r.StaticCopied,
		dur.Truncate(time.Millisecond), len(r.Errors), len(r.Warnings), r.Outcome)
}

// Persist writes the report as indented JSON to path atomically.
func (r *Report) Persist(path string) error {
	if r.End.IsZero() {
		r.finish()
		r.deriveOutcome()
	}
	data, err := json.MarshalIndent(r.serializable(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	if err := site.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// reportJSON mirrors Report with string errors and string-keyed maps.
type reportJSON struct {
	SchemaVersion   int                   `json:"schema_version"`
	Start           time.Time             `json:"start"`
	End             time.Time             `json:"end"`
	DurationMS      int64                 `json:"duration_ms"`
	SourceDir       string                `json:"source_dir"`
	OutputDir       string                `json:"output_dir"`
	Located         int                   `json:"located"`
	Articles        int                   `json:"articles"`
	Entries         int                   `json:"entries"`
	ParseFailures   []ParseFailureEntry   `json:"parse_failures"`
	PagesWritten    int                   `json:"pages_written"`
	StaticCopied    int                   `json:"static_copied"`
	Errors          []string              `json:"errors"`
	Warnings        []string              `json:"warnings"`
	StageDurations  map[string]int64      `json:"stage_durations_ms"`
	StageErrorKinds map[string]string     `json:"stage_error_kinds"`
	StageCounts     map[string]StageCount `json:"stage_counts"`
	Outcome         string                `json:"outcome"`
}

func (r *Report) serializable() reportJSON {
	out := reportJSON{
		SchemaVersion:   r.SchemaVersion,
		Start:           r.Start,
		End:             r.End,
		DurationMS:      r.End.Sub(r.Start).Milliseconds(),
		SourceDir:       r.SourceDir,
		OutputDir:       r.OutputDir,
		Located:         r.Located,
		Articles:        r.Articles,
		Entries:         r.Entries,
		ParseFailures:   r.ParseFailures,
		PagesWritten:    r.PagesWritten,
		StaticCopied:    r.StaticCopied,
		Errors:          make([]string, len(r.Errors)),
		Warnings:        make([]string, len(r.Warnings)),
		StageDurations:  make(map[string]int64, len(r.StageDurations)),
		StageErrorKinds: make(map[string]string, len(r.StageErrorKinds)),
		StageCounts:     make(map[string]StageCount, len(r.StageCounts)),
		Outcome:         string(r.Outcome),
	}
	if out.ParseFailures == nil {
		out.ParseFailures = []ParseFailureEntry{}
	}
	for i, e := range r.Errors {
		out.Errors[i] = e.Error()
	}
	for i, w := range r.Warnings {
		out.Warnings[i] = w.Error()
	}
	for k, v := range r.StageDurations {
		out.StageDurations[string(k)] = v.Milliseconds()
	}
	for k, v := range r.StageErrorKinds {
		out.StageErrorKinds[string(k)] = string(v)
	}
	for k, v := range r.StageCounts {
		out.StageCounts[string(k)] = v
	}
	return out
}
