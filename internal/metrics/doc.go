// Package metrics provides the observability hooks for orgsite builds.
//
// # Design
//
// Components depend on the Recorder interface and default to NoopRecorder, so
// no call site needs a nil check. The Prometheus implementation is activated by
// the CLI when a build is asked to export metrics (--metrics-textfile) or when
// the serve command exposes /metrics.
//
// # Usage Pattern
//
//	reg := prom.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	coll := articles.Build(ctx, paths, articles.WithRecorder(rec))
//	_ = metrics.WriteTextfile(reg, "orgsite.prom")
//
// Metric names share the "orgsite" namespace:
//
//   - stage_duration_seconds / stage_results_total: build pipeline stages
//   - build_duration_seconds / build_outcomes_total: whole runs
//   - parse_results_total{result}: one per located document ("ok" or failure kind)
//   - parse_duration_seconds: time spent parsing a single document
//   - parse_workers: size of the parse pool used by the last build
//   - pages_written_total{page}: files written by the materializer per logical page
package metrics
