// Package build provides the canonical build execution pipeline for orgsite.
//
// A build runs a fixed sequence of stages:
//
//	load_templates → locate_articles → parse_articles → prepare_output → copy_static → materialize
//
// Each stage either succeeds, records a warning (documents that failed to
// parse, missing static paths) and lets the build continue, or fails fatally
// and stops it. Context cancellation is checked before every stage. The
// outcome of every stage is collected in a Report, and fatal failures are
// returned as classified errors so the CLI can map them to exit codes.
package build
