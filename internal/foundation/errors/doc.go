// Package errors provides the classified error primitives used for run-level failures in orgsite.
//
// Per-document parse failures never reach this package: they are values owned by the
// articles package. Anything that aborts a run (bad configuration, a missing source root,
// a template that fails to render, a write that fails) is wrapped into a ClassifiedError so
// the CLI can pick an exit code and print the cause chain.
//
// Key features:
//   - ErrorCategory: Broad error classification (config, filesystem, render, build, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and cause-chain formatting
//
// Example usage:
//
//	err := errors.RenderError("render page").
//		WithCause(cause).
//		WithContext("page", "home").
//		WithContext("template", "index.html").
//		Build()
package errors
