// Package errors provides sentinel errors for article ingestion.
// Locator failures are run-level; timestamp errors are carried inside a ParseFailure.
package errors

import "errors"

var (
	// ErrSourceRootMissing indicates the configured source root does not exist.
	ErrSourceRootMissing = errors.New("source root not found")

	// ErrSourceRootNotDir indicates the configured source root is not a directory.
	ErrSourceRootNotDir = errors.New("source root is not a directory")

	// ErrSourceRootUnreadable indicates listing the source root or a category failed.
	ErrSourceRootUnreadable = errors.New("source root unreadable")

	// ErrTimestampPattern indicates a timestamp does not look like <YYYY-MM-DD Ddd>.
	ErrTimestampPattern = errors.New("timestamp does not match <YYYY-MM-DD Ddd>")

	// ErrInvalidCalendarDate indicates the timestamp names a date that does not exist.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")

	// ErrWeekdayMismatch indicates the weekday abbreviation disagrees with the date.
	ErrWeekdayMismatch = errors.New("weekday does not match date")
)
