package site

import (
	"errors"
	"fmt"
)

var (
	// ErrStaticInitialized is returned by InitStatic when the static context already exists.
	ErrStaticInitialized = errors.New("static site context already initialized")

	// ErrOutputRootMissing indicates the materializer was pointed at a missing output root.
	ErrOutputRootMissing = errors.New("output root does not exist")

	// ErrCreateDir marks WriteFile failures while creating parent directories.
	ErrCreateDir = errors.New("create directory")

	// ErrWrite marks WriteFile failures while writing or renaming the file.
	ErrWrite = errors.New("write file")

	// ErrUnsafeSlug indicates a slug that cannot be used as a single path segment.
	ErrUnsafeSlug = errors.New("slug is not a single path segment")
)

// Kind classifies a MaterializationError.
type Kind int

const (
	KindRender Kind = iota + 1
	KindCreateDir
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindCreateDir:
		return "create_dir"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MaterializationError aborts a Materialize run.
type MaterializationError struct {
	Kind Kind
	Page string // logical page name, empty for output root checks
	Path string // output file or directory involved
	Err  error
}

func (e *MaterializationError) Error() string {
	if e.Page == "" {
		return fmt.Sprintf("materialize %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("materialize page %s (%s): %s: %v", e.Page, e.Path, e.Kind, e.Err)
}

func (e *MaterializationError) Unwrap() error { return e.Err }
