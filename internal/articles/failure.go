package articles

import "fmt"

// FailureKind names the reason a document was rejected.
type FailureKind int

const (
	FailureUnreadable FailureKind = iota + 1
	FailureMissingTitle
	FailureMissingDate
	FailureDateFormat
	FailureMissingTOC
	FailureMissingBody
	FailureMissingDescription
	FailureUndefinedSlug
)

var failureNames = map[FailureKind]string{
	FailureUnreadable:         "unreadable",
	FailureMissingTitle:       "missing_title",
	FailureMissingDate:        "missing_date",
	FailureDateFormat:         "date_format",
	FailureMissingTOC:         "missing_toc",
	FailureMissingBody:        "missing_body",
	FailureMissingDescription: "missing_description",
	FailureUndefinedSlug:      "undefined_slug",
}

// String returns the snake_case label used in logs and metrics.
func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return fmt.Sprintf("failure(%d)", int(k))
}

// FailureKinds returns every kind in declaration order.
func FailureKinds() []FailureKind {
	return []FailureKind{
		FailureUnreadable,
		FailureMissingTitle,
		FailureMissingDate,
		FailureDateFormat,
		FailureMissingTOC,
		FailureMissingBody,
		FailureMissingDescription,
		FailureUndefinedSlug,
	}
}

// ParseFailure reports why a document could not become an Article.
type ParseFailure struct {
	Kind FailureKind
	Path string
	Err  error
}

func (f *ParseFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", f.Path, f.Kind, f.Err)
	}
	return fmt.Sprintf("parse %s: %s", f.Path, f.Kind)
}

func (f *ParseFailure) Unwrap() error { return f.Err }

func newFailure(kind FailureKind, path string, err error) *ParseFailure {
	return &ParseFailure{Kind: kind, Path: path, Err: err}
}
