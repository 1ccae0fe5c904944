package build

import "errors"

// Sentinel errors naming the stage a failure came from. They are always wrapped
// with the underlying cause.
var (
	ErrTemplates     = errors.New("orgsite: template load error")
	ErrLocate        = errors.New("orgsite: locate error")
	ErrParseFailures = errors.New("orgsite: documents failed to parse")
	ErrPrepareOutput = errors.New("orgsite: prepare output error")
	ErrStaticCopy    = errors.New("orgsite: static copy error")
	ErrStaticMissing = errors.New("orgsite: static path missing")
	ErrMaterialize   = errors.New("orgsite: materialize error")
)
