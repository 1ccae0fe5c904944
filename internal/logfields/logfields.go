package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeySlug       = "slug"
	KeyCategory   = "category"
	KeyPage       = "page"
	KeyTemplate   = "template"
	KeyOutput     = "output"
	KeyFailure    = "failure"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyWorkers    = "workers"
	KeyAddr       = "addr"
	KeyMethod     = "method"
	KeyStatus     = "status"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Template(name string) slog.Attr  { return slog.String(KeyTemplate, name) }
func Output(p string) slog.Attr       { return slog.String(KeyOutput, p) }
func Failure(kind string) slog.Attr   { return slog.String(KeyFailure, kind) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Workers(n int) slog.Attr         { return slog.Int(KeyWorkers, n) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
