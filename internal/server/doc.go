// Package server serves a materialized site directory over HTTP for local
// preview. Unknown paths fall back to the site's own 404.html; /healthz and
// /metrics are answered by the server itself. Without Options.Registry,
// /metrics exposes the Prometheus default registry, which carries only the Go
// runtime and process collectors.
package server
