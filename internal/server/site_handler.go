package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const notFoundPage = "404.html"

// siteHandler serves files below root. Requests for anything the file server
// would answer with 404 get the site's 404.html instead.
type siteHandler struct {
	root  string
	files http.Handler
}

func newSiteHandler(root string) *siteHandler {
	return &siteHandler{root: root, files: http.FileServer(http.Dir(root))}
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if !h.exists(r.URL.Path) {
		h.notFound(w, r)
		return
	}
	if cc := cacheControl(r.URL.Path); cc != "" {
		w.Header().Set("Cache-Control", cc)
	}
	h.files.ServeHTTP(w, r)
}

// exists reports whether urlPath names a file, or a directory holding index.html.
func (h *siteHandler) exists(urlPath string) bool {
	full := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	index, err := os.Stat(filepath.Join(full, "index.html"))
	return err == nil && !index.IsDir()
}

func (h *siteHandler) notFound(w http.ResponseWriter, r *http.Request) {
	body, err := os.ReadFile(filepath.Join(h.root, notFoundPage))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusNotFound)
	if r.Method != http.MethodHead {
		_, _ = w.Write(body)
	}
}

// cacheControl returns the Cache-Control value for a request path.
func cacheControl(p string) string {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".css", ".js", ".woff", ".woff2", ".ttf", ".otf":
		return "public, max-age=31536000, immutable"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico":
		return "public, max-age=604800"
	case ".pdf":
		return "public, max-age=86400"
	case ".xml":
		return "public, max-age=3600"
	case ".html", "":
		return "no-cache, must-revalidate"
	default:
		return ""
	}
}
