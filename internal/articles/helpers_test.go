package articles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// docParts describes an org export; zero values drop the matching element.
type docParts struct {
	Title     string
	Timestamp string
	TOC       bool
	Body      bool
	Paragraph string
	Footnotes []string
}

func fullDoc(title, stamp string) docParts {
	return docParts{
		Title:     title,
		Timestamp: stamp,
		TOC:       true,
		Body:      true,
		Paragraph: "First paragraph of " + title + ".",
	}
}

func (p docParts) render() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head><title>export</title></head>\n<body>\n<div id=\"content\">\n")
	if p.Title != "" {
		b.WriteString(`<h1 class="title">` + p.Title + "</h1>\n")
	}
	if p.TOC {
		b.WriteString(`<div id="table-of-contents"><h2>Table of Contents</h2><div id="text-table-of-contents"><ul><li><a href="#s1">1. Section</a></li></ul></div></div>` + "\n")
	}
	if p.Timestamp != "" {
		b.WriteString(`<p><span class="timestamp-wrapper"><span class="timestamp">` + htmlEscape(p.Timestamp) + "</span></span></p>\n")
	}
	if p.Body {
		b.WriteString(`<div id="outline-container-s1" class="outline-2"><h2 id="s1">Section</h2><div class="outline-text-2">`)
		if p.Paragraph != "" {
			b.WriteString("<p>" + p.Paragraph + "</p>")
		}
		b.WriteString("</div></div>\n")
	}
	for i, fn := range p.Footnotes {
		b.WriteString(`<div class="footdef"><sup>` + string(rune('1'+i)) + `</sup> <p class="footpara">` + fn + "</p></div>\n")
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

func htmlEscape(s string) string {
	return strings.NewReplacer("<", "&lt;", ">", "&gt;").Replace(s)
}

// writeDoc writes parts to root/category/name and returns the path.
func writeDoc(t *testing.T, root, category, name string, parts docParts) string {
	t.Helper()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(parts.render()), 0o600))
	return path
}
