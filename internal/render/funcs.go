package render

import (
	"bytes"
	"encoding/xml"
	htmltemplate "html/template"
	"strings"

	"github.com/google/uuid"
)

// funcMap is shared by html and text templates.
func funcMap() map[string]any {
	return map[string]any{
		"safeHTML":  safeHTML,
		"xmlEscape": xmlEscape,
		"feedGUID":  feedGUID,
		"join":      join,
		"navItem":   navItem,
	}
}

// navLink is the data of one navigation entry.
type navLink struct {
	Href   string
	Label  string
	Active bool
}

// navItem marks the entry whose href matches the page's nav_site_href.
func navItem(current, href, label string) navLink {
	return navLink{Href: href, Label: label, Active: current == href}
}

// safeHTML marks trusted markup (parsed article fragments) as HTML.
func safeHTML(s string) htmltemplate.HTML {
	// #nosec G203 -- article markup is produced by the site author's own exporter.
	return htmltemplate.HTML(s)
}

func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// feedGUID derives a stable identifier from an item link.
func feedGUID(link string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
}

func join(parts []string, sep string) string {
	return strings.Join(parts, sep)
}
