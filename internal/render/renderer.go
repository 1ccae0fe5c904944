package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strings"
	texttemplate "text/template"
)

const (
	templateExt = ".tmpl"
	partialsDir = "partials/"
)

//go:embed theme
var themeFS embed.FS

// Renderer holds parsed templates keyed by name. It is safe for concurrent use.
type Renderer struct {
	html map[string]*htmltemplate.Template
	text map[string]*texttemplate.Template
}

// Default loads the theme embedded in the binary.
func Default() (*Renderer, error) {
	sub, err := fs.Sub(themeFS, "theme")
	if err != nil {
		return nil, fmt.Errorf("embedded theme: %w", err)
	}
	return New(sub)
}

// Dir loads a theme from a directory on disk.
func Dir(dir string) (*Renderer, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s: not a directory", dir)
	}
	return New(os.DirFS(dir))
}

// New parses every *.tmpl file in fsys.
func New(fsys fs.FS) (*Renderer, error) {
	pages := map[string]string{}
	partials := map[string]string{}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, templateExt) {
			return nil
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		name := strings.TrimSuffix(p, templateExt)
		if strings.HasPrefix(p, partialsDir) {
			partials[name] = string(src)
		} else {
			pages[name] = string(src)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	if len(pages) == 0 {
		return nil, ErrNoTemplates
	}

	r := &Renderer{
		html: make(map[string]*htmltemplate.Template),
		text: make(map[string]*texttemplate.Template),
	}
	partialNames := slices.Sorted(maps.Keys(partials))
	for name, src := range pages {
		if usesText(name) {
			t, err := texttemplate.New(name).Funcs(funcMap()).Option("missingkey=zero").Parse(src)
			if err != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, err)
			}
			r.text[name] = t
			continue
		}
		t := htmltemplate.New(name).Funcs(funcMap()).Option("missingkey=zero")
		for _, pn := range partialNames {
			if _, err := t.New(pn).Parse(partials[pn]); err != nil {
				return nil, fmt.Errorf("parse partial %s: %w", pn, err)
			}
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.html[name] = t
	}
	return r, nil
}

// usesText reports whether name is executed by text/template.
func usesText(name string) bool {
	switch path.Ext(name) {
	case ".xml", ".txt":
		return true
	default:
		return false
	}
}

// Has reports whether a template called name was loaded.
func (r *Renderer) Has(name string) bool {
	_, okHTML := r.html[name]
	_, okText := r.text[name]
	return okHTML || okText
}

// Names returns every loaded template name in ascending order.
func (r *Renderer) Names() []string {
	names := slices.Collect(maps.Keys(r.html))
	names = slices.AppendSeq(names, maps.Keys(r.text))
	slices.Sort(names)
	return names
}

// Render executes the named template with data.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if t, ok := r.html[name]; ok {
		err = t.Execute(&buf, data)
	} else if t, ok := r.text[name]; ok {
		err = t.Execute(&buf, data)
	} else {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
