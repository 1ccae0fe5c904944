package render

import "errors"

var (
	// ErrTemplateNotFound indicates Render was asked for a name that was never loaded.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNoTemplates indicates a theme directory without any *.tmpl file.
	ErrNoTemplates = errors.New("no templates found")
)
