// Package site materializes an article collection into a static website.
//
// The set of logical pages lives in a data table (Pages). Each entry names the
// template to render, the navigation href and title given to the template, and
// the output path relative to the output root. One entry is expanded once per
// article slug. Pages are rendered through a Renderer and written atomically
// with WriteFile; the first failure stops the run with a *MaterializationError.
package site
