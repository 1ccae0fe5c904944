// Package articles turns a tree of exported org-mode HTML documents into an
// ordered, slug-indexed Collection.
//
// The tree has one directory per category directly below the source root:
//
//	<root>/<category>/<slug>.html
//
// Locate lists candidate documents, Parse extracts a single Article (or a
// *ParseFailure naming what was missing) and Build parses a whole listing on a
// bounded worker pool. A document that fails to parse is logged and excluded;
// it never aborts a build.
package articles
