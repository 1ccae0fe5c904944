// Package render loads page templates and renders them by name.
//
// Templates are files named <name>.tmpl; the template name is the file path
// relative to the theme root without the .tmpl suffix, so blog/article.html.tmpl
// is rendered as "blog/article.html". Files below partials/ hold shared
// {{define}} blocks available to every HTML template. Names ending in .xml or
// .txt are executed with text/template, everything else with html/template.
package render
