package articles

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/orgsite/internal/logfields"
)

// Selectors of the org-mode HTML export this package understands.
const (
	selectorTitle     = ".title"
	selectorTimestamp = ".timestamp"
	selectorTOC       = "#text-table-of-contents"
	selectorBody      = ".outline-2"
	selectorParagraph = "p"
	selectorFootnote  = ".footdef"
)

// Parse reads the document at path and extracts an Article. On failure the
// returned error is a *ParseFailure describing the first missing piece.
func Parse(path string) (*Article, error) {
	article, failure := parse(path)
	if failure != nil {
		slog.Warn("Skipping article",
			logfields.Path(path),
			logfields.Failure(failure.Kind.String()),
			logfields.Error(failure.Err))
		return nil, failure
	}
	slog.Debug("Parsed article",
		logfields.Path(path),
		logfields.Slug(article.Slug),
		logfields.Category(article.Category))
	return article, nil
}

func parse(path string) (*Article, *ParseFailure) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newFailure(FailureUnreadable, path, err)
	}
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, newFailure(FailureUnreadable, path, err)
	}
	doc := goquery.NewDocumentFromNode(root)

	title := strings.TrimSpace(doc.Find(selectorTitle).First().Text())
	if title == "" {
		return nil, newFailure(FailureMissingTitle, path, nil)
	}

	stamp := doc.Find(selectorTimestamp).First()
	if stamp.Length() == 0 {
		return nil, newFailure(FailureMissingDate, path, nil)
	}
	date, err := parseTimestamp(stamp.Text())
	if err != nil {
		return nil, newFailure(FailureDateFormat, path, err)
	}

	toc := doc.Find(selectorTOC).First()
	if toc.Length() == 0 {
		return nil, newFailure(FailureMissingTOC, path, nil)
	}
	tocHTML, err := goquery.OuterHtml(toc)
	if err != nil {
		return nil, newFailure(FailureUnreadable, path, fmt.Errorf("render toc: %w", err))
	}

	body := doc.Find(selectorBody).First()
	if body.Length() == 0 {
		return nil, newFailure(FailureMissingBody, path, nil)
	}
	bodyHTML, err := goquery.OuterHtml(body)
	if err != nil {
		return nil, newFailure(FailureUnreadable, path, fmt.Errorf("render body: %w", err))
	}

	para := body.Find(selectorParagraph).First()
	if para.Length() == 0 {
		return nil, newFailure(FailureMissingDescription, path, nil)
	}

	footnotes := make([]string, 0)
	var footErr error
	doc.Find(selectorFootnote).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			footErr = err
			return false
		}
		footnotes = append(footnotes, markup)
		return true
	})
	if footErr != nil {
		return nil, newFailure(FailureUnreadable, path, fmt.Errorf("render footnote: %w", footErr))
	}

	slug, ok := slugFromPath(path)
	if !ok {
		return nil, newFailure(FailureUndefinedSlug, path, nil)
	}

	return &Article{
		Title:                title,
		PublishDate:          date,
		FormattedPublishDate: formatPublishDate(date),
		TableOfContents:      tocHTML,
		Description:          strings.TrimSpace(para.Text()),
		Body:                 bodyHTML,
		Text:                 body.Text(),
		Slug:                 slug,
		Category:             filepath.Base(filepath.Dir(path)),
		SourcePath:           path,
		Footnotes:            footnotes,
	}, nil
}

// slugFromPath returns the file name of path without its extension.
func slugFromPath(path string) (string, bool) {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", false
	}
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return "", false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return "", false
	}
	return stem, true
}
