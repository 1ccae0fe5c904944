package articles

import "time"

// Article is a single parsed document.
type Article struct {
	Title                string
	PublishDate          time.Time // UTC midnight of the timestamp date
	FormattedPublishDate string    // "Wed, 06 Feb 2019 00:00:00 +0000"
	TableOfContents      string    // outer markup of #text-table-of-contents
	Description          string    // text of the first paragraph of the body
	Body                 string    // outer markup of the first .outline-2
	Text                 string    // plain text of the body
	Slug                 string
	Category             string
	SourcePath           string
	Footnotes            []string // outer markup of each .footdef, document order
}
