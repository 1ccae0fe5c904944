package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/orgsite/internal/articles"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
)

// LocateCmd implements the 'locate' command.
type LocateCmd struct {
	Source string `help:"Article source directory (overrides source.directory)"`
}

func (l *LocateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	if l.Source != "" {
		cfg.Source.Directory = l.Source
	}

	paths, err := articles.Locate(cfg.Source.Directory, cfg.Source.Extension)
	if err != nil {
		return ferrors.ConfigError("failed to locate articles").
			WithCause(err).
			WithContext("path", cfg.Source.Directory).
			Build()
	}

	tw := tabwriter.NewWriter(stdout(g), 0, 4, 2, ' ', 0)
	ok := 0
	for _, p := range paths {
		a, err := articles.Parse(p)
		var pf *articles.ParseFailure
		switch {
		case err == nil:
			ok++
			_, _ = fmt.Fprintf(tw, "%s\tok\t%s\t%s\n", p, a.Slug, a.PublishDate.Format("2006-01-02"))
		case errors.As(err, &pf):
			_, _ = fmt.Fprintf(tw, "%s\t%s\t\t\n", p, pf.Kind)
		default:
			_, _ = fmt.Fprintf(tw, "%s\terror\t\t\n", p)
		}
	}
	_ = tw.Flush()
	_, _ = fmt.Fprintf(stdout(g), "%d located, %d parsed, %d skipped\n", len(paths), ok, len(paths)-ok)
	return nil
}
