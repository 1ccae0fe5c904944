package commands

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/orgsite/internal/config"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = config.DefaultPath
	}
	if err := config.Init(path, i.Force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return ferrors.ValidationError("refusing to overwrite configuration").WithCause(err).Build()
		}
		return ferrors.FileSystemError("failed to write configuration").WithCause(err).Build()
	}
	_, _ = fmt.Fprintf(stdout(g), "Wrote %s\n", path)
	return nil
}
