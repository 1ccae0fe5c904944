package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/orgsite/cmd/orgsite/commands"
	ferrors "git.home.luguber.info/inful/orgsite/internal/foundation/errors"
	"git.home.luguber.info/inful/orgsite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{}
	parser := kong.Parse(cli,
		kong.Name("orgsite"),
		kong.Description("Static site generator for exported org-mode articles"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	err := parser.Run(global, cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
