package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/TableScout/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("TableScout"), kong.Description("TableScout serves the restaurant discovery API."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
