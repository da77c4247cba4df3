package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/pass-alert/commands"
)

func main() {
	parser := flags.NewParser(&commands.PassAlert, flags.HelpFlag|flags.PrintErrors)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}
}
