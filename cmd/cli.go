package cmd

import (
	"log"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI. It is separated from the main package
// to keep the commands usable from tests as well.
func Run(args []string) {
	if err := RunWithCommands(args); err != nil {
		// flags already prints user-friendly messages; just set exit code.
		log.Fatalf("%v", err)
	}
}

// RunWithCommands parses args and executes the selected sub-command.
func RunWithCommands(args []string) error {
	opts := &Options{}
	for _, arg := range args {
		opts.Init(arg)
	}
	// sub-commands read the global flags once parsing is done
	setRootOptions(opts)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}
