package main

import (
	"os"

	"github.com/tonhe/graf/cmd"
)

func main() {
	args := os.Args[1:]
	cmd.SetupLogging()

	switch {
	case len(args) == 0:
		cmd.Execute([]string{"view", "-demo"})
	case cmd.IsSubcommand(args[0]) || args[0] == "-h" || args[0] == "--help":
		cmd.Execute(args)
	default:
		// bare file names and viewer flags open the viewer
		cmd.Execute(append([]string{"view"}, args...))
	}
}
