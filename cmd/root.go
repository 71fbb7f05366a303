package cmd

import (
	"fmt"
	"os"
)

// Version is the released version of graf.
const Version = "0.1.0"

// knownSubcommands is the set of CLI subcommands. Anything else is treated
// as a series file to open in the viewer.
var knownSubcommands = map[string]bool{
	"render":  true,
	"watch":   true,
	"view":    true,
	"demo":    true,
	"config":  true,
	"themes":  true,
	"version": true,
	"help":    true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate CLI subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		return
	}

	switch args[0] {
	case "render":
		renderCmd(args[1:])
	case "watch":
		watchCmd(args[1:])
	case "view":
		viewCmd(args[1:])
	case "demo":
		demoCmd(args[1:])
	case "config":
		configCmd(args[1:])
	case "themes":
		themesCmd()
	case "version":
		fmt.Printf("graf v%s\n", Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`graf - bar and line charts from numeric series

Usage:
  graf                      Launch the viewer with live random data
  graf FILE                 Open a series file in the viewer
  graf render [flags] FILE  Draw a series to PNG, SVG or the terminal
  graf watch -o OUT FILE    Redraw OUT whenever FILE changes
  graf view [-watch] FILE   Open a series file in the viewer
  graf view -demo           Open the viewer with live random data
  graf demo [flags] OUT     Write a random series file
  graf config <cmd>         Manage configuration
  graf themes               List available themes
  graf version              Show version
  graf help                 Show this help

Render Flags:
  -o OUT          Output path (.png, .svg) or - for the terminal; repeatable
  -kind KIND      bar or line
  -steps N        Number of gridlines above the x axis
  -grid           Extend gridlines and separators across the plot
  -width PX       Image width
  -height PX      Image height

Series Files (.toml, .yaml, .yml):
  title  = "Requests"
  values = [3.5, 1.0, 4.0]
  labels = ["mon", "tue", "wed"]

Config Commands:
  graf config path                 Show config file path
  graf config show                 Print the current config
  graf config theme NAME           Set default theme
  graf config kind bar|line        Set default chart kind
  graf config steps N              Set default gridline count
  graf config grid on|off          Extend gridlines by default`)
}
