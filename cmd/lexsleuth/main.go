package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

var version = "dev"

// verbose points at the root -v/--verbose flag. go-flags' Commander
// support invokes a command's Execute synchronously from inside
// Parse(), before main regains control, so each command reads this
// pointer itself at the top of Execute rather than receiving the value
// as a parameter.
var verbose *bool

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging"`
	Version bool `long:"version" description:"Show this version"`

	Classify classifyCmd `command:"classify" description:"Classify one or more files by source language"`
	Train    trainCmd    `command:"train" description:"Train a model from labeled sample directories"`
}

func main() {
	var opts options
	verbose = &opts.Verbose

	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] <command>"

	args := os.Args[1:]
	if shouldDefaultToClassify(args) {
		args = append([]string{"classify"}, args...)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}
}

// shouldDefaultToClassify mirrors the original CLI's behavior of
// treating classify as the default subcommand: when the first
// non-option argument isn't a known command name, the whole argument
// list is assumed to be a bare list of files (and classify's own
// flags) and gets routed to classify rather than rejected as an
// unrecognized command.
func shouldDefaultToClassify(args []string) bool {
	for _, a := range args {
		switch a {
		case "-h", "--help", "--version":
			return false
		}
		if strings.HasPrefix(a, "-") {
			continue
		}
		return a != "classify" && a != "train"
	}
	return false
}
