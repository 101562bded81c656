// Package cmd implements the command line interface.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shaishab316/bytes.js/size"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const exitCodeUsageError = 2

var verbose bool

// Root is the main command.
var Root = &cobra.Command{
	Use:   "bytesize value...",
	Short: "Convert between byte counts and human readable sizes",
	Long: `
Convert between byte counts and human readable sizes. Arguments that read as
plain numbers are formatted as sizes, everything else is parsed as a size
string, for example:

    $ bytesize 1536
    1.5KB
    $ bytesize 1.5KB
    1536

Use the parse and format subcommands for one direction only - format exposes
the rendering options.
`,
	SilenceUsage: true,
	RunE: func(command *cobra.Command, args []string) error {
		CheckArgs(1, -1, command, args)
		for _, arg := range args {
			out, err := size.Convert(coerce(arg))
			if err != nil {
				return err
			}
			fmt.Println(out)
		}
		return nil
	},
}

func init() {
	Root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// coerce turns a command line argument into the value Convert dispatches on:
// arguments that read as plain numbers format, everything else parses.
func coerce(arg string) interface{} {
	if n, err := strconv.ParseFloat(arg, 64); err == nil {
		return n
	}
	return arg
}

// CheckArgs checks there are enough arguments and prints a message if not.
// A negative maxArgs means any number of arguments is fine.
func CheckArgs(minArgs, maxArgs int, cmd *cobra.Command, args []string) {
	if len(args) < minArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments minimum: you provided %d non flag arguments: %q\n", cmd.Name(), minArgs, len(args), args)
		os.Exit(exitCodeUsageError)
	} else if maxArgs >= 0 && len(args) > maxArgs {
		_ = cmd.Usage()
		_, _ = fmt.Fprintf(os.Stderr, "Command %s needs %d arguments maximum: you provided %d non flag arguments: %q\n", cmd.Name(), maxArgs, len(args), args)
		os.Exit(exitCodeUsageError)
	}
}

// Main runs the CLI, interpreting flags and commands out of os.Args.
func Main() {
	if err := Root.Execute(); err != nil {
		logrus.Fatalf("Fatal error: %v", err)
	}
}
