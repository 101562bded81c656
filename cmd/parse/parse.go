// Package parse provides the parse command.
package parse

import (
	"fmt"

	"github.com/shaishab316/bytes.js/cmd"
	"github.com/shaishab316/bytes.js/size"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "parse size...",
	Short: `Parse human readable sizes into byte counts.`,
	Long: `
Parse one or more size strings such as "1.5GB" or "512 kb" and print the
equivalent byte count for each, one per line. Units are powers of 1024 and
case-insensitive: B, KB, MB, GB, TB and PB.
`,
	RunE: func(command *cobra.Command, args []string) error {
		cmd.CheckArgs(1, -1, command, args)
		for _, arg := range args {
			n, err := size.Parse(arg)
			if err != nil {
				return err
			}
			logrus.Debugf("parsed %q as %d bytes", arg, n)
			fmt.Println(n)
		}
		return nil
	},
}
