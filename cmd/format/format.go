// Package format provides the format command.
package format

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shaishab316/bytes.js/cmd"
	"github.com/shaishab316/bytes.js/size"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	decimalPlaces      = 2
	fixedDecimals      = false
	thousandsSeparator = ""
	unit               = size.UnitAuto
	unitSeparator      = ""
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmdFlags := commandDefinition.Flags()
	cmdFlags.IntVarP(&decimalPlaces, "decimal-places", "p", 2, "Number of digits after the decimal point")
	cmdFlags.BoolVarP(&fixedDecimals, "fixed-decimals", "f", false, "Keep trailing zero decimals")
	cmdFlags.StringVarP(&thousandsSeparator, "thousands-separator", "t", "", "Separator between three-digit groups of the integer part")
	cmdFlags.VarP(&unit, "unit", "u", "Force a unit (B, KB, MB, GB, TB, PB) instead of auto-selecting")
	cmdFlags.StringVarP(&unitSeparator, "unit-separator", "s", "", "Separator between the number and the unit")
}

var commandDefinition = &cobra.Command{
	Use:   "format bytes...",
	Short: `Format byte counts as human readable sizes.`,
	Long: `
Format one or more byte counts as human readable sizes, one per line. By
default the largest unit keeping the value at or above 1 is selected and up
to two decimal places are shown with trailing zeros stripped, for example:

    $ bytesize format 1073741824
    1GB
    $ bytesize format --fixed-decimals --unit-separator " " 1073741824
    1.00 GB
`,
	RunE: func(command *cobra.Command, args []string) error {
		cmd.CheckArgs(1, -1, command, args)
		for _, arg := range args {
			n, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return errors.Wrapf(err, "format %q", arg)
			}
			out, err := size.Format(n,
				size.WithDecimalPlaces(decimalPlaces),
				size.WithFixedDecimals(fixedDecimals),
				size.WithThousandsSeparator(thousandsSeparator),
				size.WithUnit(unit),
				size.WithUnitSeparator(unitSeparator),
			)
			if err != nil {
				return err
			}
			logrus.Debugf("formatted %v as %q", n, out)
			fmt.Println(out)
		}
		return nil
	},
}
