package size

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unit is one of the six supported byte units. The zero value, UnitAuto,
// means "pick the largest unit that fits" when used in format options.
type Unit int

// Supported units in ascending order of scale.
const (
	UnitAuto Unit = iota
	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
)

var unitLabels = []string{
	UnitAuto: "auto",
	Byte:     "B",
	Kilobyte: "KB",
	Megabyte: "MB",
	Gigabyte: "GB",
	Terabyte: "TB",
	Petabyte: "PB",
}

var unitsByToken = map[string]Unit{
	"b":  Byte,
	"kb": Kilobyte,
	"mb": Megabyte,
	"gb": Gigabyte,
	"tb": Terabyte,
	"pb": Petabyte,
}

// Scale returns the number of bytes in one u, an exact power of 1024.
// u must be one of the six units - Scale panics on UnitAuto or an out of
// range value.
func (u Unit) Scale() int64 {
	if u < Byte || u > Petabyte {
		panic("size: Scale called on invalid unit " + u.String())
	}
	return 1 << (10 * uint(u-Byte))
}

// String returns the canonical uppercase label for the unit (B, KB, MB, GB,
// TB, PB).
func (u Unit) String() string {
	if u < UnitAuto || u > Petabyte {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitLabels[u]
}

// ParseUnit looks up a unit token case-insensitively, so "kb", "KB" and "Kb"
// all name the same unit.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitsByToken[strings.ToLower(s)]; ok {
		return u, nil
	}
	return UnitAuto, errors.Wrapf(ErrMalformedInput, "unknown unit %q", s)
}

// Set a Unit from a string, implementing pflag.Value.
func (u *Unit) Set(s string) error {
	parsed, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Type of the value
func (u *Unit) Type() string {
	return "Unit"
}
