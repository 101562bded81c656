package size

import (
	"math"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// sizeRegexp is the accepted grammar: optional sign, an integer or
// integer.integer mantissa (a decimal point needs digits on both sides), at
// most one space, then a unit token. No surrounding whitespace.
var sizeRegexp = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?) ?([A-Za-z]+)$`)

// Parse converts a size string such as "1.5GB" or "-512 kb" into a byte
// count. The result is rounded to the nearest integer with halves away from
// zero, so "1.0000005MB" lands on the far side of the tie. Any grammar
// violation, unknown unit or non-finite mantissa returns an error wrapping
// ErrMalformedInput.
func Parse(s string) (int64, error) {
	m := sizeRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.Wrapf(ErrMalformedInput, "parse %q", s)
	}
	mantissa, err := strconv.ParseFloat(m[2], 64)
	if err != nil || math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		return 0, errors.Wrapf(ErrMalformedInput, "parse %q: bad mantissa %q", s, m[2])
	}
	unit, err := ParseUnit(m[3])
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", s)
	}
	if m[1] == "-" {
		mantissa = -mantissa
	}
	return int64(math.Round(mantissa * float64(unit.Scale()))), nil
}
