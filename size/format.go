package size

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type formatOptions struct {
	decimalPlaces int
	fixedDecimals bool
	thousandsSep  string
	unit          Unit
	unitSep       string
}

// FormatOption adjusts how Format renders a byte count.
type FormatOption func(*formatOptions)

// WithDecimalPlaces sets how many digits are rendered after the decimal
// point. The default is 2. Negative values are treated as 0.
func WithDecimalPlaces(n int) FormatOption {
	return func(o *formatOptions) {
		if n < 0 {
			n = 0
		}
		o.decimalPlaces = n
	}
}

// WithFixedDecimals keeps trailing zero decimals instead of stripping them,
// so 1024 renders as "1.00KB" rather than "1KB". With zero decimal places no
// decimal point is emitted either way.
func WithFixedDecimals(fixed bool) FormatOption {
	return func(o *formatOptions) {
		o.fixedDecimals = fixed
	}
}

// WithThousandsSeparator inserts sep between every group of three digits in
// the integer part of the rendered number. The fraction and the sign are
// never grouped.
func WithThousandsSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.thousandsSep = sep
	}
}

// WithUnit forces a unit instead of auto-selecting, regardless of magnitude,
// so 2 bytes can render as "0.00KB".
func WithUnit(u Unit) FormatOption {
	return func(o *formatOptions) {
		o.unit = u
	}
}

// WithUnitSeparator inserts sep between the number and the unit label.
func WithUnitSeparator(sep string) FormatOption {
	return func(o *formatOptions) {
		o.unitSep = sep
	}
}

// Format renders a byte count in a human readable unit. Unless a unit is
// forced the largest unit whose scale does not exceed the magnitude is
// selected, keeping the displayed value in [1, 1024). Decimal rounding
// follows strconv.FormatFloat: round to nearest, ties to even on the exact
// binary value. Non-finite input returns an error wrapping ErrInvalidValue;
// every other input formats successfully.
func Format(bytes float64, opts ...FormatOption) (string, error) {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return "", errors.Wrapf(ErrInvalidValue, "format %v", bytes)
	}
	o := formatOptions{decimalPlaces: 2}
	for _, opt := range opts {
		opt(&o)
	}

	unit := o.unit
	if unit == UnitAuto {
		unit = pickUnit(bytes)
	}
	scaled := bytes / float64(unit.Scale())

	num := strconv.FormatFloat(scaled, 'f', o.decimalPlaces, 64)
	if !o.fixedDecimals && strings.ContainsRune(num, '.') {
		num = strings.TrimRight(num, "0")
		num = strings.TrimSuffix(num, ".")
	}

	negative := strings.HasPrefix(num, "-")
	if negative {
		num = num[1:]
	}
	intPart, frac := num, ""
	if i := strings.IndexByte(num, '.'); i >= 0 {
		intPart, frac = num[:i], num[i:]
	}
	if o.thousandsSep != "" {
		intPart = groupThousands(intPart, o.thousandsSep)
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	b.WriteString(frac)
	b.WriteString(o.unitSep)
	b.WriteString(unit.String())
	return b.String(), nil
}

// pickUnit returns the largest unit whose scale does not exceed the
// magnitude, falling back to bytes below 1024.
func pickUnit(bytes float64) Unit {
	mag := math.Abs(bytes)
	for u := Petabyte; u > Byte; u-- {
		if mag >= float64(u.Scale()) {
			return u
		}
	}
	return Byte
}

// groupThousands inserts sep between three-digit groups counting from the
// right. s must be a plain digit string with no sign or point.
func groupThousands(s, sep string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
