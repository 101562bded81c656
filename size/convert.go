package size

import (
	"math"

	"github.com/pkg/errors"
)

// Convert routes on the dynamic type of v: strings are parsed and yield an
// int64 byte count, numbers are formatted and yield a string. Options apply
// only to the format direction and are ignored when parsing. Any other type
// returns an error wrapping ErrInvalidValue.
func Convert(v interface{}, opts ...FormatOption) (interface{}, error) {
	if s, ok := v.(string); ok {
		return Parse(s)
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidValue, "cannot convert %T", v)
	}
	return Format(f, opts...)
}

// ParseAny is Parse for values whose static type is not known: strings are
// parsed, numeric values pass through as byte counts unchanged (floats are
// rounded, halves away from zero).
func ParseAny(v interface{}) (int64, error) {
	switch n := v.(type) {
	case string:
		return Parse(n)
	case Size:
		return int64(n), nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return roundToInt(float64(n))
	case float64:
		return roundToInt(n)
	}
	return 0, errors.Wrapf(ErrMalformedInput, "cannot parse %T", v)
}

func roundToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Wrapf(ErrMalformedInput, "cannot parse %v", f)
	}
	return int64(math.Round(f)), nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case Size:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
