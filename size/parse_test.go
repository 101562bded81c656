package size

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want int64
		err  bool
	}{
		{"0b", 0, false},
		{"0KB", 0, false},
		{"1b", 1, false},
		{"1B", 1, false},
		{"1kb", 1024, false},
		{"1KB", 1024, false},
		{"1Kb", 1024, false},
		{"1 KB", 1024, false},
		{"1MB", 1048576, false},
		{"1GB", 1 << 30, false},
		{"1TB", 1 << 40, false},
		{"1PB", 1 << 50, false},
		{"+5KB", 5 * 1024, false},
		{"-5MB", -5242880, false},
		{"1.5KB", 1536, false},
		{"10.75mb", 11272192, false},
		{"0.5b", 1, false}, // rounds half away from zero
		{"-0.5b", -1, false},
		{"100 gb", 100 << 30, false},

		{"", 0, true},
		{"invalid", 0, true},
		{"1", 0, true},    // missing unit
		{"KB", 0, true},   // missing mantissa
		{".5KB", 0, true}, // point needs digits on both sides
		{"5.KB", 0, true},
		{"5.5.5KB", 0, true},
		{" 1KB", 0, true},  // leading whitespace
		{"1KB ", 0, true},  // trailing whitespace
		{"1  KB", 0, true}, // two internal spaces
		{"1\tKB", 0, true},
		{"1e3KB", 0, true}, // no exponents
		{"0x10KB", 0, true},
		{"1,000KB", 0, true},
		{"1KiB", 0, true},
		{"1XB", 0, true},
		{"1EB", 0, true},
		{"--1KB", 0, true},
		{"+-1KB", 0, true},
	} {
		got, err := Parse(test.in)
		if test.err {
			require.Error(t, err, test.in)
			assert.Equal(t, ErrMalformedInput, errors.Cause(err), test.in)
		} else {
			require.NoError(t, err, test.in)
			assert.Equal(t, test.want, got, test.in)
		}
	}
}

// Formatting a byte count and parsing the result comes back to the original
// count, within the rounding tolerance of the requested precision.
func TestParseFormatRoundTrip(t *testing.T) {
	units := []Unit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte}
	counts := []int64{0, 1, 10, 999, 1024, 123456, 987654321, 5 << 30}
	for _, u := range units {
		for _, n := range counts {
			s, err := Format(float64(n), WithUnit(u), WithDecimalPlaces(6), WithFixedDecimals(true))
			require.NoError(t, err)
			got, err := Parse(s)
			require.NoError(t, err, s)
			tolerance := 1e-6*float64(u.Scale()) + 1
			assert.InDelta(t, n, got, tolerance, "%d bytes as %v via %q", n, u, s)
		}
	}
}

// Re-parsing the default rendering of a parsed size is stable.
func TestParseFormatIdempotent(t *testing.T) {
	for _, s := range []string{"100b", "1.5KB", "976.56KB", "-5MB", "3GB"} {
		n, err := Parse(s)
		require.NoError(t, err, s)
		rendered, err := Format(float64(n))
		require.NoError(t, err, s)
		again, err := Parse(rendered)
		require.NoError(t, err, rendered)
		assert.Equal(t, n, again, "%q -> %q", s, rendered)
	}
}
