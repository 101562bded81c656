package size

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Check it satisfies the interface
var _ pflag.Value = (*Unit)(nil)

func TestUnitScale(t *testing.T) {
	assert.Equal(t, int64(1), Byte.Scale())
	assert.Equal(t, int64(1024), Kilobyte.Scale())
	assert.Equal(t, int64(1024*1024), Megabyte.Scale())
	assert.Equal(t, int64(1)<<30, Gigabyte.Scale())
	assert.Equal(t, int64(1)<<40, Terabyte.Scale())
	assert.Equal(t, int64(1)<<50, Petabyte.Scale())
	assert.Panics(t, func() { UnitAuto.Scale() })
	assert.Panics(t, func() { Unit(99).Scale() })
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "B", Byte.String())
	assert.Equal(t, "KB", Kilobyte.String())
	assert.Equal(t, "MB", Megabyte.String())
	assert.Equal(t, "GB", Gigabyte.String())
	assert.Equal(t, "TB", Terabyte.String())
	assert.Equal(t, "PB", Petabyte.String())
	assert.Equal(t, "auto", UnitAuto.String())
	assert.Equal(t, "Unit(99)", Unit(99).String())
}

func TestParseUnit(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Unit
		err  bool
	}{
		{"b", Byte, false},
		{"B", Byte, false},
		{"kb", Kilobyte, false},
		{"KB", Kilobyte, false},
		{"Kb", Kilobyte, false},
		{"kB", Kilobyte, false},
		{"mb", Megabyte, false},
		{"GB", Gigabyte, false},
		{"tb", Terabyte, false},
		{"PB", Petabyte, false},
		{"", UnitAuto, true},
		{"k", UnitAuto, true},
		{"kib", UnitAuto, true},
		{"KiB", UnitAuto, true},
		{"bytes", UnitAuto, true},
		{"eb", UnitAuto, true},
	} {
		got, err := ParseUnit(test.in)
		if test.err {
			require.Error(t, err, test.in)
			assert.Equal(t, ErrMalformedInput, errors.Cause(err), test.in)
		} else {
			require.NoError(t, err, test.in)
			assert.Equal(t, test.want, got, test.in)
		}
	}
}

func TestUnitSet(t *testing.T) {
	u := UnitAuto
	require.NoError(t, u.Set("gb"))
	assert.Equal(t, Gigabyte, u)
	require.Error(t, u.Set("nope"))
	assert.Equal(t, Gigabyte, u, "failed Set must leave the unit unchanged")
	assert.Equal(t, "Unit", u.Type())
}
