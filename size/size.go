// Package size converts between human readable byte size strings such as
// "1.5GB" and integer byte counts, using powers of 1024. It is pure
// computation with no shared mutable state and is safe for concurrent use.
package size

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Size is an int64 byte count with a friendly way of printing, which also
// plugs into pflag, fmt scanning and JSON.
type Size int64

// Common multipliers for Size
const (
	B Size = 1 << (10 * iota)
	KB
	MB
	GB
	TB
	PB
)

// String renders the size with default format options.
func (s Size) String() string {
	str, _ := Format(float64(s)) // finite by construction
	return str
}

// Format renders the size with the given options.
func (s Size) Format(opts ...FormatOption) string {
	str, _ := Format(float64(s), opts...)
	return str
}

// Bytes returns the size as a plain byte count.
func (s Size) Bytes() int64 {
	return int64(s)
}

// Set a Size from a size string, implementing pflag.Value. On failure s is
// left unchanged.
func (s *Size) Set(v string) error {
	n, err := Parse(v)
	if err != nil {
		return err
	}
	*s = Size(n)
	return nil
}

// Type of the value
func (s *Size) Type() string {
	return "Size"
}

// Scan implements the fmt.Scanner interface
func (s *Size) Scan(state fmt.ScanState, ch rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	return s.Set(string(token))
}

// MarshalJSON emits the size as a plain integer byte count.
func (s Size) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(s), 10), nil
}

// UnmarshalJSON accepts either a size string ("1.5GB") or an integer byte
// count.
func (s *Size) UnmarshalJSON(in []byte) error {
	// Try to parse as string first
	var str string
	if err := json.Unmarshal(in, &str); err == nil {
		return s.Set(str)
	}
	// If that fails parse as integer
	var n int64
	if err := json.Unmarshal(in, &n); err != nil {
		return err
	}
	*s = Size(n)
	return nil
}
