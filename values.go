package pflagx

import (
	"fmt"
	"strconv"
)

// Values holds parse results keyed by destination name. Every value-storing
// option is seeded with its default before parsing; flags seen on the
// command line overwrite their entry.
type Values map[string]any

// String returns the value under dest rendered as a string ("" when absent
// or nil).
func (v Values) String(dest string) string {
	x, ok := v[dest]
	if !ok || x == nil {
		return ""
	}
	if s, ok := x.(string); ok {
		return s
	}
	return fmt.Sprint(x)
}

// Bool returns the value under dest as a bool (false when absent or not a
// bool).
func (v Values) Bool(dest string) bool {
	b, _ := v[dest].(bool)
	return b
}

// Int returns the value under dest as an int. String values (Store options
// holding numbers) are converted; anything else reads as zero.
func (v Values) Int(dest string) int {
	switch x := v[dest].(type) {
	case int:
		return x
	case string:
		n, _ := strconv.Atoi(x)
		return n
	}
	return 0
}
