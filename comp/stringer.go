package comp

import (
	"fmt"
	"strconv"
)

// String implements fmt.Stringer for Comp.
func (c Comp) String() string {
	if c.IsNaN() {
		return "NaN"
	}
	return strconv.FormatInt(int64(c), 10)
}

// Debug returns a debug representation showing the raw bit pattern.
func (c Comp) Debug() string {
	if c.IsNaN() {
		return fmt.Sprintf("Comp{NaN, 0x%016X}", uint64(c))
	}
	return fmt.Sprintf("Comp{%d}", int64(c))
}
