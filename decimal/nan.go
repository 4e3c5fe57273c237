package decimal

import (
	"fmt"

	"github.com/ksherlock/gosane/nancode"
)

// MakeNaN builds a decimal NaN carrying code, masked to 16 bits (§4.3).
// Code zero is substituted by nancode.Zero, matching fpinfo.MakeNaN64.
func MakeNaN(code uint64) Decimal {
	c := nancode.Mask16(code)
	return Decimal{Sgn: 0, Exp: 0, Sig: fmt.Sprintf("N%04x", uint16(c))}
}
