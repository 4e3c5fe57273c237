// Package comp implements SANE's 64-bit "comp" integer type: a two's
// complement int64 with a single reserved bit pattern for NaN.
package comp

import (
	"math"

	"github.com/ksherlock/gosane/fpinfo"
	"github.com/ksherlock/gosane/nancode"
)

// Comp holds either a signed integer in [-(2^63-1), 2^63-1] or the
// reserved NaN sentinel 0x8000000000000000 (== math.MinInt64).
type Comp int64

// NaNBits is the reserved sentinel bit pattern. It is never produced by any
// integer arithmetic in this package — only by FromFloat* rejecting an
// out-of-range or non-finite input, or by NaNValue() directly.
const NaNBits Comp = math.MinInt64

// NaNValue returns the comp NaN sentinel.
func NaNValue() Comp { return NaNBits }

// FromInt64 stores v directly; v == math.MinInt64 collapses to NaN since
// that bit pattern is reserved.
func FromInt64(v int64) Comp {
	return Comp(v)
}

// FromFloat32 converts f to a comp, rejecting NaN/Inf/out-of-range
// magnitudes as NaN per §4.2.
func FromFloat32(f float32) Comp { return fromFloat(float64(f)) }

// FromFloat64 converts d to a comp, rejecting NaN/Inf/out-of-range
// magnitudes as NaN per §4.2.
func FromFloat64(d float64) Comp { return fromFloat(d) }

// FromExtended converts x to a comp, rejecting NaN/Inf/out-of-range
// magnitudes as NaN per §4.2.
func FromExtended(x fpinfo.Extended) Comp { return fromFloat(x.Float64()) }

func fromFloat(f float64) Comp {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return NaNBits
	case f > math.MaxInt64 || f < -math.MaxInt64:
		return NaNBits
	default:
		return Comp(int64(f)) // truncate toward zero
	}
}

// ToFloat32 converts c to float32; a comp NaN becomes a floating NaN
// tagged with nancode.Comp.
func (c Comp) ToFloat32() float32 {
	if c.IsNaN() {
		return fpinfo.MakeNaN32(uint64(nancode.Comp))
	}
	return float32(c)
}

// ToFloat64 converts c to float64; a comp NaN becomes a floating NaN
// tagged with nancode.Comp.
func (c Comp) ToFloat64() float64 {
	if c.IsNaN() {
		return fpinfo.MakeNaN64(uint64(nancode.Comp))
	}
	return float64(c)
}

// ToExtended converts c to an Extended; a comp NaN becomes an Extended
// NaN tagged with nancode.Comp.
func (c Comp) ToExtended() fpinfo.Extended {
	if c.IsNaN() {
		return fpinfo.MakeNaNExtended(uint64(nancode.Comp))
	}
	return fpinfo.FromExtended(float64(c))
}

// IsNaN reports whether c is the reserved NaN bit pattern.
func (c Comp) IsNaN() bool { return c == NaNBits }

// IsZero reports whether c is the all-zero bit pattern.
func (c Comp) IsZero() bool { return c == 0 }

// SignBit reports the sign bit; NaN always reports false (§4.2).
func (c Comp) SignBit() bool {
	if c.IsNaN() {
		return false
	}
	return c < 0
}

// Abs returns the absolute value of c, preserving NaN.
func (c Comp) Abs() Comp {
	if c.IsNaN() {
		return c
	}
	if c < 0 {
		return -c
	}
	return c
}

// Equal, NotEqual, Less, LessEqual, Greater, and GreaterEqual implement
// IEEE-unordered comparison semantics: if either operand is NaN, every
// ordered predicate (including Equal) returns false, and NotEqual alone
// returns true.

func (a Comp) Equal(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b
}

func (a Comp) NotEqual(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return true
	}
	return a != b
}

func (a Comp) Less(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a < b
}

func (a Comp) LessEqual(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a <= b
}

func (a Comp) Greater(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a > b
}

func (a Comp) GreaterEqual(b Comp) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a >= b
}
