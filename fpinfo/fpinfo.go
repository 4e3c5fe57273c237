// Package fpinfo translates IEEE-754 binary32, binary64, and the
// platform-extended binary format into a canonical structured view (and
// back), per the Apple Numerics Manual's fpinfo contract.
package fpinfo

import (
	"math"

	"github.com/ksherlock/gosane/nancode"
)

// Info is a canonical structured view of one binary floating number.
type Info struct {
	Sign bool   // sign bit
	One  bool   // explicit/implicit leading one bit
	Exp  int    // unbiased exponent
	Sig  uint64 // fraction bits (23 for binary32, 52 for binary64)
	NaN  bool
	Inf  bool
}

// Extended models the platform-extended binary format: an 80-bit value
// padded to 96 or 128 bits on real hardware, here represented directly by
// its two logical fields rather than by a 12/16-byte memory image.
//
// Go has no native 80-bit long double. Per the Apple Numerics Manual note
// on hosts whose long double is actually 64 bits, Extended here is backed
// by float64 precision: Exp holds the unbiased exponent as a plain int
// (so only the binary64 exponent range is ever produced) and Sig only ever has its top 52 bits
// populated from a float64 significand, the low 11 bits padded with
// zero. Round trips through Extended are therefore lossless for any value
// that itself came from a float64, and lose no additional information —
// but they do not gain the extra binary64-to-binary80 precision real
// 80-bit hardware would provide.
type Extended struct {
	Sign bool
	Exp  int    // unbiased exponent, 15-bit range
	One  bool   // explicit leading-one bit (bit 63 of the 64-bit significand)
	Sig  uint64 // low 63 bits of the significand (One holds bit 63)
	NaN  bool
	Inf  bool
}

const (
	bias32 = 127
	bias64 = 1023
	bias80 = 16383

	fracMask32 = uint64(1)<<23 - 1
	fracMask64 = uint64(1)<<52 - 1
	sigMask80  = uint64(1)<<63 - 1
)

// FromFloat32 decodes f into its structured fields (§4.1, width 32).
func FromFloat32(f float32) Info {
	return fromBits(uint64(math.Float32bits(f)), 8, 23, bias32)
}

// FromFloat64 decodes d into its structured fields (§4.1, width 64).
func FromFloat64(d float64) Info {
	return fromBits(math.Float64bits(d), 11, 52, bias64)
}

// fromBits implements the shared extraction logic for binary32/binary64:
// sign in the top bit, an expBits-wide biased exponent, and the
// remaining low bits holding the fraction.
func fromBits(bits uint64, expBits, fracBits uint, bias int) Info {
	fracMask := uint64(1)<<fracBits - 1
	expMask := uint64(1)<<expBits - 1
	width := 1 + expBits + fracBits

	info := Info{
		Sign: bits>>(width-1) != 0,
		One:  true,
	}
	biased := (bits >> fracBits) & expMask
	info.Sig = bits & fracMask

	specialExp := expMask
	switch {
	case biased == specialExp:
		if info.Sig == 0 {
			info.Inf = true
		} else {
			info.NaN = true
		}
	case biased == 0:
		info.One = false
		info.Exp = -bias + 1
	default:
		info.Exp = int(biased) - bias
	}
	return info
}

// ToFloat32 reconstructs a binary32 value from the structured fields.
func (i Info) ToFloat32() float32 {
	return math.Float32frombits(uint32(i.toBits(8, 23, bias32)))
}

// ToFloat64 reconstructs a binary64 value from the structured fields.
func (i Info) ToFloat64() float64 {
	return math.Float64frombits(i.toBits(11, 52, bias64))
}

func (i Info) toBits(expBits, fracBits uint, bias int) uint64 {
	fracMask := uint64(1)<<fracBits - 1
	expMask := uint64(1)<<expBits - 1
	width := 1 + expBits + fracBits

	var bits uint64
	if i.Sign {
		bits |= 1 << (width - 1)
	}

	switch {
	case i.Inf:
		bits |= expMask << fracBits
	case i.NaN:
		bits |= expMask << fracBits
		sig := i.Sig & fracMask
		if sig == 0 {
			sig = 1
		}
		bits |= sig
	default:
		if !i.One {
			bits |= i.Sig & fracMask
			return bits
		}
		biased := uint64(i.Exp + bias)
		bits |= (biased & expMask) << fracBits
		bits |= i.Sig & fracMask
	}
	return bits
}

// MakeNaN32 builds a float32 NaN whose payload encodes code, per §4.3.
func MakeNaN32(code uint64) float32 {
	return Info{NaN: true, Sig: uint64(nancode.Mask16(code))}.ToFloat32()
}

// MakeNaN64 builds a float64 NaN whose payload encodes code, per §4.3.
func MakeNaN64(code uint64) float64 {
	return Info{NaN: true, Sig: uint64(nancode.Mask16(code))}.ToFloat64()
}

// MakeNaNExtended builds an Extended NaN whose payload encodes code.
func MakeNaNExtended(code uint64) Extended {
	return Extended{NaN: true, Sig: uint64(nancode.Mask16(code))}
}

// FromExtended widens a float64 into the Extended representation,
// padding the low mantissa bits with zero (see the Extended doc comment
// for the precision caveat this implies).
func FromExtended(x float64) Extended {
	d := FromFloat64(x)
	return Extended{
		Sign: d.Sign,
		One:  d.One,
		Exp:  d.Exp,
		Sig:  d.Sig << (63 - 52),
		NaN:  d.NaN,
		Inf:  d.Inf,
	}
}

// Float64 narrows an Extended back to float64, truncating any precision
// beyond what float64 can hold.
func (x Extended) Float64() float64 {
	d := Info{
		Sign: x.Sign,
		One:  x.One,
		Exp:  x.Exp,
		Sig:  x.Sig >> (63 - 52),
		NaN:  x.NaN,
		Inf:  x.Inf,
	}
	return d.ToFloat64()
}
