package decimal

import (
	"math"
	"strconv"

	"github.com/ksherlock/gosane/fpinfo"
	"github.com/ksherlock/gosane/nancode"
)

// Dec2X converts d to the platform extended binary format (§4.6).
// Extended is backed by float64 precision (see fpinfo.Extended);
// significands beyond that precision are rounded by strconv.ParseFloat.
func Dec2X(d Decimal) fpinfo.Extended {
	switch FPClassify(d) {
	case ClassNaN:
		ext := fpinfo.MakeNaNExtended(uint64(decodeHexLenient(d.Sig[1:])))
		ext.Sign = d.Sgn != 0
		return ext
	case ClassInfinite:
		return fpinfo.Extended{Sign: d.Sgn != 0, Inf: true}
	case ClassZero:
		return fpinfo.Extended{Sign: d.Sgn != 0, One: false}
	}

	numStr := d.Sig + "e" + strconv.Itoa(int(d.Exp))
	v, _ := strconv.ParseFloat(numStr, 64)
	if d.Sgn != 0 {
		v = -v
	}
	return fpinfo.FromExtended(v)
}

// X2Dec converts x to a Decimal rendered per df: FloatStyle yields
// df.Digits significant digits, FixedStyle yields df.Digits digits
// past the decimal point (§4.6, §4.7). It formats x directly at the
// requested width via strconv.FormatFloat — which performs a
// correctly-rounded binary-to-decimal conversion, ties resolved by
// round-to-nearest-even on the underlying binary value — and builds
// the Decimal straight from that text via Str2Dec.
//
// This deliberately does not go through Truncate: Truncate's
// round-half-up plus unconditional trailing-zero strip serves
// Dec2Str's rendering contract, but would both re-round an
// already-correctly-rounded digit string and collapse the fixed
// digit count X2Dec promises (e.g. "62500" stripping down to "625").
func X2Dec(x fpinfo.Extended, df Decform) Decimal {
	if x.NaN {
		c := nancode.Mask16(x.Sig)
		sgn := int16(0)
		if x.Sign {
			sgn = 1
		}
		return Decimal{Sgn: sgn, Exp: 0, Sig: "N" + hex4(uint64(c))}
	}
	if x.Inf {
		sgn := int16(0)
		if x.Sign {
			sgn = 1
		}
		return Decimal{Sgn: sgn, Exp: 0, Sig: "I"}
	}

	v := x.Float64()
	sgn := int16(0)
	if v < 0 || math.Signbit(v) {
		sgn = 1
		v = -v
	}
	if v == 0 {
		return Decimal{Sgn: sgn, Exp: 0, Sig: "0"}
	}

	digits := int(df.Digits)

	var text string
	switch df.Style {
	case FixedStyle:
		if digits < 0 {
			digits = 0
		}
		text = strconv.FormatFloat(v, 'f', digits, 64)
	case FloatStyle:
		if digits < 1 {
			digits = 1
		}
		text = strconv.FormatFloat(v, 'e', digits-1, 64)
	default:
		panic(newInternalError(df.Style, "unrecognized Decform.Style"))
	}

	var idx int
	d, _ := Str2Dec(text, &idx)
	d.Sgn = sgn
	return d
}
