package decimal

import (
	"testing"

	"github.com/ksherlock/gosane/fpinfo"
	"github.com/stretchr/testify/require"
)

func TestDec2XNormalRoundTrip(t *testing.T) {
	d := Decimal{Sig: "125", Exp: -2} // 1.25
	x := Dec2X(d)
	require.Equal(t, 1.25, x.Float64())

	back := X2Dec(x, Decform{Style: FloatStyle, Digits: 3})
	require.Equal(t, "125", back.Sig)
	require.Equal(t, int16(-2), back.Exp)
}

func TestDec2XNegative(t *testing.T) {
	d := Decimal{Sgn: 1, Sig: "5", Exp: 0}
	x := Dec2X(d)
	require.Equal(t, -5.0, x.Float64())
}

func TestDec2XZero(t *testing.T) {
	d := Decimal{Sig: "0"}
	x := Dec2X(d)
	require.Equal(t, 0.0, x.Float64())
	require.False(t, x.Sign)
}

func TestDec2XInfinity(t *testing.T) {
	d := Decimal{Sig: "I", Sgn: 1}
	x := Dec2X(d)
	require.True(t, x.Inf)
	require.True(t, x.Sign)
}

func TestDec2XNaNRoundTrip(t *testing.T) {
	d := Decimal{Sig: "N4024"}
	x := Dec2X(d)
	require.True(t, x.NaN)

	back := X2Dec(x, Decform{Style: FloatStyle, Digits: 3})
	require.Equal(t, "N4024", back.Sig)
}

func TestX2DecFixedStyle(t *testing.T) {
	// 12.375 is exact in binary, so rounding to 2 fractional digits
	// deterministically rounds the trailing "...375" up to "...38".
	x := fpinfo.FromExtended(12.375)
	d := X2Dec(x, Decform{Style: FixedStyle, Digits: 2})
	require.Equal(t, "12.38", Dec2Str(Decform{Style: FixedStyle, Digits: 2}, d))
}

func TestX2DecFixedStyleSixteenth(t *testing.T) {
	x := fpinfo.FromExtended(1.0 / 16.0)
	d := X2Dec(x, Decform{Style: FixedStyle, Digits: 6})
	require.Equal(t, int16(0), d.Sgn)
	require.Equal(t, int16(-6), d.Exp)
	require.Equal(t, "62500", d.Sig)
}

func TestX2DecFixedStyleTrailingZeros(t *testing.T) {
	x := fpinfo.FromExtended(1234.0)
	d := X2Dec(x, Decform{Style: FixedStyle, Digits: 2})
	require.Equal(t, int16(-2), d.Exp)
	require.Equal(t, "123400", d.Sig)
}

func TestX2DecFloatStyleRoundHalfToEven(t *testing.T) {
	// 0.0625 at 2 significant digits ties exactly between 6.2e-2 and
	// 6.3e-2; the correctly-rounded binary-to-decimal conversion picks
	// the even digit, 6.2e-2, not round-half-up's 6.3e-2.
	x := fpinfo.FromExtended(1.0 / 16.0)
	d := X2Dec(x, Decform{Style: FloatStyle, Digits: 2})
	require.Equal(t, int16(0), d.Sgn)
	require.Equal(t, int16(-3), d.Exp)
	require.Equal(t, "62", d.Sig)
}
