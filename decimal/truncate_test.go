package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateNoOp(t *testing.T) {
	d := Decimal{Sig: "123", Exp: 0}
	require.Equal(t, d, Truncate(d, 5))
}

func TestTruncateRoundDown(t *testing.T) {
	d := Truncate(Decimal{Sig: "1234", Exp: 0}, 3)
	require.Equal(t, "123", d.Sig)
	require.Equal(t, int16(1), d.Exp)
}

func TestTruncateRoundUp(t *testing.T) {
	d := Truncate(Decimal{Sig: "1235", Exp: 0}, 3)
	require.Equal(t, "124", d.Sig)
	require.Equal(t, int16(1), d.Exp)
}

func TestTruncateCarryChain(t *testing.T) {
	d := Truncate(Decimal{Sig: "9999", Exp: 0}, 3)
	require.Equal(t, "1", d.Sig)
	require.Equal(t, int16(4), d.Exp)
}

func TestTruncateZeroDigitRoundsDown(t *testing.T) {
	d := Truncate(Decimal{Sig: "1950", Exp: 0}, 3)
	// 1950 -> first 3 digits "195", next digit '0' rounds down, no carry
	require.Equal(t, "195", d.Sig)
	require.Equal(t, int16(1), d.Exp)
}

func TestTruncateNaNJustCuts(t *testing.T) {
	d := Truncate(Decimal{Sig: "N40123"}, 4)
	require.Equal(t, "N401", d.Sig)
}

func TestTruncateMinDigitsOne(t *testing.T) {
	d := Truncate(Decimal{Sig: "55", Exp: 0}, 0)
	require.Equal(t, "6", d.Sig)
	require.Equal(t, int16(1), d.Exp)
}
