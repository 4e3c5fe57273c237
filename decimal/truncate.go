package decimal

// Truncate rounds d's significand to at most digits characters, using
// round-half-up on the first discarded digit and then stripping every
// trailing zero of the kept digits, one exponent step per zero (original
// sane.cpp truncate()). The carry itself pops overflowed digits rather
// than leaving zeros behind. NaN and infinite significands are simply cut to length;
// they carry no numeric rounding.
func Truncate(d Decimal, digits int) Decimal {
	if digits < 1 {
		digits = 1
	}
	if len(d.Sig) <= digits {
		return d
	}

	if c := d.Sig[0]; c == 'I' || c == 'i' || c == 'N' || c == 'n' {
		d.Sig = d.Sig[:digits]
		return d
	}

	roundUp := d.Sig[digits] >= '5'
	d.Exp += int16(len(d.Sig) - digits)
	sig := []byte(d.Sig[:digits])

	for roundUp && len(sig) > 0 {
		last := sig[len(sig)-1] + 1
		roundUp = last > '9'
		if roundUp {
			d.Exp++
			sig = sig[:len(sig)-1]
		} else {
			sig[len(sig)-1] = last
		}
	}
	if roundUp {
		// every digit carried out, e.g. "999" -> "1" with exp bumped once more
		sig = []byte{'1'}
	}

	for len(sig) > 1 && sig[len(sig)-1] == '0' {
		sig = sig[:len(sig)-1]
		d.Exp++
	}

	d.Sig = string(sig)
	return d
}
