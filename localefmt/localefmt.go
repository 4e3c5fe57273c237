// Package localefmt renders decimal values for a human locale. It is a
// presentation layer only: it never reinterprets a value, it formats
// the text decimal.Dec2Str already produced (or bypasses it for the
// NaN/Inf/"?" sentinels, which are locale-invariant).
package localefmt

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ksherlock/gosane/decimal"
)

// Printer renders decimal.Decimal values for a fixed language tag.
type Printer struct {
	tag language.Tag
	msg *message.Printer
}

// New returns a Printer for tag.
func New(tag language.Tag) *Printer {
	return &Printer{tag: tag, msg: message.NewPrinter(tag)}
}

// Format renders d with exactly fracDigits digits after the decimal
// point, using the locale's grouping and decimal separators. NaN,
// infinite, and overlong ("?") values pass through unchanged — they
// carry no locale-specific rendering.
func (p *Printer) Format(d decimal.Decimal, fracDigits int) string {
	s := decimal.Dec2Str(decimal.Decform{Style: decimal.FixedStyle, Digits: int16(fracDigits)}, d)
	if decimal.IsNaN(d) || decimal.IsInf(d) || s == "?" {
		return s
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}

	return p.msg.Sprintf("%v", number.Decimal(f, number.Scale(fracDigits)))
}

// String renders d with fracDigits digits using the undetermined
// language tag (language.Und, the zero Tag) — convenient for logging
// and debug output.
func String(d decimal.Decimal, fracDigits int) string {
	return New(language.Tag{}).Format(d, fracDigits)
}
