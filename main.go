package main

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/ksherlock/gosane/comp"
	"github.com/ksherlock/gosane/decimal"
	"github.com/ksherlock/gosane/fpinfo"
	"github.com/ksherlock/gosane/localefmt"
)

func main() {
	format := "%-5s\t%16s\t%s\n"
	sep := "-------------------------------------"

	pi := decimal.Decimal{Sig: "31415926535", Exp: -10} // 3.1415926535
	idx := 0
	parsed, ok := decimal.Str2Dec("  -123.456e2", &idx)

	fmt.Printf(format, "pi", decimal.Dec2Str(decimal.Decform{Style: decimal.FixedStyle, Digits: 5}, pi), "")
	fmt.Printf(format, "parsed", decimal.Dec2Str(decimal.Decform{Style: decimal.FloatStyle, Digits: 6}, parsed), fmt.Sprintf("consumed=%d valid=%v", idx, ok))
	println(sep)

	nan := decimal.MakeNaN(36)
	inf := decimal.Decimal{Sig: "I", Sgn: 1}
	fmt.Printf(format, "nan", decimal.Dec2Str(decimal.Decform{Style: decimal.FloatStyle}, nan), "")
	fmt.Printf(format, "-inf", decimal.Dec2Str(decimal.Decform{Style: decimal.FloatStyle}, inf), "")
	println(sep)

	rounded := decimal.Truncate(pi, 5)
	fmt.Printf(format, "pi~5", decimal.Dec2Str(decimal.Decform{Style: decimal.FixedStyle, Digits: 4}, rounded), "")
	println(sep)

	x := decimal.Dec2X(pi)
	back := decimal.X2Dec(x, decimal.Decform{Style: decimal.FixedStyle, Digits: 10})
	fmt.Printf(format, "x", fmt.Sprintf("%v", x.Float64()), "")
	fmt.Printf(format, "x->dec", decimal.Dec2Str(decimal.Decform{Style: decimal.FixedStyle, Digits: 10}, back), "")
	println(sep)

	info := fpinfo.FromFloat64(x.Float64())
	fmt.Printf(format, "classify", fmt.Sprintf("sign=%v exp=%d", info.Sign, info.Exp), "")
	println(sep)

	c := comp.FromFloat64(x.Float64())
	fmt.Printf(format, "comp", c.String(), c.Debug())
	fmt.Printf(format, "comp/0", comp.NaNValue().String(), comp.NaNValue().Debug())
	println(sep)

	p := localefmt.New(language.French)
	fmt.Println("pi (fr):", p.Format(pi, 4))
	fmt.Println("pi (en):", localefmt.String(pi, 4))
}
