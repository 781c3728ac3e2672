package numfmt

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// magnitude returns floor(log10|d|) for a non-zero d.
func magnitude(d decimal.Decimal) int {
	if d.IsZero() {
		return 0
	}
	return len(coefficientDigits(d)) + int(d.Exponent()) - 1
}

// coefficientDigits returns the unsigned coefficient of d in base ten.
func coefficientDigits(d decimal.Decimal) string {
	return new(big.Int).Abs(d.Coefficient()).String()
}

// roundToScale rounds d to scale fraction digits using mode. A negative scale
// rounds to tens, hundreds and so on.
func roundToScale(d decimal.Decimal, scale int, mode RoundingMode) decimal.Decimal {
	if int(d.Exponent()) >= -scale {
		return d
	}
	places := int32(scale)

	switch mode {
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundHalfExpand:
		return d.Round(places)
	case RoundTrunc:
		return d.RoundDown(places)
	case RoundExpand:
		return d.RoundUp(places)
	case RoundCeil:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	}

	truncated := d.RoundDown(places)
	half := decimal.New(5, -places-1)
	switch cmp := d.Sub(truncated).Abs().Cmp(half); {
	case cmp < 0:
		return truncated
	case cmp > 0:
		return d.RoundUp(places)
	}

	// exact tie
	switch mode {
	case RoundHalfCeil:
		if d.IsNegative() {
			return truncated
		}
		return d.RoundUp(places)
	case RoundHalfFloor:
		if d.IsNegative() {
			return d.RoundUp(places)
		}
		return truncated
	default:
		return truncated
	}
}

// roundedDigits is a value rounded for display: the rounded decimal plus the
// fraction digit bounds used to lay it out.
type roundedDigits struct {
	value   decimal.Decimal
	minFrac int
	maxFrac int
}

// applyRounding rounds d with the configured strategy.
func applyRounding(d decimal.Decimal, r Rounding) roundedDigits {
	switch r.Strategy {
	case RoundSignificantDigits:
		return roundSignificant(d, r.MinimumSignificantDigits, r.MaximumSignificantDigits, r.Mode)
	case RoundIncrement:
		return roundIncrement(d, r)
	case RoundCompact:
		if magnitude(d) < 1 {
			return roundSignificant(d, 1, 2, r.Mode)
		}
		return roundFraction(d, 0, 0, r.Mode)
	default:
		return roundFraction(d, r.MinimumFractionDigits, r.MaximumFractionDigits, r.Mode)
	}
}

func roundFraction(d decimal.Decimal, minFrac, maxFrac int, mode RoundingMode) roundedDigits {
	return roundedDigits{value: roundToScale(d, maxFrac, mode), minFrac: minFrac, maxFrac: maxFrac}
}

func roundSignificant(d decimal.Decimal, minSig, maxSig int, mode RoundingMode) roundedDigits {
	if d.IsZero() {
		return roundedDigits{value: decimal.Zero, minFrac: minSig - 1, maxFrac: maxSig - 1}
	}

	rounded := roundToScale(d, maxSig-1-magnitude(d), mode)

	// rounding may carry into the next power of ten
	m := magnitude(rounded)
	return roundedDigits{
		value:   rounded,
		minFrac: maxInt(0, minSig-1-m),
		maxFrac: maxInt(0, maxSig-1-m),
	}
}

// roundIncrement rounds d to a multiple of Increment x 10^-MaximumFractionDigits.
// Increments only have the prime factors 2 and 5, so the quotient is exact
// with a few digits beyond the scale of d.
func roundIncrement(d decimal.Decimal, r Rounding) roundedDigits {
	step := decimal.New(int64(r.Increment), -int32(r.MaximumFractionDigits))
	precision := maxInt(0, -int(d.Exponent())-r.MaximumFractionDigits) + 8
	quotient := d.DivRound(step, int32(precision))
	units := roundToScale(quotient, 0, r.Mode)
	return roundedDigits{
		value:   units.Mul(step),
		minFrac: r.MinimumFractionDigits,
		maxFrac: r.MaximumFractionDigits,
	}
}

// digitStrings lays out the absolute rounded value as ASCII integer and
// fraction digits, trimming trailing zeros to minFrac and padding up to it.
func (rd roundedDigits) digitStrings(minInt int) (string, string) {
	intPart, fracPart := plainDigits(rd.value)

	for len(fracPart) > rd.minFrac && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	if pad := rd.minFrac - len(fracPart); pad > 0 {
		fracPart += strings.Repeat("0", pad)
	}

	if pad := minInt - len(intPart); pad > 0 {
		intPart = strings.Repeat("0", pad) + intPart
	}
	return intPart, fracPart
}

// plainDigits splits |d| into integer and fraction digits without an
// exponent. The integer part has no leading zeros but is at least "0".
func plainDigits(d decimal.Decimal) (string, string) {
	coef := coefficientDigits(d)
	exp := int(d.Exponent())

	var intPart, fracPart string
	if exp >= 0 {
		intPart = coef + strings.Repeat("0", exp)
	} else {
		scale := -exp
		if len(coef) <= scale {
			coef = strings.Repeat("0", scale-len(coef)+1) + coef
		}
		intPart, fracPart = coef[:len(coef)-scale], coef[len(coef)-scale:]
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	return intPart, fracPart
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
