package numfmt

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	gvdecimal "github.com/govalues/decimal"
	"github.com/govalues/money"
	"github.com/shopspring/decimal"
)

// maxMagnitude bounds the decimal exponent of parsed values. Standard
// notation writes every digit out, so a value like 1e2000000000 is rejected
// instead of expanded.
const maxMagnitude = 9999

type valueKind uint8

const (
	kindFinite valueKind = iota
	kindNaN
	kindInf
)

// Value is an immutable number accepted by the formatter. Finite values are
// backed by an arbitrary precision decimal.Decimal; Value adds NaN,
// infinities and negative zero, which the decimal type does not represent.
type Value struct {
	dec  decimal.Decimal
	kind valueKind
	neg  bool
}

// NewValue wraps a decimal.
func NewValue(d decimal.Decimal) Value {
	return Value{dec: d, neg: d.IsNegative()}
}

// NewValueFromFixed converts a fixed-point govalues decimal without loss.
func NewValueFromFixed(d gvdecimal.Decimal) Value {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return NewValue(decimal.NewFromBigInt(coef, -int32(d.Scale())))
}

// NewValueFromInt64 returns an integer value.
func NewValueFromInt64(n int64) Value {
	return NewValue(decimal.NewFromInt(n))
}

// NewValueFromFloat64 converts f using its shortest decimal representation.
// NaN, infinities and negative zero are preserved.
func NewValueFromFloat64(f float64) Value {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return Inf(1)
	case math.IsInf(f, -1):
		return Inf(-1)
	case f == 0:
		return Value{neg: math.Signbit(f)}
	}
	return NewValue(decimal.NewFromFloat(f))
}

// ValueFromAmount returns the decimal value of a monetary amount.
func ValueFromAmount(a money.Amount) Value {
	return NewValueFromFixed(a.Decimal())
}

// NaN returns the not-a-number value.
func NaN() Value {
	return Value{kind: kindNaN}
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Value {
	return Value{kind: kindInf, neg: sign < 0}
}

// ParseValue converts a string to a Value. It accepts plain and exponent
// decimal strings ("1234.5", "1.5e-22") as well as "NaN", "Infinity", "Inf"
// and "∞", each with at most one leading sign, and keeps the sign of "-0".
func ParseValue(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Value{}, fmt.Errorf("numfmt: parse value: empty string")
	}

	neg := false
	body := trimmed
	switch trimmed[0] {
	case '-':
		neg = true
		body = trimmed[1:]
	case '+':
		body = trimmed[1:]
	}

	switch strings.ToLower(body) {
	case "nan":
		return NaN(), nil
	case "infinity", "inf", "∞":
		if neg {
			return Inf(-1), nil
		}
		return Inf(1), nil
	}

	if body == "" || body[0] == '+' || body[0] == '-' {
		return Value{}, fmt.Errorf("numfmt: parse value %q: malformed sign", s)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Value{}, fmt.Errorf("numfmt: parse value %q: %w", s, err)
	}
	if !d.IsZero() {
		if m := magnitude(d); m > maxMagnitude || m < -maxMagnitude {
			return Value{}, fmt.Errorf("%w: parse value %q: exponent %d", ErrValueOutOfRange, s, m)
		}
	}
	v := NewValue(d)
	v.neg = neg
	return v, nil
}

// MustParseValue is like ParseValue but panics on error.
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseValue(%q) failed: %v", s, err))
	}
	return v
}

func (v Value) IsNaN() bool { return v.kind == kindNaN }

func (v Value) IsInf() bool { return v.kind == kindInf }

// IsFinite reports whether v is neither NaN nor infinite.
func (v Value) IsFinite() bool { return v.kind == kindFinite }

// Signbit reports whether the sign bit is set, including for negative zero.
func (v Value) Signbit() bool { return v.neg && v.kind != kindNaN }

// IsZero reports whether v is a finite zero of either sign.
func (v Value) IsZero() bool { return v.kind == kindFinite && v.dec.IsZero() }

// Decimal returns the finite magnitude with its sign. It is zero for NaN and
// infinities.
func (v Value) Decimal() decimal.Decimal { return v.dec }

func (v Value) String() string {
	switch v.kind {
	case kindNaN:
		return "NaN"
	case kindInf:
		if v.neg {
			return "-Infinity"
		}
		return "Infinity"
	}
	text := v.dec.StringFixed(int32(maxInt(0, -int(v.dec.Exponent()))))
	if v.neg && v.dec.IsZero() {
		return "-" + text
	}
	return text
}
