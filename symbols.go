package numfmt

import (
	"strconv"
	"strings"
)

// Symbols holds the number symbols of one locale and numbering system.
type Symbols struct {
	Decimal           string `json:"decimal" yaml:"decimal"`
	Group             string `json:"group" yaml:"group"`
	MinusSign         string `json:"minus_sign" yaml:"minus_sign"`
	PlusSign          string `json:"plus_sign" yaml:"plus_sign"`
	ApproximatelySign string `json:"approximately_sign" yaml:"approximately_sign"`
	RangeSign         string `json:"range_sign" yaml:"range_sign"`
	PercentSign       string `json:"percent_sign" yaml:"percent_sign"`
	ExponentSeparator string `json:"exponent_separator" yaml:"exponent_separator"`
	NaN               string `json:"nan" yaml:"nan"`
	Infinity          string `json:"infinity" yaml:"infinity"`

	// Digits holds the ten digit glyphs, zero first. Empty means ASCII digits.
	Digits []string `json:"digits,omitempty" yaml:"digits,omitempty"`

	PrimaryGroupSize      int `json:"primary_group_size" yaml:"primary_group_size"`
	SecondaryGroupSize    int `json:"secondary_group_size" yaml:"secondary_group_size"`
	MinimumGroupingDigits int `json:"minimum_grouping_digits" yaml:"minimum_grouping_digits"`

	// PercentSpacing sits between the number and the percent sign.
	PercentSpacing string `json:"percent_spacing,omitempty" yaml:"percent_spacing,omitempty"`
}

// AffixPosition places an affix before or after the number.
type AffixPosition string

const (
	AffixPrefix AffixPosition = "prefix"
	AffixSuffix AffixPosition = "suffix"
)

// CurrencyAffix is the resolved currency text for one display mode.
type CurrencyAffix struct {
	Symbol   string
	Position AffixPosition
	// Spacing sits between the symbol and the number.
	Spacing string
}

// CompactPattern is the abbreviation chosen for a magnitude.
type CompactPattern struct {
	// Exponent is the power of ten the value is divided by. Zero means the
	// value is shown unabbreviated.
	Exponent int
	Prefix   string
	Suffix   string
}

// PluralOperands are the CLDR plural operands of a formatted number:
// integer digits, visible fraction digit counts with and without trailing
// zeros, and the fraction digits as integers with and without trailing zeros.
type PluralOperands struct {
	I int64
	V int
	W int
	F int64
	T int64
}

// SymbolTable is the read-only locale data capability consumed by the
// formatter. Implementations must be safe for concurrent reads and report
// absent data with an error wrapping ErrMissingLocaleData.
type SymbolTable interface {
	// Symbols returns the symbols for locale in numberingSystem; an empty
	// numbering system selects the locale default.
	Symbols(locale, numberingSystem string) (Symbols, error)
	CurrencyAffix(locale, code string, display CurrencyDisplay, category PluralCategory) (CurrencyAffix, error)
	// UnitPattern returns a pattern with a "{0}" placeholder for the number.
	UnitPattern(locale, unit string, display UnitDisplay, category PluralCategory) (string, error)
	PluralCategory(locale string, operands PluralOperands) (PluralCategory, error)
	// CompactPattern returns the abbreviation for a value of the given
	// magnitude (floor(log10|x|)).
	CompactPattern(locale string, magnitude int, display CompactDisplay, category PluralCategory) (CompactPattern, error)
}

const maxOperandDigits = 18

// operandsFromDigits computes plural operands from ASCII integer and fraction
// digit strings. Operands wider than int64 keep their low-order digits.
func operandsFromDigits(intDigits, fracDigits string) PluralOperands {
	trimmed := strings.TrimRight(fracDigits, "0")
	return PluralOperands{
		I: operandValue(intDigits),
		V: len(fracDigits),
		W: len(trimmed),
		F: operandValue(fracDigits),
		T: operandValue(trimmed),
	}
}

func operandValue(digits string) int64 {
	if digits == "" {
		return 0
	}
	low := digits
	if len(low) > maxOperandDigits {
		low = low[len(low)-maxOperandDigits:]
	}
	n, err := strconv.ParseInt(low, 10, 64)
	if err != nil {
		return 0
	}
	if n == 0 && strings.Trim(digits, "0") != "" {
		// keep the low digits at zero without collapsing to the value zero
		n = 1e18
	}
	return n
}
