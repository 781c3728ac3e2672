package numfmt

import "strings"

// PartKind names the semantic role of a formatted fragment.
type PartKind string

const (
	PartMinusSign         PartKind = "minusSign"
	PartPlusSign          PartKind = "plusSign"
	PartInteger           PartKind = "integer"
	PartGroup             PartKind = "group"
	PartDecimal           PartKind = "decimal"
	PartFraction          PartKind = "fraction"
	PartExponentSeparator PartKind = "exponentSeparator"
	PartExponentMinusSign PartKind = "exponentMinusSign"
	PartExponentInteger   PartKind = "exponentInteger"
	PartCompact           PartKind = "compact"
	PartCurrency          PartKind = "currency"
	PartUnit              PartKind = "unit"
	PartPercentSign       PartKind = "percentSign"
	PartLiteral           PartKind = "literal"
	PartNaN               PartKind = "nan"
	PartInfinity          PartKind = "infinity"
	PartApproximatelySign PartKind = "approximatelySign"
)

// IsNumeric reports whether parts of this kind carry computed numeric content.
// Numeric parts are never elided when a range is collapsed.
func (k PartKind) IsNumeric() bool {
	switch k {
	case PartMinusSign, PartPlusSign, PartInteger, PartGroup, PartDecimal, PartFraction,
		PartExponentSeparator, PartExponentMinusSign, PartExponentInteger,
		PartCompact, PartNaN, PartInfinity:
		return true
	default:
		return false
	}
}

// PartSource records which endpoint of a range a part belongs to.
type PartSource string

const (
	SourceShared     PartSource = "shared"
	SourceStartRange PartSource = "startRange"
	SourceEndRange   PartSource = "endRange"
)

// Part is one typed fragment of a formatted number.
type Part struct {
	Type   PartKind   `json:"type" yaml:"type"`
	Value  string     `json:"value" yaml:"value"`
	Source PartSource `json:"source,omitempty" yaml:"source,omitempty"`
}

// Concat joins the values of parts into the display string.
func Concat(parts []Part) string {
	var builder strings.Builder
	for _, part := range parts {
		builder.WriteString(part.Value)
	}
	return builder.String()
}

// tagParts returns a copy of parts with every source set to src.
func tagParts(parts []Part, src PartSource) []Part {
	out := make([]Part, len(parts))
	for i, part := range parts {
		part.Source = src
		out[i] = part
	}
	return out
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// pluralVariant picks the entry for category, falling back to "other".
func pluralVariant(variants map[PluralCategory]string, category PluralCategory) (string, bool) {
	if len(variants) == 0 {
		return "", false
	}
	if value, ok := variants[category]; ok {
		return value, true
	}
	value, ok := variants[PluralOther]
	return value, ok
}
