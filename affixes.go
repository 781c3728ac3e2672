package numfmt

import (
	"fmt"
	"strings"
	"unicode"
)

const unitPlaceholder = "{0}"

// textParts splits affix text into kind parts, turning leading and trailing
// whitespace into literal parts: " km" becomes literal " " and unit "km".
func textParts(text string, kind PartKind) []Part {
	if text == "" {
		return nil
	}

	body := strings.TrimFunc(text, unicode.IsSpace)
	if body == "" {
		return []Part{{Type: PartLiteral, Value: text}}
	}

	start := strings.Index(text, body)
	leading, trailing := text[:start], text[start+len(body):]

	parts := make([]Part, 0, 3)
	parts = appendPart(parts, PartLiteral, leading)
	parts = appendPart(parts, kind, body)
	parts = appendPart(parts, PartLiteral, trailing)
	return parts
}

func appendPart(parts []Part, kind PartKind, value string) []Part {
	if value == "" {
		return parts
	}
	return append(parts, Part{Type: kind, Value: value})
}

// wrapStyle places the sign and number parts inside the style affixes.
func wrapStyle(cfg *FormatConfig, table SymbolTable, symbols Symbols, rec numericRecord, sign, number []Part) ([]Part, error) {
	parts := make([]Part, 0, len(sign)+len(number)+4)

	switch cfg.Style {
	case StylePercent:
		parts = append(parts, sign...)
		parts = append(parts, number...)
		parts = appendPart(parts, PartLiteral, symbols.PercentSpacing)
		parts = appendPart(parts, PartPercentSign, symbols.PercentSign)

	case StyleCurrency:
		affix, err := table.CurrencyAffix(cfg.Locale, cfg.Currency, cfg.CurrencyDisplay, rec.category)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sign...)
		if affix.Position == AffixSuffix {
			parts = append(parts, number...)
			parts = appendPart(parts, PartLiteral, affix.Spacing)
			parts = appendPart(parts, PartCurrency, affix.Symbol)
			break
		}
		parts = appendPart(parts, PartCurrency, affix.Symbol)
		parts = appendPart(parts, PartLiteral, affix.Spacing)
		parts = append(parts, number...)

	case StyleUnit:
		pattern, err := table.UnitPattern(cfg.Locale, cfg.Unit, cfg.UnitDisplay, rec.category)
		if err != nil {
			return nil, err
		}
		before, after, ok := strings.Cut(pattern, unitPlaceholder)
		if !ok {
			return nil, fmt.Errorf("%w: unit pattern %q for %q has no placeholder", ErrMissingLocaleData, pattern, cfg.Unit)
		}
		parts = append(parts, textParts(before, PartUnit)...)
		parts = append(parts, sign...)
		parts = append(parts, number...)
		parts = append(parts, textParts(after, PartUnit)...)

	default:
		parts = append(parts, sign...)
		parts = append(parts, number...)
	}

	return parts, nil
}

type signKind uint8

const (
	signNone signKind = iota
	signMinus
	signPlus
)

// signFor applies the sign display policy to the rounded record. Negative
// zero shows a minus only under SignAlways.
func signFor(rec numericRecord, display SignDisplay) signKind {
	if rec.kind == kindNaN {
		return signNone
	}

	switch display {
	case SignNever:
		return signNone
	case SignAlways:
		if rec.negative {
			return signMinus
		}
		return signPlus
	case SignExceptZero:
		if !rec.nonZero() {
			return signNone
		}
		if rec.negative {
			return signMinus
		}
		return signPlus
	default:
		if rec.negative && rec.nonZero() {
			return signMinus
		}
		return signNone
	}
}

func signParts(kind signKind, symbols Symbols) []Part {
	switch kind {
	case signMinus:
		return appendPart(nil, PartMinusSign, symbols.MinusSign)
	case signPlus:
		return appendPart(nil, PartPlusSign, symbols.PlusSign)
	default:
		return nil
	}
}
