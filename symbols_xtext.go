package numfmt

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// XTextSymbols derives the separators, minus sign, digit glyphs, grouping
// sizes and percent spacing of locale from golang.org/x/text number
// formatting. Symbols x/text does not expose keep their root values.
func XTextSymbols(locale string) (Symbols, error) {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return Symbols{}, fmt.Errorf("%w: x/text symbols for locale %q: %v", ErrMissingLocaleData, locale, err)
	}

	p := message.NewPrinter(tag)
	symbols := rootSymbols

	digits := make([]string, 10)
	ascii := true
	for d := 0; d < 10; d++ {
		digits[d] = p.Sprintf("%v", number.Decimal(d))
		if digits[d] != string(rune('0'+d)) {
			ascii = false
		}
	}
	if !ascii {
		symbols.Digits = digits
	}
	isDigit := digitMatcher(digits)

	// digits and separators alternate in the sample: 1,234,567,890.5
	sample := p.Sprintf("%v", number.Decimal(1234567890.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	separators, widths := splitDigitRuns(sample, isDigit)
	if len(separators) > 0 && len(widths) > 1 {
		symbols.Decimal = separators[len(separators)-1]
		intWidths := widths[:len(widths)-1]
		if len(separators) > 1 {
			symbols.Group = separators[0]
			symbols.PrimaryGroupSize = intWidths[len(intWidths)-1]
			symbols.SecondaryGroupSize = symbols.PrimaryGroupSize
			if len(intWidths) > 2 {
				symbols.SecondaryGroupSize = intWidths[len(intWidths)-2]
			}
		}
	}

	if symbols.Group != "" {
		small := p.Sprintf("%v", number.Decimal(1234))
		if !strings.Contains(small, symbols.Group) {
			symbols.MinimumGroupingDigits = 2
		}
	}

	if minus := stripDigits(p.Sprintf("%v", number.Decimal(-1)), isDigit); minus != "" {
		symbols.MinusSign = minus
	}

	percent := stripDigits(p.Sprintf("%v", number.Percent(0.5)), isDigit)
	if sign := strings.TrimFunc(percent, unicode.IsSpace); sign != "" {
		symbols.PercentSign = sign
		symbols.PercentSpacing = strings.TrimSuffix(percent, sign)
		if strings.HasPrefix(percent, sign) {
			symbols.PercentSpacing = ""
		}
	}

	return symbols, nil
}

// xtextCurrencySymbol returns the x/text symbol for an ISO 4217 code.
func xtextCurrencySymbol(locale, code string, narrow bool) (string, bool) {
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return "", false
	}

	p := message.NewPrinter(language.Make(normalizeLocale(locale)))
	var symbol string
	if narrow {
		symbol = p.Sprintf("%v", currency.NarrowSymbol(unit))
	} else {
		symbol = p.Sprintf("%v", currency.Symbol(unit))
	}

	symbol = strings.TrimSpace(symbol)
	return symbol, symbol != ""
}

func digitMatcher(digits []string) func(r rune) bool {
	set := make(map[rune]struct{}, 20)
	for _, digit := range digits {
		for _, r := range digit {
			set[r] = struct{}{}
		}
	}
	return func(r rune) bool {
		if r >= '0' && r <= '9' {
			return true
		}
		_, ok := set[r]
		return ok
	}
}

// splitDigitRuns returns the non digit runs of s and the width of every
// digit run.
func splitDigitRuns(s string, isDigit func(rune) bool) ([]string, []int) {
	var separators []string
	var widths []int
	var current strings.Builder
	width := 0

	for _, r := range s {
		if isDigit(r) {
			if current.Len() > 0 {
				if width > 0 || len(widths) > 0 {
					separators = append(separators, current.String())
				}
				current.Reset()
			}
			width++
			continue
		}
		if width > 0 {
			widths = append(widths, width)
			width = 0
		}
		current.WriteRune(r)
	}
	if width > 0 {
		widths = append(widths, width)
	}
	return separators, widths
}

func stripDigits(s string, isDigit func(rune) bool) string {
	return strings.Map(func(r rune) rune {
		if isDigit(r) {
			return -1
		}
		return r
	}, s)
}
