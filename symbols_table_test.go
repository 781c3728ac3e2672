package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTableSymbolsInheritance(t *testing.T) {
	table := NewSymbolTable()

	tests := []struct {
		name   string
		locale string
		system string
		check  func(t *testing.T, s Symbols)
	}{
		{
			name:   "regional variant keeps parent separators",
			locale: "en-GB",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, ".", s.Decimal)
				assert.Equal(t, ",", s.Group)
				assert.Equal(t, "–", s.RangeSign)
			},
		},
		{
			name:   "indian grouping",
			locale: "en-IN",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, 3, s.PrimaryGroupSize)
				assert.Equal(t, 2, s.SecondaryGroupSize)
			},
		},
		{
			name:   "mexican spanish overrides separators",
			locale: "es-MX",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, ".", s.Decimal)
				assert.Equal(t, ",", s.Group)
				assert.Equal(t, "-", s.RangeSign)
			},
		},
		{
			name:   "underscore locale",
			locale: "de_AT",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, ",", s.Decimal)
				assert.Equal(t, "≈", s.ApproximatelySign)
			},
		},
		{
			name:   "likely script is dropped before the parent chain",
			locale: "zh-Hant-TW",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, "-", s.RangeSign)
				assert.Equal(t, "非數值", s.NaN)
			},
		},
		{
			name:   "default numbering system",
			locale: "ar",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, "٫", s.Decimal)
				require.Len(t, s.Digits, 10)
				assert.Equal(t, "٣", s.Digits[3])
			},
		},
		{
			name:   "inherited numbering system",
			locale: "ar-SA",
			check: func(t *testing.T, s Symbols) {
				require.Len(t, s.Digits, 10)
			},
		},
		{
			name:   "explicit latn",
			locale: "ar",
			system: "latn",
			check: func(t *testing.T, s Symbols) {
				assert.Equal(t, ".", s.Decimal)
				assert.Empty(t, s.Digits)
			},
		},
		{
			name:   "han decimal digits",
			locale: "zh-TW",
			system: "hanidec",
			check: func(t *testing.T, s Symbols) {
				require.Len(t, s.Digits, 10)
				assert.Equal(t, "〇", s.Digits[0])
				assert.Equal(t, "九", s.Digits[9])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := table.Symbols(tt.locale, tt.system)
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestSymbolTableMissingSymbols(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Symbols("sw", "")
	assert.ErrorIs(t, err, ErrMissingLocaleData)

	_, err = table.Symbols("en", "thai")
	assert.ErrorIs(t, err, ErrMissingLocaleData)

	_, err = table.Symbols("", "")
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestSymbolTableXTextFallback(t *testing.T) {
	table := NewSymbolTable(WithXTextFallback())

	s, err := table.Symbols("sw", "")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Decimal)
	assert.NotEmpty(t, s.MinusSign)

	_, err = table.Symbols("sw", "arab")
	assert.ErrorIs(t, err, ErrMissingLocaleData)

	// explicit data still wins
	s, err = table.Symbols("de", "")
	require.NoError(t, err)
	assert.Equal(t, "≈", s.ApproximatelySign)
}

func TestSymbolTableResolver(t *testing.T) {
	table := NewSymbolTable(WithTableResolver(StaticFallbackResolver{
		"pt-BR": {"es", "es"},
	}))

	s, err := table.Symbols("pt-BR", "")
	require.NoError(t, err)
	assert.Equal(t, ",", s.Decimal)
	assert.Equal(t, "-", s.RangeSign)

	affix, err := table.CurrencyAffix("pt-BR", "EUR", CurrencySymbol, PluralOther)
	require.NoError(t, err)
	assert.Equal(t, CurrencyAffix{Symbol: "€", Position: AffixSuffix, Spacing: "\u00a0"}, affix)

	_, err = table.Symbols("pt-PT", "")
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestSymbolTableLocaleData(t *testing.T) {
	t.Run("without builtins", func(t *testing.T) {
		table := NewSymbolTable(WithoutBuiltinData())
		assert.Empty(t, table.Locales())

		_, err := table.Symbols("en", "")
		assert.ErrorIs(t, err, ErrMissingLocaleData)
	})

	t.Run("custom locale", func(t *testing.T) {
		table := NewSymbolTable(WithoutBuiltinData(), WithLocaleData(LocaleData{
			Locale:  "en_GB",
			Symbols: map[string]Symbols{"latn": {Decimal: ","}},
		}))
		assert.Equal(t, []string{"en-GB"}, table.Locales())

		s, err := table.Symbols("en-GB", "")
		require.NoError(t, err)
		assert.Equal(t, ",", s.Decimal)
		assert.Equal(t, "", s.Group)
		assert.Equal(t, "-", s.MinusSign)
		assert.Equal(t, 3, s.PrimaryGroupSize)
	})

	t.Run("overrides builtin fields", func(t *testing.T) {
		table := NewSymbolTable(WithLocaleData(LocaleData{
			Locale:  "en",
			Symbols: map[string]Symbols{"latn": {ApproximatelySign: "≈"}},
			Currencies: map[string]CurrencyData{
				"sek": {Symbol: "SEK", Narrow: "kr"},
			},
		}))

		s, err := table.Symbols("en", "")
		require.NoError(t, err)
		assert.Equal(t, "≈", s.ApproximatelySign)
		assert.Equal(t, ".", s.Decimal)

		affix, err := table.CurrencyAffix("en", "SEK", CurrencyNarrowSymbol, PluralOther)
		require.NoError(t, err)
		assert.Equal(t, "kr", affix.Symbol)

		affix, err = table.CurrencyAffix("en", "USD", CurrencySymbol, PluralOther)
		require.NoError(t, err)
		assert.Equal(t, "$", affix.Symbol)
	})

	t.Run("locales are sorted", func(t *testing.T) {
		locales := NewSymbolTable().Locales()
		assert.IsNonDecreasing(t, locales)
		assert.Contains(t, locales, "en")
		assert.Contains(t, locales, "zh-TW")
	})
}

func TestSymbolTableCurrencyAffix(t *testing.T) {
	table := NewSymbolTable()

	tests := []struct {
		name     string
		locale   string
		code     string
		display  CurrencyDisplay
		category PluralCategory
		want     CurrencyAffix
	}{
		{name: "symbol", locale: "en", code: "USD", display: CurrencySymbol, want: CurrencyAffix{Symbol: "$", Position: AffixPrefix}},
		{name: "code", locale: "en", code: "USD", display: CurrencyCode, want: CurrencyAffix{Symbol: "USD", Position: AffixPrefix, Spacing: "\u00a0"}},
		{name: "name singular", locale: "en", code: "USD", display: CurrencyName, category: PluralOne, want: CurrencyAffix{Symbol: "US dollar", Position: AffixSuffix, Spacing: " "}},
		{name: "name plural", locale: "en", code: "USD", display: CurrencyName, category: PluralOther, want: CurrencyAffix{Symbol: "US dollars", Position: AffixSuffix, Spacing: " "}},
		{name: "name falls back to other", locale: "en", code: "JPY", display: CurrencyName, category: PluralOne, want: CurrencyAffix{Symbol: "Japanese yen", Position: AffixSuffix, Spacing: " "}},
		{name: "narrow", locale: "en", code: "MXN", display: CurrencyNarrowSymbol, want: CurrencyAffix{Symbol: "$", Position: AffixPrefix}},
		{name: "regional symbol", locale: "en", code: "MXN", display: CurrencySymbol, want: CurrencyAffix{Symbol: "MX$", Position: AffixPrefix}},
		{name: "narrow without data uses symbol", locale: "en", code: "CHF", display: CurrencyNarrowSymbol, want: CurrencyAffix{Symbol: "CHF", Position: AffixPrefix, Spacing: "\u00a0"}},
		{name: "symbol equal to code is spaced", locale: "en", code: "CHF", display: CurrencySymbol, want: CurrencyAffix{Symbol: "CHF", Position: AffixPrefix, Spacing: "\u00a0"}},
		{name: "suffix locale", locale: "de", code: "EUR", display: CurrencySymbol, want: CurrencyAffix{Symbol: "€", Position: AffixSuffix, Spacing: "\u00a0"}},
		{name: "local dollar", locale: "es-MX", code: "MXN", display: CurrencySymbol, want: CurrencyAffix{Symbol: "$", Position: AffixPrefix}},
		{name: "unknown currency uses code", locale: "en", code: "SEK", display: CurrencySymbol, want: CurrencyAffix{Symbol: "SEK", Position: AffixPrefix, Spacing: "\u00a0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.CurrencyAffix(tt.locale, tt.code, tt.display, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := table.CurrencyAffix("en", "SEK", CurrencyName, PluralOther)
	assert.ErrorIs(t, err, ErrMissingLocaleData)

	_, err = table.CurrencyAffix("sw", "USD", CurrencySymbol, PluralOther)
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestSymbolTableUnitPattern(t *testing.T) {
	table := NewSymbolTable()

	tests := []struct {
		name     string
		locale   string
		unit     string
		display  UnitDisplay
		category PluralCategory
		want     string
	}{
		{name: "short", locale: "en", unit: "kilometer", display: UnitShort, want: "{0} km"},
		{name: "long singular", locale: "en", unit: "kilometer", display: UnitLong, category: PluralOne, want: "{0} kilometer"},
		{name: "long plural", locale: "en", unit: "kilometer", display: UnitLong, category: PluralOther, want: "{0} kilometers"},
		{name: "narrow", locale: "en", unit: "celsius", display: UnitNarrow, want: "{0}°C"},
		{name: "inherited", locale: "en-AU", unit: "hour", display: UnitShort, want: "{0} hr"},
		{name: "category falls back to other", locale: "de", unit: "kilometer", display: UnitLong, category: PluralOne, want: "{0} Kilometer"},
		{name: "unspaced", locale: "zh-TW", unit: "kilometer", display: UnitNarrow, want: "{0}公里"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.UnitPattern(tt.locale, tt.unit, tt.display, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := table.UnitPattern("en", "furlong", UnitShort, PluralOther)
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestSymbolTableCompactPattern(t *testing.T) {
	table := NewSymbolTable()

	tests := []struct {
		name      string
		locale    string
		magnitude int
		display   CompactDisplay
		category  PluralCategory
		want      CompactPattern
	}{
		{name: "thousands", locale: "en", magnitude: 3, display: CompactShort, want: CompactPattern{Exponent: 3, Suffix: "K"}},
		{name: "hundred thousands", locale: "en", magnitude: 5, display: CompactShort, want: CompactPattern{Exponent: 3, Suffix: "K"}},
		{name: "long", locale: "en", magnitude: 6, display: CompactLong, want: CompactPattern{Exponent: 6, Suffix: " million"}},
		{name: "clamped to largest", locale: "en", magnitude: 20, display: CompactShort, want: CompactPattern{Exponent: 12, Suffix: "T"}},
		{name: "below first pattern", locale: "en", magnitude: 2, display: CompactShort, want: CompactPattern{}},
		{name: "unabbreviated thousands", locale: "de", magnitude: 4, display: CompactShort, want: CompactPattern{}},
		{name: "quoted literal", locale: "de", magnitude: 6, display: CompactShort, want: CompactPattern{Exponent: 6, Suffix: " Mio."}},
		{name: "plural singular", locale: "de", magnitude: 6, display: CompactLong, category: PluralOne, want: CompactPattern{Exponent: 6, Suffix: " Million"}},
		{name: "plural other", locale: "de", magnitude: 6, display: CompactLong, category: PluralOther, want: CompactPattern{Exponent: 6, Suffix: " Millionen"}},
		{name: "myriad", locale: "ja", magnitude: 4, display: CompactShort, want: CompactPattern{Exponent: 4, Suffix: "万"}},
		{name: "myriad thousands", locale: "ja", magnitude: 7, display: CompactShort, want: CompactPattern{Exponent: 4, Suffix: "万"}},
		{name: "hundred million", locale: "ja", magnitude: 8, display: CompactLong, want: CompactPattern{Exponent: 8, Suffix: "億"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := tt.category
			if category == "" {
				category = PluralOther
			}
			got, err := table.CompactPattern(tt.locale, tt.magnitude, tt.display, category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := table.CompactPattern("ar", 3, CompactShort, PluralOther)
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestParseCompactPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		magnitude int
		want      CompactPattern
	}{
		{pattern: "0K", magnitude: 3, want: CompactPattern{Exponent: 3, Suffix: "K"}},
		{pattern: "00K", magnitude: 4, want: CompactPattern{Exponent: 3, Suffix: "K"}},
		{pattern: "000 mil", magnitude: 5, want: CompactPattern{Exponent: 3, Suffix: " mil"}},
		{pattern: "0000 M", magnitude: 9, want: CompactPattern{Exponent: 6, Suffix: " M"}},
		{pattern: "US$0K", magnitude: 3, want: CompactPattern{Exponent: 3, Prefix: "US$", Suffix: "K"}},
		{pattern: "0", magnitude: 3, want: CompactPattern{}},
		{pattern: "K", magnitude: 3, want: CompactPattern{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCompactPattern(tt.pattern, tt.magnitude))
		})
	}
}

func TestSymbolTablePluralCategory(t *testing.T) {
	table := NewSymbolTable()

	tests := []struct {
		name     string
		locale   string
		operands PluralOperands
		want     PluralCategory
	}{
		{name: "english one", locale: "en", operands: operandsFromDigits("1", ""), want: PluralOne},
		{name: "english visible fraction", locale: "en", operands: operandsFromDigits("1", "0"), want: PluralOther},
		{name: "english many", locale: "en", operands: operandsFromDigits("5", ""), want: PluralOther},
		{name: "french zero is one", locale: "fr", operands: operandsFromDigits("0", ""), want: PluralOne},
		{name: "arabic few", locale: "ar", operands: operandsFromDigits("3", ""), want: PluralFew},
		{name: "japanese", locale: "ja", operands: operandsFromDigits("1", ""), want: PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.PluralCategory(tt.locale, tt.operands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := table.PluralCategory("!!", PluralOperands{})
	assert.ErrorIs(t, err, ErrMissingLocaleData)
}

func TestOperandsFromDigits(t *testing.T) {
	assert.Equal(t, PluralOperands{I: 12, V: 3, W: 2, F: 340, T: 34}, operandsFromDigits("12", "340"))
	assert.Equal(t, PluralOperands{I: 0}, operandsFromDigits("0", ""))
	assert.Equal(t, int64(1e18), operandsFromDigits("1000000000000000000000", "").I)
}

func TestLocaleParentChain(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "zh-Hant-TW", want: []string{"zh-TW", "zh-Hant", "zh"}},
		{locale: "en-GB", want: []string{"en-001", "en"}},
		{locale: "pt-BR", want: []string{"pt"}},
		{locale: "sr-Latn-RS", want: []string{"sr-Latn", "sr"}},
		{locale: "en", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, localeParentChain(tt.locale))
		})
	}
}
