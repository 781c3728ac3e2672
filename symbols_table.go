package numfmt

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LocaleData contains the number formatting data of one locale. Empty fields
// are inherited from parent locales ("en-IN" inherits from "en").
type LocaleData struct {
	Locale          string                  `json:"locale" yaml:"locale"`
	NumberingSystem string                  `json:"numbering_system,omitempty" yaml:"numbering_system,omitempty"`
	Symbols         map[string]Symbols      `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	CurrencyFormat  CurrencyFormat          `json:"currency_format,omitempty" yaml:"currency_format,omitempty"`
	Currencies      map[string]CurrencyData `json:"currencies,omitempty" yaml:"currencies,omitempty"`
	Units           map[string]UnitData     `json:"units,omitempty" yaml:"units,omitempty"`
	Compact         CompactData             `json:"compact,omitempty" yaml:"compact,omitempty"`
}

// CurrencyFormat places currency symbols relative to the number.
type CurrencyFormat struct {
	Position AffixPosition `json:"position,omitempty" yaml:"position,omitempty"`
	Spacing  string        `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	// CodeSpacing separates ISO codes from the number; defaults to a no-break space.
	CodeSpacing string `json:"code_spacing,omitempty" yaml:"code_spacing,omitempty"`
}

// CurrencyData holds the display strings of one currency.
type CurrencyData struct {
	Symbol      string                    `json:"symbol" yaml:"symbol"`
	Narrow      string                    `json:"narrow,omitempty" yaml:"narrow,omitempty"`
	DisplayName map[PluralCategory]string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// UnitData holds unit patterns per display width and plural category.
type UnitData struct {
	Long   map[PluralCategory]string `json:"long,omitempty" yaml:"long,omitempty"`
	Short  map[PluralCategory]string `json:"short,omitempty" yaml:"short,omitempty"`
	Narrow map[PluralCategory]string `json:"narrow,omitempty" yaml:"narrow,omitempty"`
}

// CompactData maps a magnitude to patterns such as "0K" or "00 thousand".
type CompactData struct {
	Short map[int]map[PluralCategory]string `json:"short,omitempty" yaml:"short,omitempty"`
	Long  map[int]map[PluralCategory]string `json:"long,omitempty" yaml:"long,omitempty"`
}

const defaultNumberingSystem = "latn"

// StaticSymbolTable is an in memory SymbolTable, read only after construction.
type StaticSymbolTable struct {
	data     map[string]LocaleData
	resolver FallbackResolver
	xtext    bool
}

var _ SymbolTable = &StaticSymbolTable{}

type tableConfig struct {
	data     []LocaleData
	resolver FallbackResolver
	xtext    bool
	builtins bool
}

type TableOption func(*tableConfig)

// WithLocaleData merges data over the built-in tables; later entries win.
func WithLocaleData(data ...LocaleData) TableOption {
	return func(tc *tableConfig) {
		tc.data = append(tc.data, data...)
	}
}

// WithTableResolver adds explicit fallback chains consulted after the
// locale's own parent chain.
func WithTableResolver(resolver FallbackResolver) TableOption {
	return func(tc *tableConfig) {
		tc.resolver = resolver
	}
}

// WithXTextFallback derives separators and currency symbols from
// golang.org/x/text when a locale has no explicit data for them.
func WithXTextFallback() TableOption {
	return func(tc *tableConfig) {
		tc.xtext = true
	}
}

// WithoutBuiltinData starts from an empty table.
func WithoutBuiltinData() TableOption {
	return func(tc *tableConfig) {
		tc.builtins = false
	}
}

// NewSymbolTable builds an immutable table seeded with the built-in locale data.
func NewSymbolTable(opts ...TableOption) *StaticSymbolTable {
	cfg := tableConfig{builtins: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	data := make(map[string]LocaleData)
	if cfg.builtins {
		for locale, entry := range builtinLocaleData {
			merged := LocaleData{Locale: locale}
			mergeLocaleData(&merged, entry)
			data[locale] = merged
		}
	}

	for _, entry := range cfg.data {
		locale := normalizeLocale(entry.Locale)
		if locale == "" {
			continue
		}
		merged := data[locale]
		merged.Locale = locale
		mergeLocaleData(&merged, entry)
		data[locale] = merged
	}

	return &StaticSymbolTable{
		data:     data,
		resolver: cfg.resolver,
		xtext:    cfg.xtext,
	}
}

// Locales returns the locales with explicit data, sorted.
func (t *StaticSymbolTable) Locales() []string {
	locales := make([]string, 0, len(t.data))
	for locale := range t.data {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

func (t *StaticSymbolTable) Symbols(locale, numberingSystem string) (Symbols, error) {
	candidates := t.candidates(locale)
	system := numberingSystem
	if system == "" {
		system = t.defaultSystem(candidates)
	}

	// inherit field by field, the most specific locale last
	var symbols Symbols
	found := false
	for i := len(candidates) - 1; i >= 0; i-- {
		if entry, ok := t.data[candidates[i]].Symbols[system]; ok {
			symbols = mergeSymbols(symbols, entry)
			found = true
		}
	}
	if found {
		return symbols.withDefaults(), nil
	}

	if t.xtext && system == defaultNumberingSystem {
		if symbols, err := XTextSymbols(locale); err == nil {
			return symbols, nil
		}
	}

	return Symbols{}, fmt.Errorf("%w: symbols for locale %q numbering system %q", ErrMissingLocaleData, locale, system)
}

func (t *StaticSymbolTable) CurrencyAffix(locale, code string, display CurrencyDisplay, category PluralCategory) (CurrencyAffix, error) {
	candidates := t.candidates(locale)

	var format CurrencyFormat
	for _, candidate := range candidates {
		if f := t.data[candidate].CurrencyFormat; f.Position != "" {
			format = f
			break
		}
	}
	if format.Position == "" {
		return CurrencyAffix{}, fmt.Errorf("%w: currency format for locale %q", ErrMissingLocaleData, locale)
	}

	currency, found := CurrencyData{}, false
	for _, candidate := range candidates {
		if c, ok := t.data[candidate].Currencies[code]; ok {
			currency, found = c, true
			break
		}
	}

	affix := CurrencyAffix{Position: format.Position, Spacing: format.Spacing}

	switch display {
	case CurrencyCode:
		affix.Symbol = code
	case CurrencyName:
		name, ok := pluralVariant(currency.DisplayName, category)
		if !found || !ok {
			return CurrencyAffix{}, fmt.Errorf("%w: display name for currency %q in locale %q", ErrMissingLocaleData, code, locale)
		}
		return CurrencyAffix{Symbol: name, Position: AffixSuffix, Spacing: " "}, nil
	case CurrencyNarrowSymbol:
		affix.Symbol = firstNonEmpty(currency.Narrow, currency.Symbol)
		if affix.Symbol == "" && t.xtext {
			affix.Symbol, _ = xtextCurrencySymbol(locale, code, true)
		}
	default:
		affix.Symbol = currency.Symbol
		if affix.Symbol == "" && t.xtext {
			affix.Symbol, _ = xtextCurrencySymbol(locale, code, false)
		}
	}

	if affix.Symbol == "" {
		affix.Symbol = code
	}
	// an ISO code is spaced from the digits like any alphabetic symbol
	if affix.Symbol == code {
		affix.Spacing = format.CodeSpacing
		if affix.Spacing == "" {
			affix.Spacing = "\u00a0"
		}
	}
	return affix, nil
}

func (t *StaticSymbolTable) UnitPattern(locale, unit string, display UnitDisplay, category PluralCategory) (string, error) {
	for _, candidate := range t.candidates(locale) {
		data, ok := t.data[candidate].Units[unit]
		if !ok {
			continue
		}

		var variants map[PluralCategory]string
		switch display {
		case UnitLong:
			variants = data.Long
		case UnitNarrow:
			variants = data.Narrow
		default:
			variants = data.Short
		}

		if pattern, ok := pluralVariant(variants, category); ok {
			return pattern, nil
		}
	}

	return "", fmt.Errorf("%w: %s unit pattern %q for locale %q", ErrMissingLocaleData, display, unit, locale)
}

func (t *StaticSymbolTable) PluralCategory(locale string, operands PluralOperands) (PluralCategory, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: plural rules for locale %q: %v", ErrMissingLocaleData, locale, err)
	}
	return CardinalCategory(tag, operands), nil
}

func (t *StaticSymbolTable) CompactPattern(locale string, magnitude int, display CompactDisplay, category PluralCategory) (CompactPattern, error) {
	var patterns map[int]map[PluralCategory]string
	for _, candidate := range t.candidates(locale) {
		compact := t.data[candidate].Compact
		if display == CompactLong && len(compact.Long) > 0 {
			patterns = compact.Long
			break
		}
		if len(compact.Short) > 0 {
			patterns = compact.Short
			break
		}
	}
	if len(patterns) == 0 {
		return CompactPattern{}, fmt.Errorf("%w: compact patterns for locale %q", ErrMissingLocaleData, locale)
	}

	largest := 0
	for key := range patterns {
		if key > largest {
			largest = key
		}
	}
	key := magnitude
	if key > largest {
		key = largest
	}

	pattern, ok := pluralVariant(patterns[key], category)
	if !ok {
		return CompactPattern{}, nil
	}
	return parseCompactPattern(pattern, key), nil
}

// parseCompactPattern splits a CLDR compact pattern around its run of zeros.
// A pattern made only of "0" leaves the value unabbreviated.
func parseCompactPattern(pattern string, magnitude int) CompactPattern {
	pattern = strings.ReplaceAll(pattern, "'", "")
	start := strings.IndexByte(pattern, '0')
	if start < 0 {
		return CompactPattern{}
	}
	end := start
	for end < len(pattern) && pattern[end] == '0' {
		end++
	}

	prefix, suffix := pattern[:start], pattern[end:]
	if prefix == "" && suffix == "" {
		return CompactPattern{}
	}
	return CompactPattern{
		Exponent: magnitude - (end - start) + 1,
		Prefix:   prefix,
		Suffix:   suffix,
	}
}

func (t *StaticSymbolTable) defaultSystem(candidates []string) string {
	for _, candidate := range candidates {
		if system := t.data[candidate].NumberingSystem; system != "" {
			return system
		}
	}
	return defaultNumberingSystem
}

// candidates returns the lookup chain: the locale, its parents, then any
// explicit fallbacks with their parents.
func (t *StaticSymbolTable) candidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)
	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	if t.resolver != nil {
		for _, fallback := range t.resolver.Resolve(locale) {
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}

// withDefaults inherits unset symbols from the CLDR root locale.
func (s Symbols) withDefaults() Symbols {
	for _, field := range []struct {
		value *string
		root  string
	}{
		{&s.Decimal, rootSymbols.Decimal},
		{&s.MinusSign, rootSymbols.MinusSign},
		{&s.PlusSign, rootSymbols.PlusSign},
		{&s.ApproximatelySign, rootSymbols.ApproximatelySign},
		{&s.RangeSign, rootSymbols.RangeSign},
		{&s.PercentSign, rootSymbols.PercentSign},
		{&s.ExponentSeparator, rootSymbols.ExponentSeparator},
		{&s.NaN, rootSymbols.NaN},
		{&s.Infinity, rootSymbols.Infinity},
	} {
		if *field.value == "" {
			*field.value = field.root
		}
	}
	if s.PrimaryGroupSize <= 0 {
		s.PrimaryGroupSize = 3
	}
	if s.SecondaryGroupSize <= 0 {
		s.SecondaryGroupSize = s.PrimaryGroupSize
	}
	if s.MinimumGroupingDigits <= 0 {
		s.MinimumGroupingDigits = 1
	}
	if len(s.Digits) != 10 {
		s.Digits = nil
	}
	return s
}

// mergeLocaleData merges source into dest (source takes precedence)
func mergeLocaleData(dest *LocaleData, source LocaleData) {
	if source.NumberingSystem != "" {
		dest.NumberingSystem = source.NumberingSystem
	}

	if source.Symbols != nil {
		if dest.Symbols == nil {
			dest.Symbols = make(map[string]Symbols)
		}
		for k, v := range source.Symbols {
			dest.Symbols[k] = mergeSymbols(dest.Symbols[k], v)
		}
	}

	if source.CurrencyFormat.Position != "" {
		dest.CurrencyFormat = source.CurrencyFormat
	}

	if source.Currencies != nil {
		if dest.Currencies == nil {
			dest.Currencies = make(map[string]CurrencyData)
		}
		for k, v := range source.Currencies {
			v.DisplayName = clonePluralMap(v.DisplayName)
			dest.Currencies[strings.ToUpper(k)] = v
		}
	}

	if source.Units != nil {
		if dest.Units == nil {
			dest.Units = make(map[string]UnitData)
		}
		for k, v := range source.Units {
			dest.Units[k] = UnitData{
				Long:   clonePluralMap(v.Long),
				Short:  clonePluralMap(v.Short),
				Narrow: clonePluralMap(v.Narrow),
			}
		}
	}

	dest.Compact.Short = mergeCompactPatterns(dest.Compact.Short, source.Compact.Short)
	dest.Compact.Long = mergeCompactPatterns(dest.Compact.Long, source.Compact.Long)
}

// mergeSymbols overrides the set fields of dest with source.
func mergeSymbols(dest, source Symbols) Symbols {
	for _, field := range []struct {
		dest   *string
		source string
	}{
		{&dest.Decimal, source.Decimal},
		{&dest.Group, source.Group},
		{&dest.MinusSign, source.MinusSign},
		{&dest.PlusSign, source.PlusSign},
		{&dest.ApproximatelySign, source.ApproximatelySign},
		{&dest.RangeSign, source.RangeSign},
		{&dest.PercentSign, source.PercentSign},
		{&dest.ExponentSeparator, source.ExponentSeparator},
		{&dest.NaN, source.NaN},
		{&dest.Infinity, source.Infinity},
		{&dest.PercentSpacing, source.PercentSpacing},
	} {
		if field.source != "" {
			*field.dest = field.source
		}
	}

	if len(source.Digits) > 0 {
		dest.Digits = append([]string(nil), source.Digits...)
	}
	if source.PrimaryGroupSize > 0 {
		dest.PrimaryGroupSize = source.PrimaryGroupSize
	}
	if source.SecondaryGroupSize > 0 {
		dest.SecondaryGroupSize = source.SecondaryGroupSize
	}
	if source.MinimumGroupingDigits > 0 {
		dest.MinimumGroupingDigits = source.MinimumGroupingDigits
	}
	return dest
}

func mergeCompactPatterns(dest, source map[int]map[PluralCategory]string) map[int]map[PluralCategory]string {
	if source == nil {
		return dest
	}
	if dest == nil {
		dest = make(map[int]map[PluralCategory]string, len(source))
	}
	for magnitude, variants := range source {
		dest[magnitude] = clonePluralMap(variants)
	}
	return dest
}

func clonePluralMap(source map[PluralCategory]string) map[PluralCategory]string {
	if source == nil {
		return nil
	}
	target := make(map[PluralCategory]string, len(source))
	for key, value := range source {
		target[key] = value
	}
	return target
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
