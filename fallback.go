package numfmt

// FallbackResolver supplies extra locales a SymbolTable consults after the
// requested locale and its parents.
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps a locale to an explicit fallback chain.
type StaticFallbackResolver map[string][]string

func (s StaticFallbackResolver) Resolve(locale string) []string {
	chain := s[normalizeLocale(locale)]
	if len(chain) == 0 {
		return nil
	}
	return normalizeLocaleList(chain)
}
