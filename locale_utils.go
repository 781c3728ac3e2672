package numfmt

import (
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the CLDR parents of locale, closest first,
// without the root locale. A script subtag that is the likely script for the
// region is dropped first, so "zh-Hant-TW" tries "zh-TW" before "zh-Hant".
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	if regional := regionalForm(locale); regional != "" && regional != locale {
		seen[regional] = struct{}{}
		chain = append(chain, regional)
	}

	// x/text parents stop at root for some scripts ("zh-Hant" parents to
	// "und"), so trimming subtags takes over where it ends
	for current := locale; ; {
		next := localeParentTag(current)
		if _, exists := seen[next]; exists || next == "" {
			next = trimSubtag(current)
		}
		if _, exists := seen[next]; exists || next == "" {
			return chain
		}
		seen[next] = struct{}{}
		chain = append(chain, next)
		current = next
	}
}

// regionalForm returns locale as language-region when its explicit script is
// the likely script for that pair, and "" otherwise.
func regionalForm(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	script, scriptConf := tag.Script()
	region, regionConf := tag.Region()
	if scriptConf != language.Exact || regionConf != language.Exact {
		return ""
	}

	short, err := language.Compose(base, region)
	if err != nil {
		return ""
	}
	if likely, _ := short.Script(); likely != script {
		return ""
	}
	return short.String()
}

func trimSubtag(locale string) string {
	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// normalizeLocaleList normalizes and de-duplicates locales, keeping order.
func normalizeLocaleList(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	return result
}
