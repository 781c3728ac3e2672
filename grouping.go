package numfmt

import "strings"

// groupInteger splits ASCII integer digits into integer and group parts.
// Grouping applies once the integer has at least primary + minimum grouping
// digits; groups left of the first use the secondary size (3/2 in en-IN).
func groupInteger(digits string, symbols Symbols, useGrouping bool) []Part {
	primary := symbols.PrimaryGroupSize
	secondary := symbols.SecondaryGroupSize
	minimum := symbols.MinimumGroupingDigits
	if primary <= 0 {
		primary = 3
	}
	if secondary <= 0 {
		secondary = primary
	}
	if minimum <= 0 {
		minimum = 1
	}

	if !useGrouping || symbols.Group == "" || len(digits) < primary+minimum {
		return []Part{{Type: PartInteger, Value: localizeDigits(digits, symbols.Digits)}}
	}

	groups := []string{digits[len(digits)-primary:]}
	rest := digits[:len(digits)-primary]
	for len(rest) > secondary {
		groups = append(groups, rest[len(rest)-secondary:])
		rest = rest[:len(rest)-secondary]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	parts := make([]Part, 0, len(groups)*2-1)
	for i := len(groups) - 1; i >= 0; i-- {
		parts = append(parts, Part{Type: PartInteger, Value: localizeDigits(groups[i], symbols.Digits)})
		if i > 0 {
			parts = append(parts, Part{Type: PartGroup, Value: symbols.Group})
		}
	}
	return parts
}

// localizeDigits maps ASCII digits to the numbering system glyphs.
func localizeDigits(ascii string, digits []string) string {
	if len(digits) != 10 {
		return ascii
	}
	var b strings.Builder
	b.Grow(len(ascii) * 3)
	for i := 0; i < len(ascii); i++ {
		c := ascii[i]
		if c >= '0' && c <= '9' {
			b.WriteString(digits[c-'0'])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
