package numfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// PlainString renders v in a locale independent form,
// [sign]int[.frac][E exp][compact], from the same rounded digits Partition
// uses. Two values with equal plain strings display identically.
func PlainString(cfg *FormatConfig, table SymbolTable, v Value) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if table == nil {
		return "", fmt.Errorf("%w: no symbol table", ErrMissingLocaleData)
	}

	rec, err := buildRecord(cfg, table, v)
	if err != nil {
		return "", err
	}
	return rec.plain(cfg.SignDisplay), nil
}

func (rec numericRecord) plain(display SignDisplay) string {
	var b strings.Builder

	switch signFor(rec, display) {
	case signMinus:
		b.WriteByte('-')
	case signPlus:
		b.WriteByte('+')
	}

	switch rec.kind {
	case kindNaN:
		b.WriteString("NaN")
		return b.String()
	case kindInf:
		b.WriteString("Infinity")
		return b.String()
	}

	b.WriteString(rec.intDigits)
	if rec.fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(rec.fracDigits)
	}
	if rec.scientific {
		b.WriteByte('E')
		b.WriteString(strconv.Itoa(rec.exponent))
	}
	if rec.compact.Exponent != 0 {
		b.WriteString(strings.TrimSpace(rec.compact.Prefix + rec.compact.Suffix))
	}
	return b.String()
}
