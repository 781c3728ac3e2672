package numfmt

import (
	"fmt"
	"strconv"
)

// Partition formats v into typed parts. Concatenating the part values gives
// the display string. The config is validated first and errors from the
// symbol table are returned unchanged.
func Partition(cfg *FormatConfig, table SymbolTable, v Value) ([]Part, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no symbol table", ErrMissingLocaleData)
	}

	symbols, err := table.Symbols(cfg.Locale, cfg.NumberingSystem)
	if err != nil {
		return nil, err
	}

	parts, _, err := partitionValue(cfg, table, symbols, v)
	return parts, err
}

// partitionValue formats a value against already resolved symbols and also
// returns the record the parts were rendered from.
func partitionValue(cfg *FormatConfig, table SymbolTable, symbols Symbols, v Value) ([]Part, numericRecord, error) {
	rec, err := buildRecord(cfg, table, v)
	if err != nil {
		return nil, numericRecord{}, err
	}

	sign := signParts(signFor(rec, cfg.SignDisplay), symbols)
	parts, err := wrapStyle(cfg, table, symbols, rec, sign, numberParts(rec, symbols, cfg.UseGrouping))
	if err != nil {
		return nil, numericRecord{}, err
	}
	return parts, rec, nil
}

// numberParts renders the unsigned numeric core: digits, separators,
// exponent and compact affix.
func numberParts(rec numericRecord, symbols Symbols, useGrouping bool) []Part {
	switch rec.kind {
	case kindNaN:
		return appendPart(nil, PartNaN, symbols.NaN)
	case kindInf:
		return appendPart(nil, PartInfinity, symbols.Infinity)
	}

	parts := make([]Part, 0, 8)
	parts = append(parts, textParts(rec.compact.Prefix, PartCompact)...)
	parts = append(parts, groupInteger(rec.intDigits, symbols, useGrouping)...)

	if rec.fracDigits != "" {
		parts = appendPart(parts, PartDecimal, symbols.Decimal)
		parts = appendPart(parts, PartFraction, localizeDigits(rec.fracDigits, symbols.Digits))
	}

	if rec.scientific {
		parts = appendPart(parts, PartExponentSeparator, symbols.ExponentSeparator)
		exponent := rec.exponent
		if exponent < 0 {
			parts = appendPart(parts, PartExponentMinusSign, symbols.MinusSign)
			exponent = -exponent
		}
		parts = appendPart(parts, PartExponentInteger, localizeDigits(strconv.Itoa(exponent), symbols.Digits))
	}

	parts = append(parts, textParts(rec.compact.Suffix, PartCompact)...)
	return parts
}
