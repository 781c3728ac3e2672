package numfmt

import (
	"github.com/shopspring/decimal"
)

// numericRecord is a value after scaling, rounding and notation selection.
// Partition and PlainString both render from it, so they always agree on the
// digits shown.
type numericRecord struct {
	kind     valueKind
	negative bool
	zero     bool

	intDigits  string
	fracDigits string

	scientific bool
	exponent   int

	compact          CompactPattern
	compactMagnitude int
	category         PluralCategory
}

func (rec numericRecord) nonZero() bool {
	return rec.kind == kindInf || (rec.kind == kindFinite && !rec.zero)
}

func buildRecord(cfg *FormatConfig, table SymbolTable, v Value) (numericRecord, error) {
	rec := numericRecord{
		kind:     v.kind,
		negative: v.Signbit(),
		category: PluralOther,
	}
	if !v.IsFinite() {
		return rec, nil
	}

	d := v.Decimal()
	if cfg.Style == StylePercent {
		d = d.Shift(2)
	}

	var (
		rd  roundedDigits
		err error
	)
	switch cfg.Notation {
	case NotationScientific, NotationEngineering:
		rec.scientific = true
		rd, rec.exponent = roundScientific(d, cfg.Notation, cfg.Rounding)
	case NotationCompact:
		rd, rec.compact, rec.compactMagnitude, err = roundCompact(d, cfg, table)
	default:
		rd = applyRounding(d, cfg.Rounding)
	}
	if err != nil {
		return numericRecord{}, err
	}

	rec.zero = rd.value.IsZero()
	rec.intDigits, rec.fracDigits = rd.digitStrings(cfg.Rounding.MinimumIntegerDigits)

	rec.category, err = table.PluralCategory(cfg.Locale, operandsFromDigits(rec.intDigits, rec.fracDigits))
	if err != nil {
		return numericRecord{}, err
	}

	if rec.compact.Exponent != 0 && rec.category != PluralOther {
		// the exponent is fixed by the magnitude; only the text varies by plural
		pattern, err := table.CompactPattern(cfg.Locale, rec.compactMagnitude, cfg.CompactDisplay, rec.category)
		if err != nil {
			return numericRecord{}, err
		}
		if pattern.Exponent == rec.compact.Exponent {
			rec.compact = pattern
		}
	}

	return rec, nil
}

func exponentFor(m int, notation Notation) int {
	if notation != NotationEngineering {
		return m
	}
	if m >= 0 {
		return m / 3 * 3
	}
	return -((-m + 2) / 3 * 3)
}

// roundScientific normalizes d to a mantissa in [1, 10), or [1, 1000) for
// engineering notation, and rounds it. A carry moves to the next exponent.
func roundScientific(d decimal.Decimal, notation Notation, r Rounding) (roundedDigits, int) {
	if d.IsZero() {
		return applyRounding(d, r), 0
	}

	limit := 0
	if notation == NotationEngineering {
		limit = 2
	}

	exponent := exponentFor(magnitude(d), notation)
	var rd roundedDigits
	for attempt := 0; attempt < 2; attempt++ {
		rd = applyRounding(d.Shift(int32(-exponent)), r)
		m := magnitude(rd.value)
		if rd.value.IsZero() || m <= limit {
			break
		}
		exponent = exponentFor(exponent+m, notation)
	}
	return rd, exponent
}

// roundCompact divides d by the power of ten of its compact pattern and
// rounds the quotient. When rounding carries into a magnitude with another
// pattern (999.95K to 1M) the pattern is selected again. It also returns the
// magnitude the pattern was selected for.
func roundCompact(d decimal.Decimal, cfg *FormatConfig, table SymbolTable) (roundedDigits, CompactPattern, int, error) {
	if d.IsZero() {
		return applyRounding(d, cfg.Rounding), CompactPattern{}, 0, nil
	}

	m := magnitude(d)
	var (
		rd      roundedDigits
		pattern CompactPattern
		lookup  int
	)
	for attempt := 0; attempt < 2; attempt++ {
		var err error
		lookup = m
		pattern, err = table.CompactPattern(cfg.Locale, lookup, cfg.CompactDisplay, PluralOther)
		if err != nil {
			return roundedDigits{}, CompactPattern{}, 0, err
		}
		rd = applyRounding(d.Shift(int32(-pattern.Exponent)), cfg.Rounding)
		if rd.value.IsZero() {
			break
		}
		m = magnitude(rd.value) + pattern.Exponent
		if m == lookup {
			break
		}
	}
	return rd, pattern, lookup, nil
}
