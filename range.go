package numfmt

import "fmt"

// FormatRange formats the range x to y. Each endpoint is partitioned as if
// formatted alone. When both display the same digits the result is that value
// marked approximate, every part tagged shared. Otherwise the endpoints are
// joined by the locale range sign and passed through CollapseRange.
//
// NaN and infinite endpoints fail with ErrInvalidRangeInput.
func FormatRange(cfg *FormatConfig, table SymbolTable, x, y Value) ([]Part, error) {
	parts, _, err := formatRange(cfg, table, x, y)
	return parts, err
}

// rangeOutcome reports how a range was rendered.
type rangeOutcome uint8

const (
	rangeSpan rangeOutcome = iota
	rangeApproximate
)

func formatRange(cfg *FormatConfig, table SymbolTable, x, y Value) ([]Part, rangeOutcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, rangeSpan, err
	}
	if !x.IsFinite() || !y.IsFinite() {
		return nil, rangeSpan, fmt.Errorf("%w: range %s to %s", ErrInvalidRangeInput, x, y)
	}
	if table == nil {
		return nil, rangeSpan, fmt.Errorf("%w: no symbol table", ErrMissingLocaleData)
	}

	symbols, err := table.Symbols(cfg.Locale, cfg.NumberingSystem)
	if err != nil {
		return nil, rangeSpan, err
	}

	startParts, startRec, err := partitionValue(cfg, table, symbols, x)
	if err != nil {
		return nil, rangeSpan, err
	}
	endParts, endRec, err := partitionValue(cfg, table, symbols, y)
	if err != nil {
		return nil, rangeSpan, err
	}

	if startRec.plain(cfg.SignDisplay) == endRec.plain(cfg.SignDisplay) {
		return tagParts(MarkApproximate(symbols, startParts), SourceShared), rangeApproximate, nil
	}

	parts := make([]Part, 0, len(startParts)+len(endParts)+1)
	parts = append(parts, tagParts(startParts, SourceStartRange)...)
	parts = append(parts, Part{Type: PartLiteral, Value: symbols.RangeSign, Source: SourceShared})
	parts = append(parts, tagParts(endParts, SourceEndRange)...)

	return CollapseRange(parts), rangeSpan, nil
}
