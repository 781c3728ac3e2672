package numfmt

import (
	"errors"
	"fmt"
	"log/slog"
)

// NumberFormat binds a FormatConfig to a SymbolTable. It is immutable and
// safe for concurrent use.
type NumberFormat struct {
	cfg    *FormatConfig
	table  SymbolTable
	logger *slog.Logger
}

// FormatterOption configures a NumberFormat
type FormatterOption func(*NumberFormat) error

// WithLogger sets the logger used for debug and warning records.
func WithLogger(logger *slog.Logger) FormatterOption {
	return func(f *NumberFormat) error {
		if logger == nil {
			return errors.New("numfmt: nil logger")
		}
		f.logger = logger
		return nil
	}
}

// NewNumberFormat validates cfg and checks that table has symbols for it.
func NewNumberFormat(cfg *FormatConfig, table SymbolTable, opts ...FormatterOption) (*NumberFormat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: no symbol table", ErrMissingLocaleData)
	}

	f := &NumberFormat{
		cfg:    cfg,
		table:  table,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if _, err := table.Symbols(cfg.Locale, cfg.NumberingSystem); err != nil {
		f.warn("symbols unavailable", err)
		return nil, err
	}
	return f, nil
}

// New builds a config for locale and binds it to table in one step.
func New(locale string, table SymbolTable, opts ...Option) (*NumberFormat, error) {
	cfg, err := NewFormatConfig(locale, opts...)
	if err != nil {
		return nil, err
	}
	return NewNumberFormat(cfg, table)
}

func (f *NumberFormat) Config() *FormatConfig { return f.cfg }

func (f *NumberFormat) FormatToParts(v Value) ([]Part, error) {
	parts, err := Partition(f.cfg, f.table, v)
	if err != nil {
		f.warn("format failed", err, "value", v.String())
		return nil, err
	}
	return parts, nil
}

func (f *NumberFormat) Format(v Value) (string, error) {
	parts, err := f.FormatToParts(v)
	if err != nil {
		return "", err
	}
	return Concat(parts), nil
}

// FormatFloat64 formats f through its shortest decimal representation.
func (f *NumberFormat) FormatFloat64(x float64) (string, error) {
	return f.Format(NewValueFromFloat64(x))
}

func (f *NumberFormat) FormatRangeToParts(x, y Value) ([]Part, error) {
	parts, outcome, err := formatRange(f.cfg, f.table, x, y)
	if err != nil {
		f.warn("range format failed", err, "start", x.String(), "end", y.String())
		return nil, err
	}

	switch outcome {
	case rangeApproximate:
		f.logger.Debug("range endpoints display equal",
			"locale", f.cfg.Locale,
			"start", x.String(),
			"end", y.String(),
		)
	default:
		if elided := countElided(parts); elided > 0 {
			f.logger.Debug("range affixes collapsed",
				"locale", f.cfg.Locale,
				"shared_parts", elided,
			)
		}
	}
	return parts, nil
}

func (f *NumberFormat) FormatRange(x, y Value) (string, error) {
	parts, err := f.FormatRangeToParts(x, y)
	if err != nil {
		return "", err
	}
	return Concat(parts), nil
}

// countElided counts the affix parts CollapseRange retagged shared.
func countElided(parts []Part) int {
	n := 0
	for _, part := range parts {
		if part.Source == SourceShared && part.Type != PartLiteral {
			n++
		}
	}
	return n
}

// warn logs missing locale data at warn level; other errors are the
// caller's to report.
func (f *NumberFormat) warn(msg string, err error, args ...any) {
	if !errors.Is(err, ErrMissingLocaleData) {
		return
	}
	attrs := append([]any{
		"locale", f.cfg.Locale,
		"numbering_system", f.cfg.NumberingSystem,
		"error", err,
	}, args...)
	f.logger.Warn("numfmt: "+msg, attrs...)
}
