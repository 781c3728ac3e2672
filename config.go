package numfmt

import (
	"fmt"
	"strings"

	"github.com/govalues/money"
	"golang.org/x/text/language"
)

type Style string

const (
	StyleDecimal  Style = "decimal"
	StylePercent  Style = "percent"
	StyleCurrency Style = "currency"
	StyleUnit     Style = "unit"
)

type Notation string

const (
	NotationStandard    Notation = "standard"
	NotationScientific  Notation = "scientific"
	NotationEngineering Notation = "engineering"
	NotationCompact     Notation = "compact"
)

type CompactDisplay string

const (
	CompactShort CompactDisplay = "short"
	CompactLong  CompactDisplay = "long"
)

// SignDisplay controls when an explicit sign glyph is emitted.
type SignDisplay string

const (
	SignAuto       SignDisplay = "auto"
	SignAlways     SignDisplay = "always"
	SignNever      SignDisplay = "never"
	SignExceptZero SignDisplay = "exceptZero"
	SignNegative   SignDisplay = "negative"
)

type CurrencyDisplay string

const (
	CurrencySymbol       CurrencyDisplay = "symbol"
	CurrencyNarrowSymbol CurrencyDisplay = "narrowSymbol"
	CurrencyCode         CurrencyDisplay = "code"
	CurrencyName         CurrencyDisplay = "name"
)

type UnitDisplay string

const (
	UnitShort  UnitDisplay = "short"
	UnitNarrow UnitDisplay = "narrow"
	UnitLong   UnitDisplay = "long"
)

// RoundingMode selects how a value is brought to the configured precision.
type RoundingMode string

const (
	RoundHalfEven   RoundingMode = "halfEven"
	RoundHalfExpand RoundingMode = "halfExpand"
	RoundHalfTrunc  RoundingMode = "halfTrunc"
	RoundHalfCeil   RoundingMode = "halfCeil"
	RoundHalfFloor  RoundingMode = "halfFloor"
	RoundCeil       RoundingMode = "ceil"
	RoundFloor      RoundingMode = "floor"
	RoundExpand     RoundingMode = "expand"
	RoundTrunc      RoundingMode = "trunc"
)

// RoundingStrategy names the single active precision rule.
type RoundingStrategy string

const (
	RoundFractionDigits    RoundingStrategy = "fractionDigits"
	RoundSignificantDigits RoundingStrategy = "significantDigits"
	RoundIncrement         RoundingStrategy = "increment"
	// RoundCompact keeps two significant digits below 10 and whole numbers
	// above, the default for compact notation.
	RoundCompact RoundingStrategy = "compact"
)

var validIncrements = map[int]struct{}{
	1: {}, 2: {}, 5: {}, 10: {}, 20: {}, 25: {}, 50: {}, 100: {},
	200: {}, 250: {}, 500: {}, 1000: {}, 2000: {}, 2500: {}, 5000: {},
}

// Rounding describes the precision applied before digits are laid out.
type Rounding struct {
	Strategy                 RoundingStrategy
	Mode                     RoundingMode
	MinimumIntegerDigits     int
	MinimumFractionDigits    int
	MaximumFractionDigits    int
	MinimumSignificantDigits int
	MaximumSignificantDigits int
	// Increment applies at MaximumFractionDigits, e.g. 5 with two fraction
	// digits rounds to the nearest 0.05.
	Increment int
}

// FormatConfig is the resolved, immutable formatting configuration. Build it
// with NewFormatConfig; the formatter never mutates it.
type FormatConfig struct {
	Locale          string
	NumberingSystem string
	Style           Style
	Currency        string
	CurrencyDisplay CurrencyDisplay
	Unit            string
	UnitDisplay     UnitDisplay
	Notation        Notation
	CompactDisplay  CompactDisplay
	SignDisplay     SignDisplay
	UseGrouping     bool
	Rounding        Rounding

	fractionSet    bool
	significantSet bool
}

// Option mutates FormatConfig during construction
type Option func(*FormatConfig) error

// NewFormatConfig builds a FormatConfig for locale, resolving style dependent
// rounding defaults and validating the result.
func NewFormatConfig(locale string, opts ...Option) (*FormatConfig, error) {
	cfg := &FormatConfig{
		Locale:          normalizeLocale(locale),
		Style:           StyleDecimal,
		CurrencyDisplay: CurrencySymbol,
		UnitDisplay:     UnitShort,
		Notation:        NotationStandard,
		CompactDisplay:  CompactShort,
		SignDisplay:     SignAuto,
		UseGrouping:     true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.resolveRounding(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func WithStyle(style Style) Option {
	return func(c *FormatConfig) error {
		c.Style = style
		return nil
	}
}

// WithCurrency selects the currency style for the ISO 4217 code.
func WithCurrency(code string) Option {
	return func(c *FormatConfig) error {
		c.Style = StyleCurrency
		c.Currency = strings.ToUpper(strings.TrimSpace(code))
		return nil
	}
}

func WithCurrencyDisplay(display CurrencyDisplay) Option {
	return func(c *FormatConfig) error {
		c.CurrencyDisplay = display
		return nil
	}
}

// WithUnit selects the unit style for a simple unit identifier such as
// "kilometer" or "megabyte".
func WithUnit(unit string) Option {
	return func(c *FormatConfig) error {
		c.Style = StyleUnit
		c.Unit = strings.TrimSpace(unit)
		return nil
	}
}

func WithUnitDisplay(display UnitDisplay) Option {
	return func(c *FormatConfig) error {
		c.UnitDisplay = display
		return nil
	}
}

func WithNotation(notation Notation) Option {
	return func(c *FormatConfig) error {
		c.Notation = notation
		return nil
	}
}

func WithCompactDisplay(display CompactDisplay) Option {
	return func(c *FormatConfig) error {
		c.CompactDisplay = display
		return nil
	}
}

func WithSignDisplay(display SignDisplay) Option {
	return func(c *FormatConfig) error {
		c.SignDisplay = display
		return nil
	}
}

func WithGrouping(enabled bool) Option {
	return func(c *FormatConfig) error {
		c.UseGrouping = enabled
		return nil
	}
}

// WithNumberingSystem overrides the locale's default numbering system, e.g.
// "arab" or "hanidec".
func WithNumberingSystem(system string) Option {
	return func(c *FormatConfig) error {
		c.NumberingSystem = strings.TrimSpace(system)
		return nil
	}
}

func WithFractionDigits(minimum, maximum int) Option {
	return func(c *FormatConfig) error {
		c.Rounding.MinimumFractionDigits = minimum
		c.Rounding.MaximumFractionDigits = maximum
		c.fractionSet = true
		return nil
	}
}

func WithSignificantDigits(minimum, maximum int) Option {
	return func(c *FormatConfig) error {
		c.Rounding.MinimumSignificantDigits = minimum
		c.Rounding.MaximumSignificantDigits = maximum
		c.significantSet = true
		return nil
	}
}

func WithRoundingIncrement(increment int) Option {
	return func(c *FormatConfig) error {
		c.Rounding.Increment = increment
		return nil
	}
}

func WithRoundingMode(mode RoundingMode) Option {
	return func(c *FormatConfig) error {
		c.Rounding.Mode = mode
		return nil
	}
}

func WithMinimumIntegerDigits(n int) Option {
	return func(c *FormatConfig) error {
		c.Rounding.MinimumIntegerDigits = n
		return nil
	}
}

func (c *FormatConfig) resolveRounding() error {
	r := &c.Rounding
	if r.Mode == "" {
		r.Mode = RoundHalfEven
	}
	if r.MinimumIntegerDigits == 0 {
		r.MinimumIntegerDigits = 1
	}
	if r.Strategy != "" {
		return nil
	}

	switch {
	case r.Increment != 0:
		if c.significantSet {
			return fmt.Errorf("%w: rounding increment %d cannot be combined with significant digits", ErrInvalidConfiguration, r.Increment)
		}
		r.Strategy = RoundIncrement
		if !c.fractionSet {
			minimum, _, err := c.defaultFractionDigits()
			if err != nil {
				return err
			}
			r.MinimumFractionDigits = minimum
			r.MaximumFractionDigits = minimum
		}
	case c.significantSet && c.fractionSet:
		return fmt.Errorf("%w: fraction and significant digits are both set", ErrInvalidConfiguration)
	case c.significantSet:
		r.Strategy = RoundSignificantDigits
	case c.fractionSet:
		r.Strategy = RoundFractionDigits
	case c.Notation == NotationCompact:
		r.Strategy = RoundCompact
	default:
		minimum, maximum, err := c.defaultFractionDigits()
		if err != nil {
			return err
		}
		r.Strategy = RoundFractionDigits
		r.MinimumFractionDigits = minimum
		r.MaximumFractionDigits = maximum
	}
	return nil
}

func (c *FormatConfig) defaultFractionDigits() (int, int, error) {
	switch c.Style {
	case StyleCurrency:
		curr, err := money.ParseCurr(c.Currency)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: currency %q: %v", ErrInvalidConfiguration, c.Currency, err)
		}
		return curr.Scale(), curr.Scale(), nil
	case StylePercent:
		return 0, 0, nil
	default:
		return 0, 3, nil
	}
}

// Validate reports contradictory settings as ErrInvalidConfiguration. It never
// adjusts the configuration.
func (c *FormatConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfiguration)
	}
	if c.Locale == "" {
		return fmt.Errorf("%w: empty locale", ErrInvalidConfiguration)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfiguration, c.Locale, err)
	}

	switch c.Style {
	case StyleDecimal, StylePercent:
	case StyleCurrency:
		if _, err := money.ParseCurr(c.Currency); err != nil {
			return fmt.Errorf("%w: currency %q: %v", ErrInvalidConfiguration, c.Currency, err)
		}
		switch c.CurrencyDisplay {
		case CurrencySymbol, CurrencyNarrowSymbol, CurrencyCode, CurrencyName:
		default:
			return fmt.Errorf("%w: currency display %q", ErrInvalidConfiguration, c.CurrencyDisplay)
		}
	case StyleUnit:
		if c.Unit == "" {
			return fmt.Errorf("%w: unit style requires a unit", ErrInvalidConfiguration)
		}
		switch c.UnitDisplay {
		case UnitShort, UnitNarrow, UnitLong:
		default:
			return fmt.Errorf("%w: unit display %q", ErrInvalidConfiguration, c.UnitDisplay)
		}
	default:
		return fmt.Errorf("%w: style %q", ErrInvalidConfiguration, c.Style)
	}

	switch c.Notation {
	case NotationStandard, NotationScientific, NotationEngineering:
	case NotationCompact:
		if c.CompactDisplay != CompactShort && c.CompactDisplay != CompactLong {
			return fmt.Errorf("%w: compact display %q", ErrInvalidConfiguration, c.CompactDisplay)
		}
	default:
		return fmt.Errorf("%w: notation %q", ErrInvalidConfiguration, c.Notation)
	}

	switch c.SignDisplay {
	case SignAuto, SignAlways, SignNever, SignExceptZero, SignNegative:
	default:
		return fmt.Errorf("%w: sign display %q", ErrInvalidConfiguration, c.SignDisplay)
	}

	return c.Rounding.validate()
}

func (r Rounding) validate() error {
	switch r.Mode {
	case RoundHalfEven, RoundHalfExpand, RoundHalfTrunc, RoundHalfCeil, RoundHalfFloor,
		RoundCeil, RoundFloor, RoundExpand, RoundTrunc:
	default:
		return fmt.Errorf("%w: rounding mode %q", ErrInvalidConfiguration, r.Mode)
	}

	if r.MinimumIntegerDigits < 1 || r.MinimumIntegerDigits > 21 {
		return fmt.Errorf("%w: minimum integer digits %d out of [1, 21]", ErrInvalidConfiguration, r.MinimumIntegerDigits)
	}

	hasFraction := r.MinimumFractionDigits != 0 || r.MaximumFractionDigits != 0
	hasSignificant := r.MinimumSignificantDigits != 0 || r.MaximumSignificantDigits != 0

	switch r.Strategy {
	case RoundFractionDigits:
		if hasSignificant || r.Increment != 0 {
			return fmt.Errorf("%w: fraction digit rounding with other strategy settings", ErrInvalidConfiguration)
		}
		return validateDigitPair("fraction", r.MinimumFractionDigits, r.MaximumFractionDigits, 0, 100)
	case RoundSignificantDigits:
		if hasFraction {
			return fmt.Errorf("%w: significant digit rounding with fraction digits", ErrInvalidConfiguration)
		}
		if r.Increment != 0 {
			return fmt.Errorf("%w: rounding increment %d cannot be combined with significant digits", ErrInvalidConfiguration, r.Increment)
		}
		return validateDigitPair("significant", r.MinimumSignificantDigits, r.MaximumSignificantDigits, 1, 21)
	case RoundIncrement:
		if hasSignificant {
			return fmt.Errorf("%w: rounding increment %d cannot be combined with significant digits", ErrInvalidConfiguration, r.Increment)
		}
		if _, ok := validIncrements[r.Increment]; !ok {
			return fmt.Errorf("%w: rounding increment %d", ErrInvalidConfiguration, r.Increment)
		}
		if r.MinimumFractionDigits != r.MaximumFractionDigits {
			return fmt.Errorf("%w: rounding increment requires equal fraction digits, got %d and %d",
				ErrInvalidConfiguration, r.MinimumFractionDigits, r.MaximumFractionDigits)
		}
		return validateDigitPair("fraction", r.MinimumFractionDigits, r.MaximumFractionDigits, 0, 100)
	case RoundCompact:
		if hasFraction || hasSignificant || r.Increment != 0 {
			return fmt.Errorf("%w: compact rounding with explicit digits", ErrInvalidConfiguration)
		}
		return nil
	default:
		return fmt.Errorf("%w: rounding strategy %q", ErrInvalidConfiguration, r.Strategy)
	}
}

func validateDigitPair(name string, minimum, maximum, lower, upper int) error {
	if minimum < lower || minimum > upper {
		return fmt.Errorf("%w: minimum %s digits %d out of [%d, %d]", ErrInvalidConfiguration, name, minimum, lower, upper)
	}
	if maximum < lower || maximum > upper {
		return fmt.Errorf("%w: maximum %s digits %d out of [%d, %d]", ErrInvalidConfiguration, name, maximum, lower, upper)
	}
	if minimum > maximum {
		return fmt.Errorf("%w: minimum %s digits %d exceed maximum %d", ErrInvalidConfiguration, name, minimum, maximum)
	}
	return nil
}
