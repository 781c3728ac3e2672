package numfmt

import "errors"

// ErrInvalidRangeInput indicates that a range endpoint is NaN or infinite.
var ErrInvalidRangeInput = errors.New("numfmt: invalid range input")

// ErrInvalidConfiguration indicates a contradictory FormatConfig.
var ErrInvalidConfiguration = errors.New("numfmt: invalid configuration")

// ErrMissingLocaleData indicates the symbol table has no data for the requested
// locale, numbering system, currency, unit or magnitude.
var ErrMissingLocaleData = errors.New("numfmt: missing locale data")

// ErrValueOutOfRange indicates a parsed value whose decimal exponent is too
// large to lay out digit by digit.
var ErrValueOutOfRange = errors.New("numfmt: value out of range")
