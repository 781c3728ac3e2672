package numfmt

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// CardinalCategory selects the CLDR cardinal plural category for operands
// using the rules shipped with golang.org/x/text.
func CardinalCategory(tag language.Tag, operands PluralOperands) PluralCategory {
	form := plural.Cardinal.MatchPlural(tag,
		int(operands.I), operands.V, operands.W, int(operands.F), int(operands.T))
	return categoryFromForm(form)
}

func categoryFromForm(form plural.Form) PluralCategory {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}
