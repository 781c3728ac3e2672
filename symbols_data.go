package numfmt

// rootSymbols are the CLDR root symbols for the latn numbering system.
var rootSymbols = Symbols{
	Decimal:               ".",
	Group:                 ",",
	MinusSign:             "-",
	PlusSign:              "+",
	ApproximatelySign:     "~",
	RangeSign:             "–",
	PercentSign:           "%",
	ExponentSeparator:     "E",
	NaN:                   "NaN",
	Infinity:              "∞",
	PrimaryGroupSize:      3,
	SecondaryGroupSize:    3,
	MinimumGroupingDigits: 1,
}

func latnSymbols(decimal, group string, modify ...func(*Symbols)) Symbols {
	symbols := rootSymbols
	symbols.Decimal = decimal
	symbols.Group = group
	for _, fn := range modify {
		fn(&symbols)
	}
	return symbols
}

func plurals(one, other string) map[PluralCategory]string {
	if one == "" {
		return map[PluralCategory]string{PluralOther: other}
	}
	return map[PluralCategory]string{PluralOne: one, PluralOther: other}
}

func same(pattern string) map[PluralCategory]string {
	return map[PluralCategory]string{PluralOther: pattern}
}

// compactLadder expands patterns for three consecutive magnitudes, one zero
// more each step, starting at magnitude start.
func compactLadder(patterns map[int]map[PluralCategory]string, start int, prefix, suffix string) {
	zeros := "0"
	for step := 0; step < 3; step++ {
		patterns[start+step] = same(prefix + zeros + suffix)
		zeros += "0"
	}
}

func englishCompactShort() map[int]map[PluralCategory]string {
	patterns := make(map[int]map[PluralCategory]string, 12)
	compactLadder(patterns, 3, "", "K")
	compactLadder(patterns, 6, "", "M")
	compactLadder(patterns, 9, "", "B")
	compactLadder(patterns, 12, "", "T")
	return patterns
}

func englishCompactLong() map[int]map[PluralCategory]string {
	patterns := make(map[int]map[PluralCategory]string, 12)
	compactLadder(patterns, 3, "", " thousand")
	compactLadder(patterns, 6, "", " million")
	compactLadder(patterns, 9, "", " billion")
	compactLadder(patterns, 12, "", " trillion")
	return patterns
}

func cjkCompact(tenThousand, hundredMillion, trillion string) map[int]map[PluralCategory]string {
	patterns := map[int]map[PluralCategory]string{
		3: same("0"),
	}
	for magnitude := 4; magnitude < 16; magnitude++ {
		var unit string
		var base int
		switch {
		case magnitude < 8:
			unit, base = tenThousand, 4
		case magnitude < 12:
			unit, base = hundredMillion, 8
		default:
			unit, base = trillion, 12
		}
		zeros := ""
		for i := 0; i <= magnitude-base; i++ {
			zeros += "0"
		}
		patterns[magnitude] = same(zeros + unit)
	}
	return patterns
}

var builtinLocaleData = map[string]LocaleData{
	"en": {
		Symbols: map[string]Symbols{
			"latn": rootSymbols,
		},
		CurrencyFormat: CurrencyFormat{Position: AffixPrefix},
		Currencies: map[string]CurrencyData{
			"USD": {Symbol: "$", Narrow: "$", DisplayName: plurals("US dollar", "US dollars")},
			"EUR": {Symbol: "€", Narrow: "€", DisplayName: plurals("euro", "euros")},
			"GBP": {Symbol: "£", Narrow: "£", DisplayName: plurals("British pound", "British pounds")},
			"JPY": {Symbol: "¥", Narrow: "¥", DisplayName: plurals("", "Japanese yen")},
			"INR": {Symbol: "₹", Narrow: "₹", DisplayName: plurals("Indian rupee", "Indian rupees")},
			"MXN": {Symbol: "MX$", Narrow: "$", DisplayName: plurals("Mexican peso", "Mexican pesos")},
			"TWD": {Symbol: "NT$", Narrow: "$", DisplayName: plurals("New Taiwan dollar", "New Taiwan dollars")},
			"CHF": {Symbol: "CHF", DisplayName: plurals("Swiss franc", "Swiss francs")},
			"BHD": {Symbol: "BHD", DisplayName: plurals("Bahraini dinar", "Bahraini dinars")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   plurals("{0} kilometer", "{0} kilometers"),
				Short:  same("{0} km"),
				Narrow: same("{0}km"),
			},
			"meter": {
				Long:   plurals("{0} meter", "{0} meters"),
				Short:  same("{0} m"),
				Narrow: same("{0}m"),
			},
			"kilogram": {
				Long:   plurals("{0} kilogram", "{0} kilograms"),
				Short:  same("{0} kg"),
				Narrow: same("{0}kg"),
			},
			"megabyte": {
				Long:   plurals("{0} megabyte", "{0} megabytes"),
				Short:  same("{0} MB"),
				Narrow: same("{0}MB"),
			},
			"second": {
				Long:   plurals("{0} second", "{0} seconds"),
				Short:  same("{0} sec"),
				Narrow: same("{0}s"),
			},
			"hour": {
				Long:   plurals("{0} hour", "{0} hours"),
				Short:  same("{0} hr"),
				Narrow: same("{0}h"),
			},
			"celsius": {
				Long:   plurals("{0} degree Celsius", "{0} degrees Celsius"),
				Short:  same("{0}°C"),
				Narrow: same("{0}°C"),
			},
			"kilometer-per-hour": {
				Long:   plurals("{0} kilometer per hour", "{0} kilometers per hour"),
				Short:  same("{0} km/h"),
				Narrow: same("{0}km/h"),
			},
		},
		Compact: CompactData{
			Short: englishCompactShort(),
			Long:  englishCompactLong(),
		},
	},
	"en-IN": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(".", ",", func(s *Symbols) {
				s.SecondaryGroupSize = 2
			}),
		},
		Currencies: map[string]CurrencyData{
			"INR": {Symbol: "₹", Narrow: "₹", DisplayName: plurals("Indian rupee", "Indian rupees")},
			"USD": {Symbol: "$", Narrow: "$", DisplayName: plurals("US dollar", "US dollars")},
		},
	},
	"es": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(",", ".", func(s *Symbols) {
				s.RangeSign = "-"
				s.MinimumGroupingDigits = 2
				s.PercentSpacing = "\u00a0"
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixSuffix, Spacing: "\u00a0"},
		Currencies: map[string]CurrencyData{
			"EUR": {Symbol: "€", Narrow: "€", DisplayName: plurals("euro", "euros")},
			"USD": {Symbol: "US$", Narrow: "$", DisplayName: plurals("dólar estadounidense", "dólares estadounidenses")},
			"MXN": {Symbol: "MXN", Narrow: "$", DisplayName: plurals("peso mexicano", "pesos mexicanos")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   plurals("{0} kilómetro", "{0} kilómetros"),
				Short:  same("{0} km"),
				Narrow: same("{0}km"),
			},
			"kilogram": {
				Long:   plurals("{0} kilogramo", "{0} kilogramos"),
				Short:  same("{0} kg"),
				Narrow: same("{0}kg"),
			},
		},
		Compact: CompactData{
			Short: map[int]map[PluralCategory]string{
				3:  same("0 mil"),
				4:  same("00 mil"),
				5:  same("000 mil"),
				6:  same("0 M"),
				7:  same("00 M"),
				8:  same("000 M"),
				9:  same("0000 M"),
				10: same("00 mil M"),
				11: same("000 mil M"),
				12: same("0 B"),
				13: same("00 B"),
				14: same("000 B"),
			},
			Long: map[int]map[PluralCategory]string{
				3:  same("0 mil"),
				4:  same("00 mil"),
				5:  same("000 mil"),
				6:  plurals("0 millón", "0 millones"),
				7:  same("00 millones"),
				8:  same("000 millones"),
				9:  same("0 mil millones"),
				10: same("00 mil millones"),
				11: same("000 mil millones"),
				12: plurals("0 billón", "0 billones"),
				13: same("00 billones"),
				14: same("000 billones"),
			},
		},
	},
	"es-MX": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(".", ",", func(s *Symbols) {
				s.RangeSign = "-"
				s.MinimumGroupingDigits = 2
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixPrefix},
		Currencies: map[string]CurrencyData{
			"MXN": {Symbol: "$", Narrow: "$", DisplayName: plurals("peso mexicano", "pesos mexicanos")},
			"USD": {Symbol: "USD", Narrow: "$", DisplayName: plurals("dólar estadounidense", "dólares estadounidenses")},
		},
	},
	"de": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(",", ".", func(s *Symbols) {
				s.ApproximatelySign = "≈"
				s.PercentSpacing = "\u00a0"
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixSuffix, Spacing: "\u00a0"},
		Currencies: map[string]CurrencyData{
			"EUR": {Symbol: "€", Narrow: "€", DisplayName: plurals("Euro", "Euro")},
			"USD": {Symbol: "$", Narrow: "$", DisplayName: plurals("US-Dollar", "US-Dollar")},
			"CHF": {Symbol: "CHF", DisplayName: plurals("Schweizer Franken", "Schweizer Franken")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   same("{0} Kilometer"),
				Short:  same("{0} km"),
				Narrow: same("{0} km"),
			},
			"kilogram": {
				Long:   same("{0} Kilogramm"),
				Short:  same("{0} kg"),
				Narrow: same("{0} kg"),
			},
		},
		Compact: CompactData{
			Short: map[int]map[PluralCategory]string{
				3:  same("0"),
				4:  same("0"),
				5:  same("0"),
				6:  same("0 Mio'.'"),
				7:  same("00 Mio'.'"),
				8:  same("000 Mio'.'"),
				9:  same("0 Mrd'.'"),
				10: same("00 Mrd'.'"),
				11: same("000 Mrd'.'"),
				12: same("0 Bio'.'"),
				13: same("00 Bio'.'"),
				14: same("000 Bio'.'"),
			},
			Long: map[int]map[PluralCategory]string{
				3:  same("0 Tausend"),
				4:  same("00 Tausend"),
				5:  same("000 Tausend"),
				6:  plurals("0 Million", "0 Millionen"),
				7:  same("00 Millionen"),
				8:  same("000 Millionen"),
				9:  plurals("0 Milliarde", "0 Milliarden"),
				10: same("00 Milliarden"),
				11: same("000 Milliarden"),
				12: plurals("0 Billion", "0 Billionen"),
				13: same("00 Billionen"),
				14: same("000 Billionen"),
			},
		},
	},
	"fr": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(",", "\u202f", func(s *Symbols) {
				s.ApproximatelySign = "≃"
				s.PercentSpacing = "\u202f"
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixSuffix, Spacing: "\u00a0"},
		Currencies: map[string]CurrencyData{
			"EUR": {Symbol: "€", Narrow: "€", DisplayName: plurals("euro", "euros")},
			"USD": {Symbol: "$US", Narrow: "$", DisplayName: plurals("dollar des États-Unis", "dollars des États-Unis")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   plurals("{0} kilomètre", "{0} kilomètres"),
				Short:  same("{0} km"),
				Narrow: same("{0}km"),
			},
		},
		Compact: CompactData{
			Short: map[int]map[PluralCategory]string{
				3:  same("0 k"),
				4:  same("00 k"),
				5:  same("000 k"),
				6:  same("0 M"),
				7:  same("00 M"),
				8:  same("000 M"),
				9:  same("0 Md"),
				10: same("00 Md"),
				11: same("000 Md"),
				12: same("0 Bn"),
				13: same("00 Bn"),
				14: same("000 Bn"),
			},
			Long: map[int]map[PluralCategory]string{
				3:  same("0 mille"),
				4:  same("00 mille"),
				5:  same("000 mille"),
				6:  plurals("0 million", "0 millions"),
				7:  same("00 millions"),
				8:  same("000 millions"),
				9:  plurals("0 milliard", "0 milliards"),
				10: same("00 milliards"),
				11: same("000 milliards"),
				12: plurals("0 billion", "0 billions"),
				13: same("00 billions"),
				14: same("000 billions"),
			},
		},
	},
	"zh-TW": {
		Symbols: map[string]Symbols{
			"latn": latnSymbols(".", ",", func(s *Symbols) {
				s.RangeSign = "-"
				s.NaN = "非數值"
			}),
			"hanidec": latnSymbols(".", ",", func(s *Symbols) {
				s.RangeSign = "-"
				s.NaN = "非數值"
				s.Digits = []string{"〇", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixPrefix},
		Currencies: map[string]CurrencyData{
			"TWD": {Symbol: "$", Narrow: "$", DisplayName: same("新台幣")},
			"USD": {Symbol: "US$", Narrow: "$", DisplayName: same("美元")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   same("{0} 公里"),
				Short:  same("{0} 公里"),
				Narrow: same("{0}公里"),
			},
			"kilogram": {
				Long:   same("{0} 公斤"),
				Short:  same("{0} 公斤"),
				Narrow: same("{0}公斤"),
			},
		},
		Compact: CompactData{
			Short: cjkCompact("萬", "億", "兆"),
			Long:  cjkCompact("萬", "億", "兆"),
		},
	},
	"ja": {
		Symbols: map[string]Symbols{
			"latn": rootSymbols,
		},
		CurrencyFormat: CurrencyFormat{Position: AffixPrefix},
		Currencies: map[string]CurrencyData{
			"JPY": {Symbol: "￥", Narrow: "￥", DisplayName: same("円")},
			"USD": {Symbol: "$", Narrow: "$", DisplayName: same("米ドル")},
		},
		Units: map[string]UnitData{
			"kilometer": {
				Long:   same("{0} キロメートル"),
				Short:  same("{0} km"),
				Narrow: same("{0}km"),
			},
		},
		Compact: CompactData{
			Short: cjkCompact("万", "億", "兆"),
			Long:  cjkCompact("万", "億", "兆"),
		},
	},
	"ar": {
		NumberingSystem: "arab",
		Symbols: map[string]Symbols{
			"arab": {
				Decimal:               "٫",
				Group:                 "٬",
				MinusSign:             "\u061c-",
				PlusSign:              "\u061c+",
				ApproximatelySign:     "~",
				RangeSign:             "–",
				PercentSign:           "٪\u061c",
				ExponentSeparator:     "اس",
				NaN:                   "ليس رقمًا",
				Infinity:              "∞",
				Digits:                []string{"٠", "١", "٢", "٣", "٤", "٥", "٦", "٧", "٨", "٩"},
				PrimaryGroupSize:      3,
				SecondaryGroupSize:    3,
				MinimumGroupingDigits: 1,
			},
			"latn": latnSymbols(".", ",", func(s *Symbols) {
				s.MinusSign = "\u200e-"
				s.PlusSign = "\u200e+"
				s.PercentSign = "\u200e%\u200e"
				s.NaN = "ليس رقمًا"
			}),
		},
		CurrencyFormat: CurrencyFormat{Position: AffixSuffix, Spacing: "\u00a0"},
		Currencies: map[string]CurrencyData{
			"SAR": {Symbol: "ر.س.\u200f", DisplayName: same("ريال سعودي")},
			"USD": {Symbol: "US$", Narrow: "$", DisplayName: same("دولار أمريكي")},
		},
	},
}
