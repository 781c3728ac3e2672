package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-numfmt"
	"gopkg.in/yaml.v3"
)

type cliConfig struct {
	locale          string
	numberingSystem string
	style           string
	currency        string
	currencyDisplay string
	unit            string
	unitDisplay     string
	notation        string
	compactDisplay  string
	signDisplay     string
	noGrouping      bool
	minFraction     int
	maxFraction     int
	minSignificant  int
	maxSignificant  int
	increment       int
	roundingMode    string
	dataFiles       []string
	xtext           bool
	output          string
	verbose         bool
	values          []string
}

type fileFlag struct {
	items []string
}

func (f *fileFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fileFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "numfmt: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	var data fileFlag

	fs := flag.NewFlagSet("numfmt", flag.ContinueOnError)
	fs.StringVar(&cfg.locale, "locale", "en", "BCP 47 locale")
	fs.StringVar(&cfg.numberingSystem, "numbering", "", "numbering system, e.g. arab or hanidec (default: locale default)")
	fs.StringVar(&cfg.style, "style", string(numfmt.StyleDecimal), "decimal, percent, currency or unit")
	fs.StringVar(&cfg.currency, "currency", "", "ISO 4217 currency code (implies -style currency)")
	fs.StringVar(&cfg.currencyDisplay, "currency-display", string(numfmt.CurrencySymbol), "symbol, narrowSymbol, code or name")
	fs.StringVar(&cfg.unit, "unit", "", "unit identifier, e.g. kilometer (implies -style unit)")
	fs.StringVar(&cfg.unitDisplay, "unit-display", string(numfmt.UnitShort), "short, narrow or long")
	fs.StringVar(&cfg.notation, "notation", string(numfmt.NotationStandard), "standard, scientific, engineering or compact")
	fs.StringVar(&cfg.compactDisplay, "compact-display", string(numfmt.CompactShort), "short or long")
	fs.StringVar(&cfg.signDisplay, "sign", string(numfmt.SignAuto), "auto, always, never, exceptZero or negative")
	fs.BoolVar(&cfg.noGrouping, "no-grouping", false, "disable group separators")
	fs.IntVar(&cfg.minFraction, "min-fraction", -1, "minimum fraction digits")
	fs.IntVar(&cfg.maxFraction, "max-fraction", -1, "maximum fraction digits")
	fs.IntVar(&cfg.minSignificant, "min-significant", 0, "minimum significant digits")
	fs.IntVar(&cfg.maxSignificant, "max-significant", 0, "maximum significant digits")
	fs.IntVar(&cfg.increment, "increment", 0, "rounding increment at the maximum fraction digits")
	fs.StringVar(&cfg.roundingMode, "rounding-mode", "", "rounding mode (default halfEven)")
	fs.Var(&data, "data", "YAML or JSON locale data file. Repeat flag to add more.")
	fs.BoolVar(&cfg.xtext, "xtext", false, "derive missing symbols from golang.org/x/text")
	fs.StringVar(&cfg.output, "output", "text", "text, json or yaml (json and yaml print parts)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging on stderr")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	cfg.dataFiles = data.items
	cfg.values = fs.Args()
	if len(cfg.values) == 0 || len(cfg.values) > 2 {
		return cliConfig{}, errors.New("expected one value or a start and end value")
	}

	if (cfg.minFraction < 0) != (cfg.maxFraction < 0) {
		return cliConfig{}, errors.New("-min-fraction and -max-fraction must be set together")
	}
	if (cfg.minSignificant == 0) != (cfg.maxSignificant == 0) {
		return cliConfig{}, errors.New("-min-significant and -max-significant must be set together")
	}

	switch cfg.output {
	case "text", "json", "yaml":
	default:
		return cliConfig{}, fmt.Errorf("unknown output %q", cfg.output)
	}

	return cfg, nil
}

func (cfg cliConfig) options() []numfmt.Option {
	opts := []numfmt.Option{
		numfmt.WithStyle(numfmt.Style(cfg.style)),
		numfmt.WithCurrencyDisplay(numfmt.CurrencyDisplay(cfg.currencyDisplay)),
		numfmt.WithUnitDisplay(numfmt.UnitDisplay(cfg.unitDisplay)),
		numfmt.WithNotation(numfmt.Notation(cfg.notation)),
		numfmt.WithCompactDisplay(numfmt.CompactDisplay(cfg.compactDisplay)),
		numfmt.WithSignDisplay(numfmt.SignDisplay(cfg.signDisplay)),
		numfmt.WithGrouping(!cfg.noGrouping),
		numfmt.WithNumberingSystem(cfg.numberingSystem),
	}
	if cfg.currency != "" {
		opts = append(opts, numfmt.WithCurrency(cfg.currency))
	}
	if cfg.unit != "" {
		opts = append(opts, numfmt.WithUnit(cfg.unit))
	}
	if cfg.minFraction >= 0 {
		opts = append(opts, numfmt.WithFractionDigits(cfg.minFraction, cfg.maxFraction))
	}
	if cfg.maxSignificant > 0 {
		opts = append(opts, numfmt.WithSignificantDigits(cfg.minSignificant, cfg.maxSignificant))
	}
	if cfg.increment != 0 {
		opts = append(opts, numfmt.WithRoundingIncrement(cfg.increment))
	}
	if cfg.roundingMode != "" {
		opts = append(opts, numfmt.WithRoundingMode(numfmt.RoundingMode(cfg.roundingMode)))
	}
	return opts
}

func run(cfg cliConfig, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var tableOpts []numfmt.TableOption
	if cfg.xtext {
		tableOpts = append(tableOpts, numfmt.WithXTextFallback())
	}

	var table *numfmt.StaticSymbolTable
	if len(cfg.dataFiles) > 0 {
		loaded, err := numfmt.LoadSymbolTable(cfg.dataFiles, tableOpts...)
		if err != nil {
			return err
		}
		table = loaded
	} else {
		table = numfmt.NewSymbolTable(tableOpts...)
	}

	formatCfg, err := numfmt.NewFormatConfig(cfg.locale, cfg.options()...)
	if err != nil {
		return err
	}

	formatter, err := numfmt.NewNumberFormat(formatCfg, table, numfmt.WithLogger(logger))
	if err != nil {
		return err
	}

	values := make([]numfmt.Value, len(cfg.values))
	for i, raw := range cfg.values {
		v, err := numfmt.ParseValue(raw)
		if err != nil {
			return err
		}
		values[i] = v
	}

	var parts []numfmt.Part
	if len(values) == 2 {
		parts, err = formatter.FormatRangeToParts(values[0], values[1])
	} else {
		parts, err = formatter.FormatToParts(values[0])
	}
	if err != nil {
		return err
	}

	return writeParts(stdout, cfg.output, parts)
}

func writeParts(w io.Writer, output string, parts []numfmt.Part) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(parts)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(parts)
	default:
		_, err := fmt.Fprintln(w, numfmt.Concat(parts))
		return err
	}
}
