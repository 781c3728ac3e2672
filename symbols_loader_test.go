package numfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleDataLoaderLoad(t *testing.T) {
	loader := NewLocaleDataLoader(filepath.Join("testdata", "locales.yaml"), filepath.Join("testdata", "locales.json"))

	entries, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	pt := entries[0]
	assert.Equal(t, "pt-BR", pt.Locale)
	assert.Equal(t, ",", pt.Symbols["latn"].Decimal)
	assert.Equal(t, AffixPrefix, pt.CurrencyFormat.Position)
	assert.Equal(t, " ", pt.CurrencyFormat.Spacing)
	assert.Equal(t, "Reais brasileiros", pt.Currencies["BRL"].DisplayName[PluralOther])
	assert.Equal(t, "{0} quilômetro", pt.Units["kilometer"].Long[PluralOne])
	assert.Equal(t, "0 mil", pt.Compact.Short[3][PluralOther])

	assert.Equal(t, "en_GB", entries[1].Locale)
	assert.Equal(t, "≈", entries[1].Symbols["latn"].ApproximatelySign)
}

func TestLoadSymbolTable(t *testing.T) {
	table, err := LoadSymbolTable([]string{
		filepath.Join("testdata", "locales.yaml"),
		filepath.Join("testdata", "locales.json"),
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		locale string
		opts   []Option
		value  string
		want   string
	}{
		{name: "loaded separators", locale: "pt-BR", value: "1234.5", want: "1.234,5"},
		{name: "loaded currency", locale: "pt-BR", opts: []Option{WithCurrency("BRL")}, value: "1234.5", want: "R$ 1.234,50"},
		{name: "loaded unit", locale: "pt-BR", opts: []Option{WithUnit("kilometer"), WithUnitDisplay(UnitLong)}, value: "2", want: "2 quilômetros"},
		{name: "loaded compact", locale: "pt-BR", opts: []Option{WithNotation(NotationCompact)}, value: "12300", want: "12 mil"},
		{name: "override keeps builtin fields", locale: "en-GB", value: "1234.5", want: "1,234.5"},
		{name: "builtin untouched", locale: "de", value: "1234.5", want: "1.234,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Partition(mustConfig(t, tt.locale, tt.opts...), table, MustParseValue(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Concat(parts))
		})
	}

	s, err := table.Symbols("en-GB", "")
	require.NoError(t, err)
	assert.Equal(t, "≈", s.ApproximatelySign)
}

func TestLocaleDataLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := []struct {
		name    string
		paths   []string
		message string
	}{
		{name: "no paths", message: "no locale data paths configured"},
		{name: "missing file", paths: []string{filepath.Join(dir, "missing.yaml")}, message: "read"},
		{name: "unsupported extension", paths: []string{write("locales.toml", "locales = []")}, message: "unsupported extension .toml"},
		{name: "invalid json", paths: []string{write("broken.json", "{")}, message: "json parse error"},
		{name: "invalid yaml", paths: []string{write("broken.yaml", "locales: [")}, message: "yaml parse error"},
		{name: "empty", paths: []string{write("empty.yaml", "locales: []")}, message: "no locales defined"},
		{name: "missing locale", paths: []string{write("anon.yaml", "locales:\n  - symbols: {}\n")}, message: "entry 0 has no locale"},
		{name: "short digits", paths: []string{write("digits.yaml", "locales:\n  - locale: xx\n    symbols:\n      latn:\n        digits: [\"0\", \"1\"]\n")}, message: "expected 10 digits"},
		{name: "bad position", paths: []string{write("position.json", `{"locales":[{"locale":"xx","currency_format":{"position":"middle"}}]}`)}, message: "currency position"},
		{name: "unit without placeholder", paths: []string{write("unit.yaml", "locales:\n  - locale: xx\n    units:\n      meter:\n        short:\n          other: m\n")}, message: "lacks {0}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocaleDataLoader(tt.paths...).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	_, err := LoadSymbolTable(nil)
	assert.Error(t, err)
}
