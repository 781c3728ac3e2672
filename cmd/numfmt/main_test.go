package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-numfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfg, err := parseFlags(args)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	err = run(cfg, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-locale", "de", "-data", "a.yaml,b.json", "-data", "c.yaml", "3", "5"})
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.locale)
	assert.Equal(t, []string{"a.yaml", "b.json", "c.yaml"}, cfg.dataFiles)
	assert.Equal(t, []string{"3", "5"}, cfg.values)
	assert.Equal(t, -1, cfg.minFraction)
	assert.Equal(t, "text", cfg.output)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{name: "no value", args: nil, message: "expected one value"},
		{name: "too many values", args: []string{"1", "2", "3"}, message: "expected one value"},
		{name: "fraction pair", args: []string{"-min-fraction", "1", "2"}, message: "-min-fraction and -max-fraction"},
		{name: "significant pair", args: []string{"-max-significant", "3", "2"}, message: "-min-significant and -max-significant"},
		{name: "output", args: []string{"-output", "xml", "2"}, message: `unknown output "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRunText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "currency", args: []string{"-locale", "de", "-currency", "EUR", "1234.5"}, want: "1.234,50\u00a0€\n"},
		{name: "range", args: []string{"3", "5"}, want: "3–5\n"},
		{name: "negative value", args: []string{"--", "-5"}, want: "-5\n"},
		{name: "compact", args: []string{"-notation", "compact", "-compact-display", "long", "1234567"}, want: "1.2 million\n"},
		{name: "significant", args: []string{"-min-significant", "1", "-max-significant", "2", "0.01234"}, want: "0.012\n"},
		{name: "no grouping", args: []string{"-no-grouping", "1234567"}, want: "1234567\n"},
		{name: "numbering system", args: []string{"-locale", "zh-TW", "-numbering", "hanidec", "205"}, want: "二〇五\n"},
		{name: "sign", args: []string{"-sign", "always", "-min-fraction", "1", "-max-fraction", "1", "5"}, want: "+5.0\n"},
		{name: "approximate range", args: []string{"-unit", "kilometer", "-unit-display", "long", "-max-fraction", "0", "-min-fraction", "0", "1.2", "1.4"}, want: "1 kilometer~\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunStructuredOutput(t *testing.T) {
	want := []numfmt.Part{
		{Type: numfmt.PartCurrency, Value: "$", Source: numfmt.SourceShared},
		{Type: numfmt.PartInteger, Value: "3", Source: numfmt.SourceStartRange},
		{Type: numfmt.PartLiteral, Value: "–", Source: numfmt.SourceShared},
		{Type: numfmt.PartInteger, Value: "5", Source: numfmt.SourceEndRange},
	}
	args := []string{"-currency", "USD", "-min-fraction", "0", "-max-fraction", "0", "3", "5"}

	stdout, _, err := runArgs(t, append([]string{"-output", "json"}, args...)...)
	require.NoError(t, err)
	var fromJSON []numfmt.Part
	require.NoError(t, json.Unmarshal([]byte(stdout), &fromJSON))
	assert.Equal(t, want, fromJSON)

	stdout, _, err = runArgs(t, append([]string{"-output", "yaml"}, args...)...)
	require.NoError(t, err)
	var fromYAML []numfmt.Part
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &fromYAML))
	assert.Equal(t, want, fromYAML)
}

func TestRunLocaleData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	content := "locales:\n  - locale: pt-BR\n    symbols:\n      latn:\n        decimal: \",\"\n        group: \".\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	stdout, _, err := runArgs(t, "-locale", "pt-BR", "-data", path, "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1.234,5\n", stdout)

	_, _, err = runArgs(t, "-data", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	assert.Error(t, err)
}

func TestRunLogging(t *testing.T) {
	_, stderr, err := runArgs(t, "-v", "-unit", "kilometer", "3", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "range affixes collapsed")

	_, stderr, err = runArgs(t, "-locale", "sw", "1")
	assert.ErrorIs(t, err, numfmt.ErrMissingLocaleData)
	assert.Contains(t, stderr, "symbols unavailable")

	_, _, err = runArgs(t, "-locale", "sw", "-xtext", "1")
	assert.NoError(t, err)
}

func TestRunErrors(t *testing.T) {
	_, _, err := runArgs(t, "-style", "fancy", "1")
	assert.ErrorIs(t, err, numfmt.ErrInvalidConfiguration)

	_, _, err = runArgs(t, "abc")
	assert.Error(t, err)

	_, _, err = runArgs(t, "NaN", "5")
	assert.ErrorIs(t, err, numfmt.ErrInvalidRangeInput)
}
