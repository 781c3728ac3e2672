package numfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocaleDataFile is the on-disk layout of a locale data file.
type LocaleDataFile struct {
	Locales []LocaleData `json:"locales" yaml:"locales"`
}

// LocaleDataLoader reads locale data from JSON or YAML files.
type LocaleDataLoader struct {
	paths []string
}

func NewLocaleDataLoader(paths ...string) *LocaleDataLoader {
	return &LocaleDataLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file in order. Entries for the same locale
// are returned in file order so later files override earlier ones when
// merged into a table.
func (l *LocaleDataLoader) Load() ([]LocaleData, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("numfmt: no locale data paths configured")
	}

	var entries []LocaleData
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numfmt: read %s: %w", path, err)
		}

		file, err := decodeLocaleDataFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("numfmt: decode %s: %w", path, err)
		}

		for i, entry := range file.Locales {
			if normalizeLocale(entry.Locale) == "" {
				return nil, fmt.Errorf("numfmt: decode %s: entry %d has no locale", path, i)
			}
			if err := validateLocaleData(entry); err != nil {
				return nil, fmt.Errorf("numfmt: decode %s: %w", path, err)
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// LoadSymbolTable builds a table from the built-in data overridden by files.
func LoadSymbolTable(paths []string, opts ...TableOption) (*StaticSymbolTable, error) {
	entries, err := NewLocaleDataLoader(paths...).Load()
	if err != nil {
		return nil, err
	}
	return NewSymbolTable(append(opts, WithLocaleData(entries...))...), nil
}

func decodeLocaleDataFile(path string, data []byte) (LocaleDataFile, error) {
	var file LocaleDataFile
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return LocaleDataFile{}, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return LocaleDataFile{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return LocaleDataFile{}, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(file.Locales) == 0 {
		return LocaleDataFile{}, errors.New("no locales defined")
	}
	return file, nil
}

func validateLocaleData(entry LocaleData) error {
	for system, symbols := range entry.Symbols {
		if len(symbols.Digits) != 0 && len(symbols.Digits) != 10 {
			return fmt.Errorf("locale %s numbering system %s: expected 10 digits, got %d", entry.Locale, system, len(symbols.Digits))
		}
	}

	switch entry.CurrencyFormat.Position {
	case "", AffixPrefix, AffixSuffix:
	default:
		return fmt.Errorf("locale %s: currency position %q", entry.Locale, entry.CurrencyFormat.Position)
	}

	for unit, data := range entry.Units {
		for _, variants := range []map[PluralCategory]string{data.Long, data.Short, data.Narrow} {
			for category, pattern := range variants {
				if !strings.Contains(pattern, unitPlaceholder) {
					return fmt.Errorf("locale %s unit %s %s: pattern %q lacks %s", entry.Locale, unit, category, pattern, unitPlaceholder)
				}
			}
		}
	}
	return nil
}
