package numfmt

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	gvdecimal "github.com/govalues/decimal"
	"github.com/govalues/money"
	"github.com/shopspring/decimal"
)

const defaultHelperLocale = "en"

// Helpers returns template functions that format numbers in the locale found
// in the template data under localeKey. opts apply to every call. Formatters
// are built once per locale and helper, then reused.
//
//	{{ format_number . .Total }}
//	{{ format_number_range . .Min .Max }}
//	{{ format_currency . .Price "EUR" }}
//	{{ format_percent . .Ratio }}
func Helpers(table SymbolTable, localeKey string, opts ...Option) map[string]any {
	cache := &formatterCache{}
	format := func(data any, name string, extra ...Option) (*NumberFormat, error) {
		locale := normalizeLocale(extractLocale(data, localeKey))
		return cache.get(locale, name, func() (*NumberFormat, error) {
			all := append(append([]Option(nil), opts...), extra...)
			return New(locale, table, all...)
		})
	}

	return map[string]any{
		"format_number": func(data any, value any) (string, error) {
			v, err := toValue(value)
			if err != nil {
				return "", err
			}
			f, err := format(data, "number")
			if err != nil {
				return "", err
			}
			return f.Format(v)
		},

		"format_number_range": func(data any, start, end any) (string, error) {
			x, err := toValue(start)
			if err != nil {
				return "", err
			}
			y, err := toValue(end)
			if err != nil {
				return "", err
			}
			f, err := format(data, "number")
			if err != nil {
				return "", err
			}
			return f.FormatRange(x, y)
		},

		"format_currency": func(data any, value any, code string) (string, error) {
			v, err := toValue(value)
			if err != nil {
				return "", err
			}
			f, err := format(data, "currency:"+strings.ToUpper(strings.TrimSpace(code)), WithCurrency(code))
			if err != nil {
				return "", err
			}
			return f.Format(v)
		},

		"format_percent": func(data any, value any) (string, error) {
			v, err := toValue(value)
			if err != nil {
				return "", err
			}
			f, err := format(data, "percent", WithStyle(StylePercent))
			if err != nil {
				return "", err
			}
			return f.Format(v)
		},
	}
}

// formatterCache memoizes formatters by locale and helper name. Failed
// builds are not cached.
type formatterCache struct {
	mu    sync.RWMutex
	items map[string]map[string]*NumberFormat
}

func (c *formatterCache) get(locale, name string, build func() (*NumberFormat, error)) (*NumberFormat, error) {
	c.mu.RLock()
	f, ok := c.items[locale][name]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	f, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = make(map[string]map[string]*NumberFormat)
	}
	byName := c.items[locale]
	if byName == nil {
		byName = make(map[string]*NumberFormat)
		c.items[locale] = byName
	}
	if existing, ok := byName[name]; ok {
		return existing, nil
	}
	byName[name] = f
	return f, nil
}

// toValue converts template arguments to a Value.
func toValue(value any) (Value, error) {
	switch v := value.(type) {
	case Value:
		return v, nil
	case decimal.Decimal:
		return NewValue(v), nil
	case gvdecimal.Decimal:
		return NewValueFromFixed(v), nil
	case money.Amount:
		return ValueFromAmount(v), nil
	case string:
		return ParseValue(v)
	case int:
		return NewValueFromInt64(int64(v)), nil
	case int32:
		return NewValueFromInt64(int64(v)), nil
	case int64:
		return NewValueFromInt64(v), nil
	case float32:
		return NewValueFromFloat64(float64(v)), nil
	case float64:
		return NewValueFromFloat64(v), nil
	case nil:
		return Value{}, fmt.Errorf("numfmt: nil template value")
	default:
		return Value{}, fmt.Errorf("numfmt: unsupported template value %T", value)
	}
}

// extractLocale extracts the locale from template data using the configured key
// This function handles both map[string]any and struct types (like PageData)
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return defaultHelperLocale
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return defaultHelperLocale
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return defaultHelperLocale
}
