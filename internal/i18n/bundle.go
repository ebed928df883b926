package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

// Record is one entry of an array-valued translation, e.g. a FAQ item.
type Record map[string]string

// Bundle holds the nested translation tables for every loaded locale.
// Lookups never fail: a miss returns the key, an empty slice or zero.
type Bundle struct {
	mu       sync.RWMutex
	tables   map[Locale]map[string]any
	fallback Locale
}

// Load reads <locale>.json for each supported locale from fsys. The fallback
// locale is mandatory; the others may be missing.
func Load(fsys fs.FS, fallback Locale, supported []Locale) (*Bundle, error) {
	if len(supported) == 0 {
		supported = All
	}
	b := &Bundle{
		tables:   map[Locale]map[string]any{},
		fallback: fallback,
	}
	for _, l := range supported {
		raw, err := fs.ReadFile(fsys, l.String()+".json")
		if err != nil {
			// allow missing file for non-default locales
			if l == fallback || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.tables[l] = m
	}
	if _, ok := b.tables[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Fallback returns the configured fallback locale.
func (b *Bundle) Fallback() Locale { return b.fallback }

// Loaded reports whether a table exists for l.
func (b *Bundle) Loaded(l Locale) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.tables[l]
	return ok
}

// Replace swaps in the tables of other. Used by the dev-mode watcher.
func (b *Bundle) Replace(other *Bundle) {
	if other == nil {
		return
	}
	other.mu.RLock()
	tables := other.tables
	other.mu.RUnlock()
	b.mu.Lock()
	b.tables = tables
	b.mu.Unlock()
}

// T returns the string at the dotted key, or the key itself.
func (b *Bundle) T(l Locale, key string) string {
	if v, ok := b.Lookup(l, key); ok {
		return v
	}
	return key
}

// Lookup returns the string at the dotted key and whether it was found.
func (b *Bundle) Lookup(l Locale, key string) (string, bool) {
	s, ok := b.value(l, key).(string)
	return s, ok
}

// Array returns the list of records at key, or an empty slice.
func (b *Bundle) Array(l Locale, key string) []Record {
	list, ok := b.value(l, key).([]any)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rec := make(Record, len(obj))
		for k, v := range obj {
			if s, ok := scalarString(v); ok {
				rec[k] = s
			}
		}
		out = append(out, rec)
	}
	return out
}

// Strings returns the list of strings at key, or an empty slice. Non-string
// elements are skipped.
func (b *Bundle) Strings(l Locale, key string) []string {
	list, ok := b.value(l, key).([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Number returns the number at key, or zero.
func (b *Bundle) Number(l Locale, key string) float64 {
	if v, ok := b.value(l, key).(float64); ok {
		return v
	}
	return 0
}

// Int is Number truncated to an integer.
func (b *Bundle) Int(l Locale, key string) int64 {
	return int64(b.Number(l, key))
}

// For binds the bundle to one locale for use in views.
func (b *Bundle) For(l Locale) Translator {
	return Translator{bundle: b, Locale: l}
}

func (b *Bundle) value(l Locale, key string) any {
	if b == nil || key == "" {
		return nil
	}
	b.mu.RLock()
	table, ok := b.tables[l]
	b.mu.RUnlock()
	if !ok {
		return nil
	}
	var cur any = table
	for _, seg := range strings.Split(key, ".") {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[seg]
			if !ok {
				return nil
			}
			cur = next
		case []any:
			// numeric segments index into lists, e.g. faq.items.0.question
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil
			}
			cur = node[i]
		default:
			return nil
		}
	}
	return cur
}

func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

// Translator is a Bundle bound to a locale.
type Translator struct {
	bundle *Bundle
	Locale Locale
}

func (t Translator) T(key string) string { return t.bundle.T(t.Locale, key) }
func (t Translator) Lookup(key string) (string, bool) { return t.bundle.Lookup(t.Locale, key) }
func (t Translator) Array(key string) []Record { return t.bundle.Array(t.Locale, key) }
func (t Translator) Strings(key string) []string { return t.bundle.Strings(t.Locale, key) }
func (t Translator) Number(key string) float64 { return t.bundle.Number(t.Locale, key) }
func (t Translator) Int(key string) int64 { return t.bundle.Int(t.Locale, key) }
func (t Translator) Path(path string) string { return Localize(path, t.Locale) }
func (t Translator) Tf(key string, args ...any) string { return fmt.Sprintf(t.T(key), args...) }
