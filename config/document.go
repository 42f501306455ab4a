package config

import (
	"github.com/pelletier/go-toml/v2"
)

// document is the generic parsed form of .cppdocs.toml: top-level tables
// mapping keys to scalar values or lists. It only lives for the duration of
// field extraction and is discarded once the Config is populated.
type document map[string]any

// parseDocument parses raw TOML into a generic document.
func parseDocument(data []byte) (document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return document(raw), nil
}

// table returns the named top-level table, or nil if absent or not a table.
func (d document) table(name string) map[string]any {
	t, _ := d[name].(map[string]any)
	return t
}

// value returns the raw value at table.key and whether it is present.
func (d document) value(table, key string) (any, bool) {
	t := d.table(table)
	if t == nil {
		return nil, false
	}
	v, ok := t[key]
	return v, ok
}

// str returns table.key when it is present and a string.
func (d document) str(table, key string) (string, bool) {
	v, ok := d.value(table, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// strOr returns table.key as a string, or fallback when it is absent or
// not a string.
func (d document) strOr(table, key, fallback string) string {
	if s, ok := d.str(table, key); ok {
		return s
	}
	return fallback
}

// boolean returns table.key when it is present and a bool.
func (d document) boolean(table, key string) (bool, bool) {
	v, ok := d.value(table, key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// integer returns table.key when it is present and an integer.
func (d document) integer(table, key string) (int64, bool) {
	v, ok := d.value(table, key)
	if !ok {
		return 0, false
	}
	i, ok := v.(int64)
	return i, ok
}

// list returns table.key when it is present and a list. Entries keep their
// raw types so callers can skip malformed ones individually.
func (d document) list(table, key string) ([]any, bool) {
	v, ok := d.value(table, key)
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}
