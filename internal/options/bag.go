package options

import (
	"reflect"
	"strings"
)

// Props holds the explicit values a caller passed for one component
// instance. A missing key and a nil value both mean "unset"; false, 0, ""
// and empty lists are explicit values.
type Props map[string]any

// Lookup returns the explicit value for key, ignoring nil.
func (p Props) Lookup(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetPath stores value under a dotted key, creating nested maps on the way
// ("tooltip.text").
func (p Props) SetPath(key string, value any) {
	parts := strings.Split(key, ".")
	m := map[string]any(p)
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// Bag is a component configuration bag. It is read-only once built.
type Bag map[string]any

// Lookup finds key in the bag. Dotted keys walk nested maps when no literal
// key matches ("tooltip.placement").
func (b Bag) Lookup(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	if v, ok := b[key]; ok {
		return v, v != nil
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	var current any = map[string]any(b)
	for _, part := range strings.Split(key, ".") {
		m, ok := ToMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, current != nil
}

// Sub returns the nested bag stored under key, or an empty bag.
func (b Bag) Sub(key string) Bag {
	v, ok := b.Lookup(key)
	if !ok {
		return Bag{}
	}
	m, ok := ToMap(v)
	if !ok {
		return Bag{}
	}
	return Bag(m)
}

// Merge returns a new bag with overrides applied on top of b. Nested maps
// merge recursively; nil and empty list/map overrides are discarded so the
// underlying value survives. Neither input is modified.
func (b Bag) Merge(overrides map[string]any) Bag {
	out := make(Bag, len(b)+len(overrides))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range overrides {
		if isEmptyOverride(v) {
			continue
		}
		if over, ok := ToMap(v); ok {
			if base, ok := ToMap(out[k]); ok {
				out[k] = map[string]any(Bag(base).Merge(over))
				continue
			}
		}
		out[k] = v
	}
	return out
}

func isEmptyOverride(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
