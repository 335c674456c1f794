package options

// Coercer converts a loosely typed value to T, reporting false when the
// value cannot be used.
type Coercer[T any] func(v any) (T, bool)

// Resolve applies the three-tier precedence for a single option: an explicit
// prop wins, then the configuration bag, then the literal fallback. A layer
// whose value fails coercion is skipped.
func Resolve[T any](props Props, bag Bag, key string, fallback T, coerce Coercer[T]) T {
	return ResolveAliases(props, bag, []string{key}, fallback, coerce)
}

// ResolveAliases is Resolve for an option spelled several ways. Each layer
// is searched in key order before falling to the next layer, so an explicit
// alias still beats a configured canonical key.
func ResolveAliases[T any](props Props, bag Bag, keys []string, fallback T, coerce Coercer[T]) T {
	for _, key := range keys {
		if v, ok := props.Lookup(key); ok {
			if c, ok := coerce(v); ok {
				return c
			}
		}
	}
	for _, key := range keys {
		if v, ok := bag.Lookup(key); ok {
			if c, ok := coerce(v); ok {
				return c
			}
		}
	}
	return fallback
}

// Kind is the declared type of an option.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStringList
	KindMap
	KindItems
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string-list"
	case KindMap:
		return "map"
	case KindItems:
		return "items"
	default:
		return "unknown"
	}
}

func (k Kind) coerce(v any) (any, bool) {
	switch k {
	case KindString:
		return ToString(v)
	case KindInt:
		return ToInt(v)
	case KindFloat:
		return ToFloat(v)
	case KindBool:
		return ToBool(v)
	case KindStringList:
		return ToStringList(v)
	case KindMap:
		return ToMap(v)
	case KindItems:
		return ToItems(v)
	}
	return nil, false
}

// Field declares one option of a component. A nil Fallback marks the
// option as nullable.
type Field struct {
	Key      string
	Kind     Kind
	Fallback any
}

// Str declares a string option.
func Str(key string, fallback string) Field { return Field{Key: key, Kind: KindString, Fallback: fallback} }

// NullStr declares a string option with no fallback.
func NullStr(key string) Field { return Field{Key: key, Kind: KindString} }

// Int declares an integer option.
func Int(key string, fallback int) Field { return Field{Key: key, Kind: KindInt, Fallback: fallback} }

// NullInt declares an integer option with no fallback.
func NullInt(key string) Field { return Field{Key: key, Kind: KindInt} }

// Float declares a float option.
func Float(key string, fallback float64) Field {
	return Field{Key: key, Kind: KindFloat, Fallback: fallback}
}

// Bool declares a boolean option.
func Bool(key string, fallback bool) Field { return Field{Key: key, Kind: KindBool, Fallback: fallback} }

// List declares a string-list option.
func List(key string, fallback ...string) Field {
	if fallback == nil {
		fallback = []string{}
	}
	return Field{Key: key, Kind: KindStringList, Fallback: fallback}
}

// Map declares a map option.
func Map(key string) Field { return Field{Key: key, Kind: KindMap, Fallback: map[string]any{}} }

// Items declares a list of structured entries (tabs, steps, columns).
func Items(key string) Field {
	return Field{Key: key, Kind: KindItems, Fallback: []map[string]any{}}
}

// Schema is the typed option declaration of a component.
type Schema []Field

// Resolve resolves every field of the schema.
func (s Schema) Resolve(props Props, bag Bag) Values {
	values := make(Values, len(s))
	for _, f := range s {
		values[f.Key] = Resolve[any](props, bag, f.Key, f.Fallback, f.Kind.coerce)
	}
	return values
}

// Values holds resolved options keyed by option name.
type Values map[string]any

// Has reports whether key resolved to a non-nil value.
func (v Values) Has(key string) bool {
	val, ok := v[key]
	return ok && val != nil
}

// String returns the string value of key, or "".
func (v Values) String(key string) string {
	return StringOr(v[key], "")
}

// Int returns the integer value of key, or 0.
func (v Values) Int(key string) int {
	return IntOr(v[key], 0)
}

// Float returns the float value of key, or 0.
func (v Values) Float(key string) float64 {
	return FloatOr(v[key], 0)
}

// Bool returns the boolean value of key, or false.
func (v Values) Bool(key string) bool {
	return BoolOr(v[key], false)
}

// Strings returns the string-list value of key, or nil.
func (v Values) Strings(key string) []string {
	return StringListOr(v[key], nil)
}

// Map returns the map value of key, or nil.
func (v Values) Map(key string) map[string]any {
	return MapOr(v[key], nil)
}

// Items returns the structured entries stored under key, or nil.
func (v Values) Items(key string) []map[string]any {
	items, _ := ToItems(v[key])
	return items
}
