// Package options resolves component configuration into render-time options.
//
// Values reach a component from three layers: the explicit props passed by the
// calling template, the configuration bag registered for the component name,
// and the literal fallback declared by the component itself. The helpers in
// this package coerce loosely typed configuration values to the declared kind,
// pick the first layer that yields a usable value, and turn the result into
// the class strings and attribute maps a template needs.
//
// Nothing in this package returns an error for malformed configuration; bad
// values degrade to the next layer down.
package options

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	truthyStrings = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "on": {}}
	falsyStrings  = map[string]struct{}{"false": {}, "0": {}, "no": {}, "off": {}}
)

// ToString returns v when it already is a string.
// The boolean result is false when v carries no string (the null case).
func ToString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// decimalPattern admits plain decimal numbers with an optional exponent.
// Hex floats and the NaN/Inf spellings strconv accepts are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ToInt accepts native numeric types and numeric strings.
// Floats and float strings are truncated toward zero; values outside the
// int range are rejected.
func ToInt(v any) (int, bool) {
	if s, ok := v.(string); ok {
		f, ok := parseDecimal(s)
		if !ok || !fitsInt(f) {
			return 0, false
		}
		return int(f), true
	}
	if !isNumber(v) {
		return 0, false
	}
	if f, isFloat := nativeFloat(v); isFloat && !fitsInt(f) {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToFloat accepts native numeric types and numeric strings. NaN and
// infinities are rejected.
func ToFloat(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		return parseDecimal(s)
	}
	if !isNumber(v) {
		return 0, false
	}
	if f, isFloat := nativeFloat(v); isFloat && !isFinite(f) {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func nativeFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fitsInt(f float64) bool {
	return isFinite(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// ToBool accepts native booleans and the usual boolean spellings
// ("true"/"1"/"yes"/"on", "false"/"0"/"no"/"off"), case-insensitively.
func ToBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		if _, ok := truthyStrings[s]; ok {
			return true, true
		}
		if _, ok := falsyStrings[s]; ok {
			return false, true
		}
	}
	return false, false
}

// ToArray accepts slices, arrays and maps and returns them untouched.
func ToArray(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v, true
	}
	return nil, false
}

// ToMap accepts string-keyed maps, including the map[any]any shape some
// YAML decoders produce.
func ToMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, err := cast.ToStringE(k)
			if err != nil {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	}
	return nil, false
}

// ToStringList accepts a string slice, a slice of scalars, or a single
// string holding whitespace or comma separated tokens.
func ToStringList(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return l, true
	case string:
		return splitTokens(l), true
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if item == nil {
				continue
			}
			s, err := cast.ToStringE(item)
			if err != nil {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// ToItems accepts a list whose entries are all maps. A bare string entry
// becomes {"text": entry}.
func ToItems(v any) ([]map[string]any, bool) {
	switch l := v.(type) {
	case []map[string]any:
		return l, true
	case []any:
		out := make([]map[string]any, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				out = append(out, map[string]any{"text": s})
				continue
			}
			m, ok := ToMap(item)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	}
	return nil, false
}

// StringOr never fails: scalars are cast deterministically and anything
// else yields def.
func StringOr(v any, def string) string {
	if s, ok := ToString(v); ok {
		return s
	}
	if isNumber(v) {
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
	}
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return def
}

// IntOr never fails: booleans cast to 0/1 and anything unusable yields def.
func IntOr(v any, def int) int {
	if n, ok := ToInt(v); ok {
		return n
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return def
}

// FloatOr never fails: booleans cast to 0/1 and anything unusable yields def.
func FloatOr(v any, def float64) float64 {
	if f, ok := ToFloat(v); ok {
		return f
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return def
}

// BoolOr never fails: numbers are true when non-zero, unrecognised strings
// yield def.
func BoolOr(v any, def bool) bool {
	if b, ok := ToBool(v); ok {
		return b
	}
	if isNumber(v) {
		f, _ := ToFloat(v)
		return f != 0
	}
	return def
}

// StringListOr never fails: a lone scalar becomes a one element list.
func StringListOr(v any, def []string) []string {
	if l, ok := ToStringList(v); ok {
		return l
	}
	if isNumber(v) {
		return []string{StringOr(v, "")}
	}
	return def
}

// MapOr never fails.
func MapOr(v any, def map[string]any) map[string]any {
	if m, ok := ToMap(v); ok {
		return m
	}
	return def
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
