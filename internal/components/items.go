package components

import (
	"strconv"

	"github.com/conneroisu/bsui/internal/options"
)

// field returns the first string found under keys.
func field(item map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := item[key]; ok && v != nil {
			if s := options.StringOr(v, ""); s != "" {
				return s
			}
		}
	}
	return def
}

func flag(item map[string]any, key string, def bool) bool {
	v, ok := item[key]
	if !ok || v == nil {
		return def
	}
	return options.BoolOr(v, def)
}

func number(item map[string]any, key string, def int) int {
	v, ok := item[key]
	if !ok || v == nil {
		return def
	}
	return options.IntOr(v, def)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// oneOf returns v when it is one of allowed, else def.
func oneOf(v, def string, allowed ...string) string {
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return def
}

func itoa(n int) string { return strconv.Itoa(n) }

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

var breakpoints = []string{"sm", "md", "lg", "xl", "xxl"}

func isBreakpoint(s string) bool {
	return oneOf(s, "", breakpoints...) != ""
}
