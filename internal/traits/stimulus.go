package traits

import (
	"encoding/json"
	"sort"
	"strings"
	"unicode"

	"github.com/conneroisu/bsui/internal/options"
)

// Stimulus attaches a client-side behaviour hook: a controller identifier,
// optional action descriptors and controller values. The identifier is
// opaque here; only the data attributes are computed.
type Stimulus struct {
	Controller string
	Enabled    bool
	Actions    []string
	Values     map[string]any
}

// NewStimulus returns an enabled hook for controller.
func NewStimulus(controller string) *Stimulus {
	return &Stimulus{Controller: controller, Enabled: true}
}

// Apply implements Trait.
func (s *Stimulus) Apply(props options.Props, bag options.Bag) {
	s.Controller = options.Resolve(props, bag, "stimulus_controller", s.Controller, options.ToString)
	s.Enabled = options.Resolve(props, bag, "stimulus_enabled", s.Enabled, options.ToBool)
	s.Actions = options.Resolve(props, bag, "stimulus_actions", s.Actions, options.ToStringList)

	values := options.Resolve(props, bag, "stimulus_values", map[string]any{}, options.ToMap)
	merged := make(map[string]any, len(s.Values)+len(values))
	for k, v := range s.Values {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	s.Values = merged
}

// Identifier returns the first controller identifier.
func (s *Stimulus) Identifier() string {
	fields := strings.Fields(s.Controller)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ClassesFor implements Trait.
func (s *Stimulus) ClassesFor(string) []string { return nil }

// AttributesFor implements Trait.
func (s *Stimulus) AttributesFor(string) options.Attrs {
	id := s.Identifier()
	if !s.Enabled || id == "" {
		return nil
	}
	attrs := options.Attrs{{Name: "data-controller", Value: strings.Join(strings.Fields(s.Controller), " ")}}
	if len(s.Actions) > 0 {
		attrs.Set("data-action", strings.Join(s.Actions, " "))
	}

	keys := make([]string, 0, len(s.Values))
	for k := range s.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.Values[k]
		if v == nil {
			continue
		}
		attrs.Set("data-"+id+"-"+Kebab(k)+"-value", valueString(v))
	}
	return attrs
}

// Export implements Trait.
func (s *Stimulus) Export(opts options.Options) {
	if !s.Enabled {
		opts["stimulus_controller"] = ""
		return
	}
	opts["stimulus_controller"] = s.Controller
}

// Kebab converts camelCase and snake_case keys to kebab-case.
func Kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == ' ':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func valueString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return options.StringOr(val, "")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
