package options

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Options is the flat map handed to a template renderer.
type Options map[string]any

// BuildClasses joins class lists in call order. Empty tokens are dropped;
// repeated tokens are kept.
func BuildClasses(lists ...[]string) string {
	var b strings.Builder
	for _, list := range lists {
		for _, class := range list {
			class = strings.TrimSpace(class)
			if class == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(class)
		}
	}
	return b.String()
}

// Attr is one HTML attribute.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute map.
type Attrs []Attr

// AttrsFromMap converts a map to Attrs. Maps carry no order, so names are
// sorted to keep output stable.
func AttrsFromMap(m map[string]any) Attrs {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make(Attrs, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, Attr{Name: name, Value: m[name]})
	}
	return attrs
}

// Set replaces the value of name in place, or appends it.
func (a *Attrs) Set(name string, value any) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Get returns the value of name.
func (a Attrs) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Merge applies other on top of a, keeping the position of existing names.
func (a *Attrs) Merge(other Attrs) {
	for _, attr := range other {
		a.Set(attr.Name, attr.Value)
	}
}

// String renders the attributes.
func (a Attrs) String() string {
	return RenderAttributes(a)
}

// MarshalJSON encodes the attributes as a JSON object in their own order.
func (a Attrs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the attributes as a YAML mapping in their own order.
func (a Attrs) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, attr := range a {
		value := &yaml.Node{}
		if err := value.Encode(attr.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: attr.Name}, value)
	}
	return node, nil
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`'`, "&#039;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// EscapeAttr escapes a value for use inside a double quoted attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// RenderAttributes renders attributes in order. nil and false omit the
// attribute, true renders the bare name, anything else renders
// name="escaped value".
func RenderAttributes(attrs Attrs) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Name == "" {
			continue
		}
		switch v := attr.Value.(type) {
		case nil:
			continue
		case bool:
			if v {
				parts = append(parts, attr.Name)
			}
			continue
		}
		parts = append(parts, attr.Name+`="`+EscapeAttr(stringify(attr.Value))+`"`)
	}
	return strings.Join(parts, " ")
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
