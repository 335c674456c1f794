// Package components resolves Bootstrap component options.
//
// Every component is a Definition: a typed option schema, the traits it
// composes and a build function deriving component-specific values. One
// Engine renders any definition: it resolves the schema and the traits
// against the caller's props and the component's configuration bag, runs
// the build function and assembles the flat options map a template
// consumes. Rendering never fails on malformed configuration.
package components

import (
	"time"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

// Definition describes one component.
type Definition struct {
	Name        string
	Description string
	// Tag is the default root element.
	Tag string
	// Context is the trait context used for the root classes and
	// attributes. Leave empty when Build places trait output itself.
	Context     string
	BaseClasses []string
	Schema      options.Schema
	// Traits returns a fresh trait set whose field values are the
	// component's fallbacks. Nil means the component composes none.
	Traits func() *traits.Set
	Build  func(c *Context)
}

// Context is the per-render state handed to a build function.
type Context struct {
	Name   string
	Props  options.Props
	Bag    options.Bag
	Values options.Values
	Traits *traits.Set
	// Tag is the root element; builds may change it.
	Tag string

	now     func() time.Time
	classes []string
	attrs   options.Attrs
	extra   options.Options
}

// AddClass appends root classes.
func (c *Context) AddClass(classes ...string) {
	c.classes = append(c.classes, classes...)
}

// SetAttr sets a root attribute. nil and false omit it when rendered.
func (c *Context) SetAttr(name string, value any) {
	c.attrs.Set(name, value)
}

// Set stores a derived value in the options map.
func (c *Context) Set(key string, value any) {
	c.extra[key] = value
}

// Now returns the engine clock.
func (c *Context) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// ID returns the resolved id, or fallback when none was given.
func (c *Context) ID(fallback string) string {
	if id := c.Values.String("id"); id != "" {
		return id
	}
	return fallback
}

// String returns a resolved string option.
func (c *Context) String(key string) string { return c.Values.String(key) }

// Int returns a resolved integer option.
func (c *Context) Int(key string) int { return c.Values.Int(key) }

// Float returns a resolved float option.
func (c *Context) Float(key string) float64 { return c.Values.Float(key) }

// Bool returns a resolved boolean option.
func (c *Context) Bool(key string) bool { return c.Values.Bool(key) }

// Items returns resolved structured entries.
func (c *Context) Items(key string) []map[string]any { return c.Values.Items(key) }

// Has reports whether a nullable option resolved to a value.
func (c *Context) Has(key string) bool {
	if !c.Values.Has(key) {
		return false
	}
	if s, ok := c.Values[key].(string); ok {
		return s != ""
	}
	return true
}
