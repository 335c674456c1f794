package config

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/options"
)

// ComponentConfig maps component names to configuration bags. It is built
// once at startup and never mutated afterwards, so it is safe to share.
type ComponentConfig struct {
	bags map[string]options.Bag
}

// NewComponentConfig creates a bag store. Component names are
// case-insensitive.
func NewComponentConfig(bags map[string]map[string]interface{}) *ComponentConfig {
	c := &ComponentConfig{bags: make(map[string]options.Bag, len(bags))}
	for name, bag := range bags {
		if bag == nil {
			continue
		}
		c.bags[componentKey(name)] = options.Bag(bag)
	}
	return c
}

// LoadComponentConfig reads a YAML file of component-name -> bag. An empty
// path yields an empty store.
func LoadComponentConfig(path string) (*ComponentConfig, error) {
	if path == "" {
		return NewComponentConfig(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotFound, "cannot read component config "+path, err)
	}

	var bags map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &bags); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid component config "+path, err)
	}

	return NewComponentConfig(bags), nil
}

// BuildComponentConfig loads the configured file and layers the inline
// defaults over it.
func BuildComponentConfig(cfg ComponentsConfig) (*ComponentConfig, error) {
	base, err := LoadComponentConfig(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	return base.With(cfg.Defaults), nil
}

// For returns the bag of a component, or an empty bag.
func (c *ComponentConfig) For(name string) options.Bag {
	if c == nil {
		return options.Bag{}
	}
	if bag, ok := c.bags[componentKey(name)]; ok {
		return bag
	}
	return options.Bag{}
}

// Merge returns the bag of a component with overrides applied recursively.
// nil and empty list overrides are discarded so the default survives.
func (c *ComponentConfig) Merge(name string, overrides map[string]interface{}) options.Bag {
	return c.For(name).Merge(overrides)
}

// With returns a new store with overlay bags merged over the existing ones.
func (c *ComponentConfig) With(overlay map[string]map[string]interface{}) *ComponentConfig {
	out := &ComponentConfig{bags: make(map[string]options.Bag, len(c.bags)+len(overlay))}
	for name, bag := range c.bags {
		out.bags[name] = bag
	}
	for name, bag := range overlay {
		key := componentKey(name)
		out.bags[key] = c.For(key).Merge(bag)
	}
	return out
}

// Names returns the configured component names in sorted order.
func (c *ComponentConfig) Names() []string {
	names := make([]string, 0, len(c.bags))
	for name := range c.bags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every bag keyed by component name.
func (c *ComponentConfig) All() map[string]options.Bag {
	out := make(map[string]options.Bag, len(c.bags))
	for name, bag := range c.bags {
		out[name] = bag
	}
	return out
}

func componentKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
