package components

import (
	"context"
	"time"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/logging"
	"github.com/conneroisu/bsui/internal/metrics"
	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/registry"
	"github.com/conneroisu/bsui/internal/traits"
)

// ConfigSource supplies the configuration bag of a component.
type ConfigSource interface {
	For(name string) options.Bag
}

// Option keys shared by every component.
var commonSchema = options.Schema{
	options.NullStr("id"),
	options.List("class"),
	options.Map("attr"),
}

// Engine renders component options.
type Engine struct {
	registry *registry.ComponentRegistry[*Definition]
	config   ConfigSource
	logger   logging.Logger
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock replaces the clock used for date-dependent components.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the engine logger.
func WithLogger(logger logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine holding the full catalogue. config may be
// nil, in which case every component uses its literal fallbacks.
func NewEngine(config ConfigSource, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: registry.NewComponentRegistry[*Definition](),
		config:   config,
		logger:   logging.NewNopLogger(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("components")

	for _, def := range Catalogue() {
		e.Register(def)
	}
	return e
}

// Register adds or replaces a definition.
func (e *Engine) Register(def *Definition) {
	if event := e.registry.Register(def.Name, def); event == registry.EventTypeUpdated {
		e.logger.Debug(context.Background(), "component definition replaced", "name", def.Name)
	}
}

// Definition returns the definition registered under name.
func (e *Engine) Definition(name string) (*Definition, bool) {
	return e.registry.Get(name)
}

// Names returns the registered component names in sorted order.
func (e *Engine) Names() []string {
	return e.registry.Names()
}

// Render resolves the options of one component instance. The only error is
// an unknown component name.
func (e *Engine) Render(name string, props options.Props) (options.Options, error) {
	def, ok := e.registry.Get(name)
	if !ok {
		metrics.ComponentRendersTotal.WithLabelValues("unknown", "not_found").Inc()
		return nil, errors.ErrComponentNotFound(name)
	}

	var bag options.Bag
	if e.config != nil {
		bag = e.config.For(def.Name)
	}

	values := commonSchema.Resolve(props, bag)
	for k, v := range def.Schema.Resolve(props, bag) {
		values[k] = v
	}

	var set *traits.Set
	if def.Traits != nil {
		set = def.Traits()
	}
	set.Apply(props, bag)

	c := &Context{
		Name:   def.Name,
		Props:  props,
		Bag:    bag,
		Values: values,
		Traits: set,
		Tag:    def.Tag,
		now:    e.now,
		extra:  options.Options{},
	}
	if def.Build != nil {
		def.Build(c)
	}
	if set != nil && set.State != nil {
		set.State.Tag = c.Tag
	}

	classes := options.BuildClasses(
		def.BaseClasses,
		set.ClassesFor(def.Context),
		c.classes,
		options.StringListOr(bagValue(bag, "class"), nil),
		explicitClasses(props),
	)

	attrs := e.attributes(def, c, set, bag, props)

	opts := options.Options{}
	for k, v := range values {
		opts[k] = v
	}
	set.Export(opts)
	for k, v := range c.extra {
		opts[k] = v
	}
	opts["component"] = def.Name
	opts["tag"] = c.Tag
	opts["classes"] = classes
	opts["attributes"] = attrs
	opts["attrs"] = attrs.String()

	metrics.ComponentRendersTotal.WithLabelValues(def.Name, "ok").Inc()
	return opts, nil
}

func (e *Engine) attributes(def *Definition, c *Context, set *traits.Set, bag options.Bag, props options.Props) options.Attrs {
	var attrs options.Attrs
	if id := c.Values.String("id"); id != "" {
		attrs.Set("id", id)
	}
	attrs.Merge(set.AttributesFor(def.Context))
	attrs.Merge(c.attrs)

	if set != nil && set.Icon != nil && set.Icon.Only && set.Icon.HasIcon() {
		if label := c.Values.String("label"); label != "" {
			if _, ok := attrs.Get("aria-label"); !ok {
				attrs.Set("aria-label", label)
			}
		}
	}

	if m, ok := options.ToMap(bagValue(bag, "attr")); ok {
		attrs.Merge(options.AttrsFromMap(m))
	}
	if v, ok := props.Lookup("attr"); ok {
		if m, ok := options.ToMap(v); ok {
			attrs.Merge(options.AttrsFromMap(m))
		}
	}
	return attrs
}

func bagValue(bag options.Bag, key string) any {
	v, _ := bag.Lookup(key)
	return v
}

func explicitClasses(props options.Props) []string {
	v, ok := props.Lookup("class")
	if !ok {
		return nil
	}
	return options.StringListOr(v, nil)
}
