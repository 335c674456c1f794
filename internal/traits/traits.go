// Package traits holds the capability mixins components compose: colour
// variants, sizes, interaction state, icons, tooltips, popovers and the
// client-side behaviour hook.
//
// A trait is a small struct whose field values are the component's literal
// fallbacks. Apply resolves each field against the caller's props and the
// component's configuration bag. ClassesFor and AttributesFor derive the
// presentational output for a context keyword such as "button" or "badge";
// an unknown keyword yields nothing.
package traits

import (
	"github.com/conneroisu/bsui/internal/options"
)

// Trait is implemented by every mixin.
type Trait interface {
	Apply(props options.Props, bag options.Bag)
	ClassesFor(context string) []string
	AttributesFor(context string) options.Attrs
	Export(opts options.Options)
}

// Set is the group of traits a component opts into. Nil members are unused.
type Set struct {
	Variant  *Variant
	Size     *Size
	State    *State
	Icon     *Icon
	Tooltip  *Tooltip
	Popover  *Popover
	Stimulus *Stimulus
}

// Apply resolves every trait in the set. Size resolves before Icon because
// the default icon gap depends on it.
func (s *Set) Apply(props options.Props, bag options.Bag) {
	if s == nil {
		return
	}
	for _, t := range s.ordered() {
		if icon, ok := t.(*Icon); ok && s.Size != nil {
			icon.Size = s.Size.Size
		}
		t.Apply(props, bag)
	}
}

// ClassesFor concatenates the class lists of every trait for context.
func (s *Set) ClassesFor(context string) []string {
	if s == nil {
		return nil
	}
	var classes []string
	for _, t := range s.ordered() {
		classes = append(classes, t.ClassesFor(context)...)
	}
	return classes
}

// AttributesFor merges the attributes of every trait for context. A popover
// owns data-bs-toggle, so an active popover suppresses the tooltip.
func (s *Set) AttributesFor(context string) options.Attrs {
	if s == nil {
		return nil
	}
	var attrs options.Attrs
	for _, t := range s.ordered() {
		if tip, ok := t.(*Tooltip); ok && s.Popover != nil && s.Popover.Active() && tip.Active() {
			continue
		}
		attrs.Merge(t.AttributesFor(context))
	}
	return attrs
}

// Export writes every trait's resolved values into opts.
func (s *Set) Export(opts options.Options) {
	if s == nil {
		return
	}
	for _, t := range s.ordered() {
		t.Export(opts)
	}
}

func (s *Set) ordered() []Trait {
	var out []Trait
	if s.Variant != nil {
		out = append(out, s.Variant)
	}
	if s.Size != nil {
		out = append(out, s.Size)
	}
	if s.State != nil {
		out = append(out, s.State)
	}
	if s.Icon != nil {
		out = append(out, s.Icon)
	}
	if s.Tooltip != nil {
		out = append(out, s.Tooltip)
	}
	if s.Popover != nil {
		out = append(out, s.Popover)
	}
	if s.Stimulus != nil {
		out = append(out, s.Stimulus)
	}
	return out
}
