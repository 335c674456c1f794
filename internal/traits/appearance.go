package traits

import (
	"regexp"

	"github.com/conneroisu/bsui/internal/options"
)

// Palette lists the Bootstrap theme colours. Custom theme colours that
// follow the same naming are accepted as well.
var Palette = []string{"primary", "secondary", "success", "danger", "warning", "info", "light", "dark"}

var variantPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Variant maps a colour keyword and an outline flag to context classes.
type Variant struct {
	Variant string
	Outline bool
}

// Apply implements Trait.
func (v *Variant) Apply(props options.Props, bag options.Bag) {
	v.Variant = options.Resolve(props, bag, "variant", v.Variant, options.ToString)
	v.Outline = options.Resolve(props, bag, "outline", v.Outline, options.ToBool)
}

// Valid reports whether the variant can produce classes.
func (v *Variant) Valid() bool {
	return variantPattern.MatchString(v.Variant)
}

// ClassesFor implements Trait.
func (v *Variant) ClassesFor(context string) []string {
	if !v.Valid() {
		return nil
	}
	name := v.Variant
	switch context {
	case "button":
		if v.Outline && name != "link" {
			return []string{"btn-outline-" + name}
		}
		return []string{"btn-" + name}
	case "badge", "toast":
		return []string{"text-bg-" + name}
	case "card":
		if v.Outline {
			return []string{"border-" + name}
		}
		return []string{"text-bg-" + name}
	case "alert":
		return []string{"alert-" + name}
	case "text", "spinner":
		return []string{"text-" + name}
	case "bg", "progress":
		return []string{"bg-" + name}
	case "border":
		return []string{"border-" + name}
	case "link":
		return []string{"link-" + name}
	case "list-group":
		return []string{"list-group-item-" + name}
	case "table":
		return []string{"table-" + name}
	}
	return nil
}

// AttributesFor implements Trait.
func (v *Variant) AttributesFor(string) options.Attrs { return nil }

// Export implements Trait.
func (v *Variant) Export(opts options.Options) {
	opts["variant"] = v.Variant
	opts["outline"] = v.Outline
}

var sizeClasses = map[string]map[string]string{
	"button":    {"sm": "btn-sm", "lg": "btn-lg"},
	"btn-group": {"sm": "btn-group-sm", "lg": "btn-group-lg"},
	"input":     {"sm": "form-control-sm", "lg": "form-control-lg"},
	"select":    {"sm": "form-select-sm", "lg": "form-select-lg"},
	"pagination": {
		"sm": "pagination-sm",
		"lg": "pagination-lg",
	},
	"modal":        {"sm": "modal-sm", "lg": "modal-lg", "xl": "modal-xl"},
	"spinner":      {"sm": "spinner-border-sm"},
	"spinner-grow": {"sm": "spinner-grow-sm"},
	"table":        {"sm": "table-sm"},
	"avatar":       {"sm": "avatar-sm", "lg": "avatar-lg"},
}

// Size maps a size keyword (sm, lg, and xl for modals) to context classes.
type Size struct {
	Size string
}

// Apply implements Trait.
func (s *Size) Apply(props options.Props, bag options.Bag) {
	s.Size = options.Resolve(props, bag, "size", s.Size, options.ToString)
}

// ClassesFor implements Trait.
func (s *Size) ClassesFor(context string) []string {
	byContext, ok := sizeClasses[context]
	if !ok {
		return nil
	}
	if class, ok := byContext[s.Size]; ok {
		return []string{class}
	}
	return nil
}

// AttributesFor implements Trait.
func (s *Size) AttributesFor(string) options.Attrs { return nil }

// Export implements Trait.
func (s *Size) Export(opts options.Options) {
	opts["size"] = s.Size
}

var formControlTags = map[string]bool{
	"button": true, "input": true, "select": true, "textarea": true,
	"fieldset": true, "option": true, "optgroup": true,
}

var stateContexts = map[string]bool{
	"button": true, "link": true, "list-group": true, "nav": true,
	"dropdown-item": true, "page": true, "input": true, "select": true,
}

// State derives block, active and disabled presentation. Tag is the HTML
// element the component renders; disabled anchors cannot take the disabled
// attribute and get aria-disabled plus tabindex="-1" instead.
type State struct {
	Block    bool
	Active   bool
	Disabled bool
	Tag      string
}

// Apply implements Trait.
func (s *State) Apply(props options.Props, bag options.Bag) {
	s.Block = options.Resolve(props, bag, "block", s.Block, options.ToBool)
	s.Active = options.Resolve(props, bag, "active", s.Active, options.ToBool)
	s.Disabled = options.Resolve(props, bag, "disabled", s.Disabled, options.ToBool)
}

// ClassesFor implements Trait.
func (s *State) ClassesFor(context string) []string {
	if !stateContexts[context] {
		return nil
	}
	var classes []string
	if s.Block && (context == "button" || context == "input" || context == "select") {
		classes = append(classes, "w-100")
	}
	if s.Active {
		classes = append(classes, "active")
	}
	if s.Disabled && s.Tag == "a" {
		classes = append(classes, "disabled")
	}
	return classes
}

// AttributesFor implements Trait.
func (s *State) AttributesFor(context string) options.Attrs {
	if !stateContexts[context] {
		return nil
	}
	var attrs options.Attrs
	if s.Active {
		if context == "button" && s.Tag != "a" {
			attrs.Set("aria-pressed", "true")
		} else {
			attrs.Set("aria-current", "page")
		}
	}
	if s.Disabled {
		switch {
		case s.Tag == "a":
			attrs.Set("aria-disabled", "true")
			attrs.Set("tabindex", "-1")
		case formControlTags[s.Tag]:
			attrs.Set("disabled", true)
		default:
			attrs.Set("aria-disabled", "true")
		}
	}
	return attrs
}

// Export implements Trait.
func (s *State) Export(opts options.Options) {
	opts["block"] = s.Block
	opts["active"] = s.Active
	opts["disabled"] = s.Disabled
}
