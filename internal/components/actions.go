package components

import (
	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

func buttonDefinition() *Definition {
	return &Definition{
		Name:        "button",
		Description: "Action button or button-styled link",
		Tag:         "button",
		Context:     "button",
		BaseClasses: []string{"btn"},
		Schema: options.Schema{
			options.Str("label", ""),
			options.NullStr("href"),
			options.Str("type", "button"),
			options.NullStr("target"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant:  &traits.Variant{Variant: "primary"},
				Size:     &traits.Size{},
				State:    &traits.State{},
				Icon:     &traits.Icon{},
				Tooltip:  traits.NewTooltip(),
				Popover:  traits.NewPopover(),
				Stimulus: &traits.Stimulus{Enabled: true},
			}
		},
		Build: func(c *Context) {
			if c.Has("href") {
				c.Tag = "a"
				href := c.String("href")
				if c.Traits.State.Disabled {
					href = ""
				}
				if href != "" {
					c.SetAttr("href", href)
				}
				c.SetAttr("role", "button")
				if c.Has("target") {
					c.SetAttr("target", c.String("target"))
				}
				return
			}
			c.SetAttr("type", oneOf(c.String("type"), "button", "button", "submit", "reset"))
		},
	}
}

func buttonGroupDefinition() *Definition {
	return &Definition{
		Name:        "button_group",
		Description: "Row or column of related buttons",
		Tag:         "div",
		Context:     "btn-group",
		Schema: options.Schema{
			options.Bool("vertical", false),
			options.Str("label", "Button group"),
			options.Items("buttons"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{Variant: "secondary"},
				Size:    &traits.Size{},
			}
		},
		Build: func(c *Context) {
			if c.Bool("vertical") {
				c.AddClass("btn-group-vertical")
			} else {
				c.AddClass("btn-group")
			}
			c.SetAttr("role", "group")
			c.SetAttr("aria-label", c.String("label"))

			group := c.Traits.Variant
			buttons := make([]map[string]any, 0)
			for _, item := range c.Items("buttons") {
				v := &traits.Variant{
					Variant: field(item, group.Variant, "variant"),
					Outline: flag(item, "outline", group.Outline),
				}
				state := &traits.State{
					Active:   flag(item, "active", false),
					Disabled: flag(item, "disabled", false),
					Tag:      "button",
				}
				href := field(item, "", "href")
				if href != "" {
					state.Tag = "a"
				}
				buttons = append(buttons, map[string]any{
					"label":   field(item, "", "label", "text"),
					"href":    href,
					"tag":     state.Tag,
					"classes": options.BuildClasses([]string{"btn"}, v.ClassesFor("button"), state.ClassesFor("button")),
					"attrs":   state.AttributesFor("button").String(),
				})
			}
			c.Set("buttons", buttons)
		},
	}
}

func linkDefinition() *Definition {
	return &Definition{
		Name:        "link",
		Description: "Styled anchor",
		Tag:         "a",
		Context:     "link",
		Schema: options.Schema{
			options.Str("href", "#"),
			options.Str("label", ""),
			options.NullStr("target"),
			options.Bool("underline", true),
			options.Bool("external", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{},
				State:   &traits.State{},
				Icon:    &traits.Icon{},
				Tooltip: traits.NewTooltip(),
				Popover: traits.NewPopover(),
			}
		},
		Build: func(c *Context) {
			c.SetAttr("href", c.String("href"))
			if !c.Bool("underline") {
				c.AddClass("text-decoration-none")
			}
			switch {
			case c.Bool("external"):
				c.SetAttr("target", "_blank")
				c.SetAttr("rel", "noopener noreferrer")
			case c.Has("target"):
				c.SetAttr("target", c.String("target"))
			}
		},
	}
}

var dropdownDirections = map[string]string{
	"down":   "dropdown",
	"up":     "dropup",
	"start":  "dropstart",
	"end":    "dropend",
	"center": "dropdown-center",
}

func dropdownDefinition() *Definition {
	return &Definition{
		Name:        "dropdown",
		Description: "Toggleable menu of links and actions",
		Tag:         "div",
		Schema: options.Schema{
			options.Str("label", "Dropdown"),
			options.Str("direction", "down"),
			options.Items("items"),
			options.Bool("split", false),
			options.Bool("align_end", false),
			options.Bool("dark", false),
			options.Str("auto_close", "true"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{Variant: "secondary"},
				Size:    &traits.Size{},
				State:   &traits.State{},
				Icon:    &traits.Icon{},
			}
		},
		Build: func(c *Context) {
			direction, ok := dropdownDirections[c.String("direction")]
			if !ok {
				direction = "dropdown"
			}
			split := c.Bool("split")
			if split {
				c.AddClass("btn-group")
			}
			c.AddClass(direction)

			set := c.Traits
			set.State.Tag = "button"
			buttonClasses := options.BuildClasses(
				[]string{"btn"},
				set.Variant.ClassesFor("button"),
				set.Size.ClassesFor("button"),
				set.State.ClassesFor("button"),
				set.Icon.ClassesFor("button"),
			)
			c.Set("button_classes", buttonClasses)
			c.Set("toggle_classes", options.BuildClasses(
				[]string{buttonClasses, "dropdown-toggle"},
				[]string{when(split, "dropdown-toggle-split")},
			))

			toggle := options.Attrs{
				{Name: "type", Value: "button"},
				{Name: "data-bs-toggle", Value: "dropdown"},
				{Name: "aria-expanded", Value: "false"},
			}
			autoClose := oneOf(c.String("auto_close"), "true", "true", "false", "inside", "outside")
			if autoClose != "true" {
				toggle.Set("data-bs-auto-close", autoClose)
			}
			toggle.Merge(set.State.AttributesFor("button"))
			c.Set("toggle_attrs", toggle.String())

			c.Set("menu_classes", options.BuildClasses(
				[]string{"dropdown-menu"},
				[]string{when(c.Bool("align_end"), "dropdown-menu-end"), when(c.Bool("dark"), "dropdown-menu-dark")},
			))

			items := make([]map[string]any, 0)
			for _, item := range c.Items("items") {
				if flag(item, "divider", false) {
					items = append(items, map[string]any{"divider": true})
					continue
				}
				label := field(item, "", "label", "text")
				if flag(item, "header", false) {
					items = append(items, map[string]any{"header": true, "label": label})
					continue
				}
				state := &traits.State{
					Active:   flag(item, "active", false),
					Disabled: flag(item, "disabled", false),
					Tag:      "a",
				}
				items = append(items, map[string]any{
					"label":   label,
					"href":    field(item, "#", "href"),
					"icon":    field(item, "", "icon"),
					"classes": options.BuildClasses([]string{"dropdown-item"}, state.ClassesFor("dropdown-item")),
					"attrs":   state.AttributesFor("dropdown-item").String(),
				})
			}
			c.Set("items", items)
		},
	}
}
