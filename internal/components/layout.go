package components

import (
	"strings"
	"unicode"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

func cardDefinition() *Definition {
	return &Definition{
		Name:        "card",
		Description: "Bordered content container",
		Tag:         "div",
		Context:     "card",
		BaseClasses: []string{"card"},
		Schema: options.Schema{
			options.NullStr("title"),
			options.NullStr("subtitle"),
			options.Str("body", ""),
			options.NullStr("header"),
			options.NullStr("footer"),
			options.NullStr("image"),
			options.Str("image_alt", ""),
			options.Str("image_position", "top"),
			options.Str("shadow", "none"),
			options.NullStr("href"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{}}
		},
		Build: func(c *Context) {
			switch c.String("shadow") {
			case "sm":
				c.AddClass("shadow-sm")
			case "md", "true":
				c.AddClass("shadow")
			case "lg":
				c.AddClass("shadow-lg")
			}

			position := oneOf(c.String("image_position"), "top", "top", "bottom", "overlay")
			c.Set("image_position", position)
			if c.Has("image") {
				imageClass := "card-img-" + position
				if position == "overlay" {
					imageClass = "card-img"
				}
				c.Set("image_classes", imageClass)
			}
			c.Set("body_classes", options.BuildClasses(
				[]string{when(position == "overlay" && c.Has("image"), "card-img-overlay"), "card-body"},
			))
			c.Set("stretched_link", c.Has("href"))
		},
	}
}

func accordionDefinition() *Definition {
	return &Definition{
		Name:        "accordion",
		Description: "Vertically collapsing panels",
		Tag:         "div",
		BaseClasses: []string{"accordion"},
		Schema: options.Schema{
			options.Items("items"),
			options.Int("open", 0),
			options.Bool("always_open", false),
			options.Bool("flush", false),
		},
		Build: func(c *Context) {
			id := c.ID("accordion")
			c.SetAttr("id", id)
			if c.Bool("flush") {
				c.AddClass("accordion-flush")
			}

			open := c.Int("open")
			alwaysOpen := c.Bool("always_open")
			items := make([]map[string]any, 0)
			for i, item := range c.Items("items") {
				itemID := field(item, id+"-item-"+itoa(i), "id")
				show := flag(item, "open", i == open)
				entry := map[string]any{
					"id":       itemID,
					"title":    field(item, "", "title", "text"),
					"content":  field(item, "", "content", "body"),
					"open":     show,
					"expanded": show,
				}
				entry["button_classes"] = options.BuildClasses([]string{"accordion-button", when(!show, "collapsed")})
				entry["collapse_classes"] = options.BuildClasses([]string{"accordion-collapse", "collapse", when(show, "show")})
				if !alwaysOpen {
					entry["parent"] = "#" + id
				}
				items = append(items, entry)
			}
			c.Set("items", items)
		},
	}
}

func collapseDefinition() *Definition {
	return &Definition{
		Name:        "collapse",
		Description: "Toggle the visibility of content",
		Tag:         "div",
		BaseClasses: []string{"collapse"},
		Schema: options.Schema{
			options.Str("content", ""),
			options.Str("trigger_label", "Toggle"),
			options.Bool("show", false),
			options.Bool("horizontal", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{Variant: "primary"}}
		},
		Build: func(c *Context) {
			id := c.ID("collapse")
			c.SetAttr("id", id)
			show := c.Bool("show")
			if show {
				c.AddClass("show")
			}
			if c.Bool("horizontal") {
				c.AddClass("collapse-horizontal")
			}
			c.Set("trigger_classes", options.BuildClasses([]string{"btn"}, c.Traits.Variant.ClassesFor("button")))
			c.Set("trigger_attrs", options.Attrs{
				{Name: "type", Value: "button"},
				{Name: "data-bs-toggle", Value: "collapse"},
				{Name: "data-bs-target", Value: "#" + id},
				{Name: "aria-expanded", Value: boolString(show)},
				{Name: "aria-controls", Value: id},
			}.String())
		},
	}
}

func listGroupDefinition() *Definition {
	return &Definition{
		Name:        "list_group",
		Description: "Series of content items",
		Tag:         "ul",
		BaseClasses: []string{"list-group"},
		Schema: options.Schema{
			options.Items("items"),
			options.Bool("flush", false),
			options.Bool("numbered", false),
			options.Str("horizontal", ""),
			options.Bool("actionable", false),
		},
		Build: func(c *Context) {
			if c.Bool("flush") {
				c.AddClass("list-group-flush")
			}
			if c.Bool("numbered") {
				c.Tag = "ol"
				c.AddClass("list-group-numbered")
			}
			switch horizontal := c.String("horizontal"); {
			case horizontal == "true" || horizontal == "always":
				c.AddClass("list-group-horizontal")
			case isBreakpoint(horizontal):
				c.AddClass("list-group-horizontal-" + horizontal)
			}

			actionable := c.Bool("actionable")
			items := make([]map[string]any, 0)
			for _, item := range c.Items("items") {
				href := field(item, "", "href")
				tag := "li"
				switch {
				case href != "":
					tag = "a"
				case actionable:
					tag = "button"
				}
				variant := &traits.Variant{Variant: field(item, "", "variant")}
				state := &traits.State{
					Active:   flag(item, "active", false),
					Disabled: flag(item, "disabled", false),
					Tag:      tag,
				}
				items = append(items, map[string]any{
					"text":  field(item, "", "text", "label"),
					"href":  href,
					"tag":   tag,
					"badge": field(item, "", "badge"),
					"classes": options.BuildClasses(
						[]string{"list-group-item", when(tag != "li", "list-group-item-action")},
						variant.ClassesFor("list-group"),
						state.ClassesFor("list-group"),
					),
					"attrs": state.AttributesFor("list-group").String(),
				})
			}
			c.Set("items", items)
		},
	}
}

func timelineDefinition() *Definition {
	return &Definition{
		Name:        "timeline",
		Description: "Chronological list of events",
		Tag:         "ul",
		BaseClasses: []string{"timeline"},
		Schema: options.Schema{
			options.Items("items"),
			options.Str("orientation", "vertical"),
			options.Bool("alternate", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{Variant: "primary"}}
		},
		Build: func(c *Context) {
			orientation := oneOf(c.String("orientation"), "vertical", "vertical", "horizontal")
			c.AddClass("timeline-" + orientation)
			alternate := c.Bool("alternate") && orientation == "vertical"
			if alternate {
				c.AddClass("timeline-alternate")
			}

			items := make([]map[string]any, 0)
			for i, item := range c.Items("items") {
				variant := &traits.Variant{Variant: field(item, c.Traits.Variant.Variant, "variant")}
				side := ""
				if alternate {
					side = "start"
					if i%2 == 1 {
						side = "end"
					}
				}
				items = append(items, map[string]any{
					"title":          field(item, "", "title", "text"),
					"date":           field(item, "", "date", "time"),
					"content":        field(item, "", "content", "description"),
					"icon":           field(item, "", "icon"),
					"side":           side,
					"classes":        options.BuildClasses([]string{"timeline-item"}, []string{when(side != "", "timeline-item-"+side)}),
					"marker_classes": options.BuildClasses([]string{"timeline-marker"}, variant.ClassesFor("bg")),
				})
			}
			c.Set("items", items)
		},
	}
}

var avatarStatuses = map[string]string{
	"online":  "success",
	"away":    "warning",
	"busy":    "danger",
	"offline": "secondary",
}

func avatarDefinition() *Definition {
	return &Definition{
		Name:        "avatar",
		Description: "User image or initials",
		Tag:         "div",
		BaseClasses: []string{"avatar"},
		Schema: options.Schema{
			options.NullStr("src"),
			options.Str("alt", ""),
			options.Str("name", ""),
			options.NullStr("initials"),
			options.Str("shape", "circle"),
			options.NullStr("status"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{Variant: "secondary"},
				Size:    &traits.Size{},
			}
		},
		Build: func(c *Context) {
			c.AddClass(c.Traits.Size.ClassesFor("avatar")...)
			switch oneOf(c.String("shape"), "circle", "circle", "rounded", "square") {
			case "circle":
				c.AddClass("rounded-circle")
			case "rounded":
				c.AddClass("rounded")
			}

			initials := c.String("initials")
			if initials == "" {
				initials = Initials(c.String("name"))
			}
			c.Set("initials", initials)
			if !c.Has("src") {
				c.AddClass(c.Traits.Variant.ClassesFor("bg")...)
				c.AddClass("text-white", "d-inline-flex", "align-items-center", "justify-content-center")
			}
			alt := c.String("alt")
			if alt == "" {
				alt = c.String("name")
			}
			c.Set("alt", alt)

			if status, ok := avatarStatuses[c.String("status")]; ok {
				c.AddClass("position-relative")
				c.Set("status_classes", options.BuildClasses(
					[]string{"avatar-status", "position-absolute", "bottom-0", "end-0", "rounded-circle", "border", "border-white"},
					[]string{"bg-" + status},
				))
			} else {
				c.Set("status", nil)
				c.Set("status_classes", "")
			}
		},
	}
}

// Initials returns up to two uppercase initials of name.
func Initials(name string) string {
	initials := make([]rune, 0, 2)
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
