package components

import (
	"strings"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

func breadcrumbsDefinition() *Definition {
	return &Definition{
		Name:        "breadcrumbs",
		Description: "Location within a navigational hierarchy",
		Tag:         "nav",
		Schema: options.Schema{
			options.Items("items"),
			options.Str("label", "breadcrumb"),
			options.NullStr("divider"),
		},
		Build: func(c *Context) {
			c.SetAttr("aria-label", c.String("label"))
			if c.Has("divider") {
				c.SetAttr("style", "--bs-breadcrumb-divider: '"+strings.ReplaceAll(c.String("divider"), "'", "\\'")+"';")
			}

			entries := c.Items("items")
			items := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				last := i == len(entries)-1
				entry := map[string]any{
					"label":   field(item, "", "label", "text"),
					"href":    "",
					"active":  last,
					"classes": options.BuildClasses([]string{"breadcrumb-item", when(last, "active")}),
				}
				if last {
					entry["attrs"] = options.Attrs{{Name: "aria-current", Value: "page"}}.String()
				} else {
					entry["href"] = field(item, "", "href", "url")
					entry["attrs"] = ""
				}
				items = append(items, entry)
			}
			c.Set("items", items)
		},
	}
}

func navbarDefinition() *Definition {
	return &Definition{
		Name:        "navbar",
		Description: "Responsive navigation header",
		Tag:         "nav",
		BaseClasses: []string{"navbar"},
		Schema: options.Schema{
			options.Str("brand", ""),
			options.Str("brand_href", "/"),
			options.Items("items"),
			options.Str("expand", "lg"),
			options.Str("background", "body-tertiary"),
			options.NullStr("theme"),
			options.Str("position", ""),
			options.Str("container", "fluid"),
		},
		Build: func(c *Context) {
			switch expand := c.String("expand"); {
			case expand == "always" || expand == "true":
				c.AddClass("navbar-expand")
			case isBreakpoint(expand):
				c.AddClass("navbar-expand-" + expand)
			}
			if bg := c.String("background"); bg != "" && bg != "none" {
				c.AddClass("bg-" + bg)
			}
			if theme := oneOf(c.String("theme"), "", "light", "dark"); theme != "" {
				c.SetAttr("data-bs-theme", theme)
			}
			switch c.String("position") {
			case "fixed-top", "fixed-bottom", "sticky-top", "sticky-bottom":
				c.AddClass(c.String("position"))
			}

			switch container := c.String("container"); {
			case container == "false" || container == "none":
				c.Set("container_classes", "")
			case container == "fluid":
				c.Set("container_classes", "container-fluid")
			case isBreakpoint(container):
				c.Set("container_classes", "container-"+container)
			default:
				c.Set("container_classes", "container")
			}

			collapseID := c.ID("navbar") + "-collapse"
			c.Set("collapse_id", collapseID)
			c.Set("toggler_attrs", options.Attrs{
				{Name: "type", Value: "button"},
				{Name: "data-bs-toggle", Value: "collapse"},
				{Name: "data-bs-target", Value: "#" + collapseID},
				{Name: "aria-controls", Value: collapseID},
				{Name: "aria-expanded", Value: "false"},
				{Name: "aria-label", Value: "Toggle navigation"},
			}.String())
			c.Set("items", navItems(c.Items("items"), "nav-link"))
		},
	}
}

func navItems(entries []map[string]any, linkClass string) []map[string]any {
	items := make([]map[string]any, 0, len(entries))
	for _, item := range entries {
		state := &traits.State{
			Active:   flag(item, "active", false),
			Disabled: flag(item, "disabled", false),
			Tag:      "a",
		}
		items = append(items, map[string]any{
			"label":   field(item, "", "label", "text"),
			"href":    field(item, "#", "href", "url"),
			"icon":    field(item, "", "icon"),
			"classes": options.BuildClasses([]string{linkClass}, state.ClassesFor("nav")),
			"attrs":   state.AttributesFor("nav").String(),
		})
	}
	return items
}

func paginationDefinition() *Definition {
	return &Definition{
		Name:        "pagination",
		Description: "Page navigation for long result lists",
		Tag:         "nav",
		Schema: options.Schema{
			options.Int("current", 1),
			options.Int("total", 1),
			options.Int("window", 2),
			options.Str("url", "?page={page}"),
			options.Bool("edges", true),
			options.Bool("prev_next", true),
			options.Str("prev_label", "Previous"),
			options.Str("next_label", "Next"),
			options.Str("align", "start"),
			options.Str("label", "Pagination"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Size: &traits.Size{}}
		},
		Build: func(c *Context) {
			c.SetAttr("aria-label", c.String("label"))
			total := c.Int("total")
			if total < 1 {
				total = 1
			}
			current := clamp(c.Int("current"), 1, total)
			c.Set("total", total)
			c.Set("current", current)

			align := map[string]string{"center": "justify-content-center", "end": "justify-content-end"}[c.String("align")]
			c.Set("list_classes", options.BuildClasses(
				[]string{"pagination"},
				c.Traits.Size.ClassesFor("pagination"),
				[]string{align},
			))

			url := c.String("url")
			href := func(page int) string { return strings.ReplaceAll(url, "{page}", itoa(page)) }
			page := func(n int) map[string]any {
				active := n == current
				entry := map[string]any{
					"label":    itoa(n),
					"number":   n,
					"href":     href(n),
					"active":   active,
					"disabled": false,
					"ellipsis": false,
					"classes":  options.BuildClasses([]string{"page-item", when(active, "active")}),
					"attrs":    "",
				}
				if active {
					entry["attrs"] = options.Attrs{{Name: "aria-current", Value: "page"}}.String()
				}
				return entry
			}
			ellipsis := map[string]any{
				"label":    "…",
				"ellipsis": true,
				"disabled": true,
				"classes":  "page-item disabled",
			}
			control := func(label string, target int, disabled bool) map[string]any {
				return map[string]any{
					"label":    label,
					"number":   target,
					"href":     href(target),
					"disabled": disabled,
					"classes":  options.BuildClasses([]string{"page-item", when(disabled, "disabled")}),
				}
			}

			items := make([]map[string]any, 0)
			if c.Bool("prev_next") {
				items = append(items, control(c.String("prev_label"), clamp(current-1, 1, total), current == 1))
			}
			for _, n := range PageWindow(current, total, c.Int("window"), c.Bool("edges")) {
				if n == 0 {
					items = append(items, ellipsis)
					continue
				}
				items = append(items, page(n))
			}
			if c.Bool("prev_next") {
				items = append(items, control(c.String("next_label"), clamp(current+1, 1, total), current == total))
			}
			c.Set("items", items)
		},
	}
}

// MaxPageWindow bounds the pages shown on each side of the current page.
const MaxPageWindow = 10

// PageWindow returns the page numbers shown around current. Zero marks a
// gap. With edges the first and last page are always present. The result
// never holds more than 2*MaxPageWindow+5 entries whatever total is.
func PageWindow(current, total, window int, edges bool) []int {
	if total < 1 {
		total = 1
	}
	current = clamp(current, 1, total)
	window = clamp(window, 0, MaxPageWindow)
	lo := current - min(window, current-1)
	hi := current + min(window, total-current)

	pages := make([]int, 0, hi-lo+5)
	if edges && lo > 1 {
		pages = append(pages, 1)
		switch {
		case lo == 3:
			pages = append(pages, 2)
		case lo > 3:
			pages = append(pages, 0)
		}
	}
	for i := 0; i <= hi-lo; i++ {
		pages = append(pages, lo+i)
	}
	if edges && hi < total {
		switch {
		case hi == total-2:
			pages = append(pages, total-1)
		case hi < total-2:
			pages = append(pages, 0)
		}
		pages = append(pages, total)
	}
	return pages
}

func tabsDefinition() *Definition {
	return &Definition{
		Name:        "tabs",
		Description: "Tabbed navigation with optional panes",
		Tag:         "div",
		Schema: options.Schema{
			options.Items("items"),
			options.Str("style", "tabs"),
			options.Bool("fill", false),
			options.Bool("justified", false),
			options.Bool("vertical", false),
			options.Bool("fade", true),
		},
		Build: func(c *Context) {
			id := c.ID("tabs")
			vertical := c.Bool("vertical")
			if vertical {
				c.AddClass("d-flex", "align-items-start")
			}
			style := oneOf(c.String("style"), "tabs", "tabs", "pills", "underline")
			c.Set("style", style)
			c.Set("nav_classes", options.BuildClasses(
				[]string{"nav", "nav-" + style},
				[]string{when(c.Bool("fill"), "nav-fill"), when(c.Bool("justified"), "nav-justified")},
				[]string{when(vertical, "flex-column"), when(vertical, "me-3")},
			))
			c.Set("nav_attrs", options.Attrs{
				{Name: "role", Value: "tablist"},
				{Name: "aria-orientation", Value: map[bool]string{true: "vertical", false: "horizontal"}[vertical]},
			}.String())

			entries := c.Items("items")
			active := -1
			for i, item := range entries {
				if flag(item, "active", false) {
					active = i
					break
				}
			}
			if active < 0 && len(entries) > 0 {
				active = 0
			}

			fade := c.Bool("fade")
			items := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				itemID := field(item, id+"-"+itoa(i), "id")
				isActive := i == active
				disabled := flag(item, "disabled", false)
				state := &traits.State{Active: isActive, Disabled: disabled, Tag: "button"}
				attrs := options.Attrs{
					{Name: "id", Value: itemID + "-tab"},
					{Name: "type", Value: "button"},
					{Name: "role", Value: "tab"},
					{Name: "data-bs-toggle", Value: map[bool]string{true: "pill", false: "tab"}[style == "pills"]},
					{Name: "data-bs-target", Value: "#" + itemID + "-pane"},
					{Name: "aria-controls", Value: itemID + "-pane"},
					{Name: "aria-selected", Value: boolString(isActive)},
				}
				if disabled {
					attrs.Set("disabled", true)
				}
				pane := options.BuildClasses([]string{"tab-pane", when(fade, "fade"), when(isActive, "show"), when(isActive, "active")})
				items = append(items, map[string]any{
					"id":           itemID,
					"label":        field(item, "", "label", "title", "text"),
					"content":      field(item, "", "content", "body"),
					"active":       isActive,
					"classes":      options.BuildClasses([]string{"nav-link"}, state.ClassesFor("nav")),
					"attrs":        attrs.String(),
					"pane_classes": pane,
				})
			}
			c.Set("items", items)
		},
	}
}

func stepperDefinition() *Definition {
	return &Definition{
		Name:        "stepper",
		Description: "Multi-step progress indicator",
		Tag:         "div",
		BaseClasses: []string{"stepper"},
		Schema: options.Schema{
			options.Items("steps"),
			options.Int("current", 1),
			options.Bool("vertical", false),
			options.Bool("clickable", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant:  &traits.Variant{Variant: "primary"},
				Stimulus: traits.NewStimulus("bs-stepper"),
			}
		},
		Build: func(c *Context) {
			entries := c.Items("steps")
			current := 0
			if len(entries) > 0 {
				current = clamp(c.Int("current"), 1, len(entries))
			}
			c.Set("current", current)
			if c.Bool("vertical") {
				c.AddClass("stepper-vertical")
			} else {
				c.AddClass("d-flex", "justify-content-between")
			}

			steps := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				n := i + 1
				status := "upcoming"
				switch {
				case n < current:
					status = "complete"
				case n == current:
					status = "active"
				}
				marker := []string{"stepper-marker", "rounded-circle"}
				if status != "upcoming" {
					marker = append(marker, c.Traits.Variant.ClassesFor("bg")...)
					marker = append(marker, "text-white")
				} else {
					marker = append(marker, "bg-body-secondary")
				}
				step := map[string]any{
					"number":         n,
					"title":          field(item, "Step "+itoa(n), "title", "label", "text"),
					"description":    field(item, "", "description"),
					"status":         status,
					"classes":        options.BuildClasses([]string{"stepper-step", "stepper-step-" + status}),
					"marker_classes": options.BuildClasses(marker),
				}
				if status == "active" {
					step["attrs"] = options.Attrs{{Name: "aria-current", Value: "step"}}.String()
				} else {
					step["attrs"] = ""
				}
				steps = append(steps, step)
			}
			c.Set("steps", steps)

			c.Traits.Stimulus.Values["current"] = current
			c.Traits.Stimulus.Values["total"] = len(entries)
			c.Traits.Stimulus.Values["clickable"] = c.Bool("clickable")
			c.SetAttr("role", "list")
		},
	}
}
