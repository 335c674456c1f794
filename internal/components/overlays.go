package components

import (
	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

func modalDefinition() *Definition {
	return &Definition{
		Name:        "modal",
		Description: "Dialog layered over the page",
		Tag:         "div",
		BaseClasses: []string{"modal"},
		Schema: options.Schema{
			options.Str("title", ""),
			options.Str("body", ""),
			options.NullStr("footer"),
			options.Bool("fade", true),
			options.Bool("centered", false),
			options.Bool("scrollable", false),
			options.Str("fullscreen", ""),
			options.Bool("static_backdrop", false),
			options.Bool("close_button", true),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Size: &traits.Size{}}
		},
		Build: func(c *Context) {
			id := c.ID("modal")
			titleID := id + "-title"
			c.SetAttr("id", id)
			if c.Bool("fade") {
				c.AddClass("fade")
			}
			c.SetAttr("tabindex", "-1")
			c.SetAttr("aria-labelledby", titleID)
			c.SetAttr("aria-hidden", "true")
			if c.Bool("static_backdrop") {
				c.SetAttr("data-bs-backdrop", "static")
				c.SetAttr("data-bs-keyboard", "false")
			}

			fullscreen := ""
			switch fs := c.String("fullscreen"); {
			case fs == "true" || fs == "always":
				fullscreen = "modal-fullscreen"
			case isBreakpoint(fs):
				fullscreen = "modal-fullscreen-" + fs + "-down"
			}
			c.Set("title_id", titleID)
			c.Set("dialog_classes", options.BuildClasses(
				[]string{"modal-dialog"},
				c.Traits.Size.ClassesFor("modal"),
				[]string{when(c.Bool("centered"), "modal-dialog-centered"), when(c.Bool("scrollable"), "modal-dialog-scrollable")},
				[]string{fullscreen},
			))
		},
	}
}

func offcanvasDefinition() *Definition {
	return &Definition{
		Name:        "offcanvas",
		Description: "Hidden sidebar panel",
		Tag:         "div",
		Schema: options.Schema{
			options.Str("title", ""),
			options.Str("body", ""),
			options.Str("placement", "start"),
			options.NullStr("responsive"),
			options.Bool("scroll", false),
			options.Str("backdrop", "true"),
			options.Bool("show", false),
		},
		Build: func(c *Context) {
			id := c.ID("offcanvas")
			titleID := id + "-label"
			c.SetAttr("id", id)

			if responsive := c.String("responsive"); isBreakpoint(responsive) {
				c.AddClass("offcanvas-" + responsive)
			} else {
				c.AddClass("offcanvas")
			}
			c.AddClass("offcanvas-" + oneOf(c.String("placement"), "start", "start", "end", "top", "bottom"))
			if c.Bool("show") {
				c.AddClass("show")
			}

			c.SetAttr("tabindex", "-1")
			c.SetAttr("aria-labelledby", titleID)
			if c.Bool("scroll") {
				c.SetAttr("data-bs-scroll", "true")
			}
			switch backdrop := c.String("backdrop"); backdrop {
			case "false", "static":
				c.SetAttr("data-bs-backdrop", backdrop)
			}
			c.Set("title_id", titleID)
		},
	}
}

var tourPlacements = []string{"auto", "top", "bottom", "start", "end", "left", "right"}

func tourDefinition() *Definition {
	return &Definition{
		Name:        "tour",
		Description: "Guided walkthrough of page elements",
		Tag:         "div",
		BaseClasses: []string{"tour"},
		Schema: options.Schema{
			options.Items("steps"),
			options.Bool("autostart", false),
			options.Bool("show_progress", true),
			options.Bool("backdrop", true),
			options.Str("next_label", "Next"),
			options.Str("prev_label", "Back"),
			options.Str("done_label", "Done"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Stimulus: traits.NewStimulus("bs-tour")}
		},
		Build: func(c *Context) {
			entries := c.Items("steps")
			steps := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				steps = append(steps, map[string]any{
					"number":    i + 1,
					"target":    field(item, "", "target", "element"),
					"title":     field(item, "", "title"),
					"content":   field(item, "", "content", "text"),
					"placement": oneOf(field(item, "auto", "placement"), "auto", tourPlacements...),
				})
			}
			c.Set("steps", steps)
			c.Set("step_count", len(steps))
			c.SetAttr("hidden", true)

			values := c.Traits.Stimulus.Values
			values["steps"] = steps
			values["autostart"] = c.Bool("autostart")
			values["showProgress"] = c.Bool("show_progress")
			values["backdrop"] = c.Bool("backdrop")
		},
	}
}
