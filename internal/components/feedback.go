package components

import (
	"fmt"
	"math"
	"strconv"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

func alertDefinition() *Definition {
	return &Definition{
		Name:        "alert",
		Description: "Contextual feedback message",
		Tag:         "div",
		Context:     "alert",
		BaseClasses: []string{"alert"},
		Schema: options.Schema{
			options.Str("message", ""),
			options.NullStr("title"),
			options.Bool("dismissible", false),
			options.Bool("fade", true),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{Variant: "primary"},
				Icon:    &traits.Icon{},
			}
		},
		Build: func(c *Context) {
			c.SetAttr("role", "alert")
			if c.Bool("dismissible") {
				c.AddClass("alert-dismissible")
				if c.Bool("fade") {
					c.AddClass("fade", "show")
				}
			}
		},
	}
}

func badgeDefinition() *Definition {
	return &Definition{
		Name:        "badge",
		Description: "Small count or label",
		Tag:         "span",
		Context:     "badge",
		BaseClasses: []string{"badge"},
		Schema: options.Schema{
			options.Str("text", ""),
			options.Bool("pill", false),
			options.NullStr("href"),
			options.Bool("positioned", false),
			options.NullStr("hidden_text"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{Variant: "secondary"},
				Icon:    &traits.Icon{},
				Tooltip: traits.NewTooltip(),
			}
		},
		Build: func(c *Context) {
			if c.Bool("pill") {
				c.AddClass("rounded-pill")
			}
			if c.Has("href") {
				c.Tag = "a"
				c.SetAttr("href", c.String("href"))
			}
			if c.Bool("positioned") {
				c.AddClass("position-absolute", "top-0", "start-100", "translate-middle")
			}
		},
	}
}

var toastPositions = map[string][]string{
	"top-start":     {"top-0", "start-0"},
	"top-center":    {"top-0", "start-50", "translate-middle-x"},
	"top-end":       {"top-0", "end-0"},
	"middle-center": {"top-50", "start-50", "translate-middle"},
	"bottom-start":  {"bottom-0", "start-0"},
	"bottom-center": {"bottom-0", "start-50", "translate-middle-x"},
	"bottom-end":    {"bottom-0", "end-0"},
}

func toastDefinition() *Definition {
	return &Definition{
		Name:        "toast",
		Description: "Lightweight push notification",
		Tag:         "div",
		Context:     "toast",
		BaseClasses: []string{"toast"},
		Schema: options.Schema{
			options.Str("message", ""),
			options.NullStr("title"),
			options.NullStr("subtitle"),
			options.Bool("autohide", true),
			options.Int("delay", 5000),
			options.Str("position", "top-end"),
			options.Bool("show", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant:  &traits.Variant{},
				Stimulus: traits.NewStimulus("bs-toast"),
			}
		},
		Build: func(c *Context) {
			c.SetAttr("role", "alert")
			c.SetAttr("aria-live", "assertive")
			c.SetAttr("aria-atomic", "true")
			c.SetAttr("data-bs-autohide", strconv.FormatBool(c.Bool("autohide")))
			delay := c.Int("delay")
			if delay < 0 {
				delay = 0
			}
			c.SetAttr("data-bs-delay", itoa(delay))
			if c.Bool("show") {
				c.AddClass("show")
			}

			position, ok := toastPositions[c.String("position")]
			if !ok {
				position = toastPositions["top-end"]
			}
			c.Set("container_classes", options.BuildClasses(
				[]string{"toast-container", "position-fixed", "p-3"},
				position,
			))
			c.Traits.Stimulus.Values["delay"] = delay
		},
	}
}

func spinnerDefinition() *Definition {
	return &Definition{
		Name:        "spinner",
		Description: "Loading indicator",
		Tag:         "div",
		Schema: options.Schema{
			options.Str("type", "border"),
			options.Str("label", "Loading..."),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant: &traits.Variant{},
				Size:    &traits.Size{},
			}
		},
		Build: func(c *Context) {
			sizeContext := "spinner"
			if oneOf(c.String("type"), "border", "border", "grow") == "grow" {
				c.AddClass("spinner-grow")
				sizeContext = "spinner-grow"
			} else {
				c.AddClass("spinner-border")
			}
			c.AddClass(c.Traits.Variant.ClassesFor("spinner")...)
			c.AddClass(c.Traits.Size.ClassesFor(sizeContext)...)
			c.SetAttr("role", "status")
		},
	}
}

func progressDefinition() *Definition {
	return &Definition{
		Name:        "progress",
		Description: "Progress bar",
		Tag:         "div",
		BaseClasses: []string{"progress"},
		Schema: options.Schema{
			options.Float("value", 0),
			options.Float("min", 0),
			options.Float("max", 100),
			options.Bool("striped", false),
			options.Bool("animated", false),
			options.Bool("show_label", false),
			options.NullStr("label"),
			options.NullInt("height"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{}}
		},
		Build: func(c *Context) {
			lo, hi, value := c.Float("min"), c.Float("max"), c.Float("value")
			percent := 0.0
			if hi > lo {
				percent = clampFloat((value-lo)/(hi-lo)*100, 0, 100)
			}
			percent = math.Round(percent*100) / 100

			animated := c.Bool("animated")
			c.Set("percentage", percent)
			c.Set("bar_classes", options.BuildClasses(
				[]string{"progress-bar"},
				c.Traits.Variant.ClassesFor("progress"),
				[]string{when(c.Bool("striped") || animated, "progress-bar-striped"), when(animated, "progress-bar-animated")},
			))
			c.Set("bar_style", "width: "+formatFloat(percent)+"%")

			label := c.String("label")
			if label == "" && c.Bool("show_label") {
				label = formatFloat(percent) + "%"
			}
			c.Set("label", label)

			c.SetAttr("role", "progressbar")
			c.SetAttr("aria-valuenow", formatFloat(value))
			c.SetAttr("aria-valuemin", formatFloat(lo))
			c.SetAttr("aria-valuemax", formatFloat(hi))
			if label != "" {
				c.SetAttr("aria-label", label)
			}
			if c.Has("height") && c.Int("height") > 0 {
				c.SetAttr("style", fmt.Sprintf("height: %dpx", c.Int("height")))
			}
		},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
