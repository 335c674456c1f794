package components

import (
	"math"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

var checkTypes = map[string]bool{"checkbox": true, "radio": true, "switch": true}

func inputDefinition() *Definition {
	return &Definition{
		Name:        "input",
		Description: "Form control with label and feedback",
		Tag:         "input",
		Schema: options.Schema{
			options.Str("type", "text"),
			options.Str("name", ""),
			options.NullStr("label"),
			options.NullStr("value"),
			options.NullStr("placeholder"),
			options.NullStr("help"),
			options.Bool("required", false),
			options.Bool("readonly", false),
			options.Bool("checked", false),
			options.Bool("floating", false),
			options.Bool("plaintext", false),
			options.NullStr("valid"),
			options.NullStr("invalid"),
			options.Int("rows", 3),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Size:  &traits.Size{},
				State: &traits.State{},
			}
		},
		Build: func(c *Context) {
			kind := c.String("type")
			id := c.ID(c.String("name"))
			if id != "" {
				c.SetAttr("id", id)
			}

			switch {
			case checkTypes[kind]:
				c.AddClass("form-check-input")
				inputType := kind
				if kind == "switch" {
					inputType = "checkbox"
					c.SetAttr("role", "switch")
				}
				c.SetAttr("type", inputType)
				c.Set("wrapper_classes", options.BuildClasses([]string{"form-check", when(kind == "switch", "form-switch")}))
				c.Set("label_classes", "form-check-label")
				if c.Bool("checked") {
					c.SetAttr("checked", true)
				}
			case kind == "range":
				c.AddClass("form-range")
				c.SetAttr("type", kind)
			case kind == "color":
				c.AddClass("form-control", "form-control-color")
				c.SetAttr("type", kind)
			default:
				if kind == "textarea" {
					c.Tag = "textarea"
					c.SetAttr("rows", itoa(c.Int("rows")))
				} else {
					c.SetAttr("type", kind)
				}
				if c.Bool("plaintext") {
					c.AddClass("form-control-plaintext")
				} else {
					c.AddClass("form-control")
				}
				c.AddClass(c.Traits.Size.ClassesFor("input")...)
			}
			if !checkTypes[kind] {
				floating := c.Bool("floating")
				c.Set("wrapper_classes", options.BuildClasses([]string{when(floating, "form-floating"), when(!floating, "mb-3")}))
				c.Set("label_classes", map[bool]string{true: "", false: "form-label"}[floating])
				if floating && !c.Has("placeholder") {
					c.SetAttr("placeholder", c.String("label"))
				}
			}

			if name := c.String("name"); name != "" {
				c.SetAttr("name", name)
			}
			if c.Has("value") && c.Tag != "textarea" {
				c.SetAttr("value", c.String("value"))
			}
			if c.Has("placeholder") {
				c.SetAttr("placeholder", c.String("placeholder"))
			}
			if c.Bool("required") {
				c.SetAttr("required", true)
			}
			if c.Bool("readonly") || c.Bool("plaintext") {
				c.SetAttr("readonly", true)
			}
			if c.Traits.State.Disabled {
				c.SetAttr("disabled", true)
			}

			applyValidation(c)
			if c.Has("help") && id != "" {
				c.Set("help_id", id+"-help")
				c.SetAttr("aria-describedby", id+"-help")
			}
		},
	}
}

// applyValidation marks the control valid or invalid. invalid wins.
func applyValidation(c *Context) {
	switch {
	case c.Has("invalid"):
		c.AddClass("is-invalid")
		c.SetAttr("aria-invalid", "true")
		c.Set("feedback", c.String("invalid"))
		c.Set("feedback_classes", "invalid-feedback")
	case c.Has("valid"):
		c.AddClass("is-valid")
		c.Set("feedback", c.String("valid"))
		c.Set("feedback_classes", "valid-feedback")
	default:
		c.Set("feedback", "")
		c.Set("feedback_classes", "")
	}
}

func selectDefinition() *Definition {
	return &Definition{
		Name:        "select",
		Description: "Native select menu",
		Tag:         "select",
		BaseClasses: []string{"form-select"},
		Schema: options.Schema{
			options.Str("name", ""),
			options.NullStr("label"),
			options.Items("options"),
			options.List("selected"),
			options.NullStr("placeholder"),
			options.Bool("multiple", false),
			options.Bool("required", false),
			options.NullStr("valid"),
			options.NullStr("invalid"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Size:  &traits.Size{},
				State: &traits.State{},
			}
		},
		Build: func(c *Context) {
			id := c.ID(c.String("name"))
			if id != "" {
				c.SetAttr("id", id)
			}
			c.AddClass(c.Traits.Size.ClassesFor("select")...)
			if name := c.String("name"); name != "" {
				c.SetAttr("name", name)
			}
			multiple := c.Bool("multiple")
			if multiple {
				c.SetAttr("multiple", true)
			}
			if c.Bool("required") {
				c.SetAttr("required", true)
			}
			if c.Traits.State.Disabled {
				c.SetAttr("disabled", true)
			}

			selected := map[string]bool{}
			for _, v := range c.Values.Strings("selected") {
				selected[v] = true
			}

			entries := c.Items("options")
			opts := make([]map[string]any, 0, len(entries)+1)
			anySelected := false
			for _, item := range entries {
				value := field(item, "", "value", "text", "label")
				isSelected := selected[value] || flag(item, "selected", false)
				if isSelected && !multiple && anySelected {
					isSelected = false
				}
				anySelected = anySelected || isSelected
				opts = append(opts, map[string]any{
					"value":    value,
					"label":    field(item, value, "label", "text"),
					"selected": isSelected,
					"disabled": flag(item, "disabled", false),
				})
			}
			if c.Has("placeholder") && !multiple {
				placeholder := map[string]any{
					"value":    "",
					"label":    c.String("placeholder"),
					"selected": !anySelected,
					"disabled": c.Bool("required"),
				}
				opts = append([]map[string]any{placeholder}, opts...)
			}
			c.Set("options", opts)
			applyValidation(c)
		},
	}
}

func ratingDefinition() *Definition {
	return &Definition{
		Name:        "rating",
		Description: "Star rating display or input",
		Tag:         "div",
		BaseClasses: []string{"rating", "d-inline-flex"},
		Schema: options.Schema{
			options.Float("value", 0),
			options.Int("max", 5),
			options.Bool("half", false),
			options.Bool("readonly", true),
			options.Str("name", "rating"),
			options.Bool("show_value", false),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant:  &traits.Variant{Variant: "warning"},
				Size:     &traits.Size{},
				Stimulus: traits.NewStimulus("bs-rating"),
			}
		},
		Build: func(c *Context) {
			stars := clamp(c.Int("max"), 1, 10)
			half := c.Bool("half")
			value := RoundRating(c.Float("value"), stars, half)
			readonly := c.Bool("readonly")
			c.Set("max", stars)
			c.Set("value", value)
			if c.Traits.Size.Size == "sm" || c.Traits.Size.Size == "lg" {
				c.AddClass("rating-" + c.Traits.Size.Size)
			}

			color := c.Traits.Variant.ClassesFor("text")
			entries := make([]map[string]any, 0, stars)
			for i := 1; i <= stars; i++ {
				fill := "empty"
				switch {
				case value >= float64(i):
					fill = "full"
				case value >= float64(i)-0.5:
					fill = "half"
				}
				classes := []string{"rating-star"}
				if fill != "empty" {
					classes = append(classes, color...)
				} else {
					classes = append(classes, "text-body-tertiary")
				}
				entries = append(entries, map[string]any{
					"value":   i,
					"fill":    fill,
					"classes": options.BuildClasses(classes),
				})
			}
			c.Set("stars", entries)

			label := formatFloat(value) + " out of " + itoa(stars)
			if readonly {
				c.SetAttr("role", "img")
			} else {
				c.SetAttr("role", "radiogroup")
			}
			c.SetAttr("aria-label", label)
			c.Set("label", label)

			values := c.Traits.Stimulus.Values
			values["value"] = value
			values["max"] = stars
			values["half"] = half
			values["readonly"] = readonly
		},
	}
}

// RoundRating clamps value to [0, stars] and rounds it to the nearest
// half or whole star.
func RoundRating(value float64, stars int, half bool) float64 {
	if math.IsNaN(value) {
		return 0
	}
	value = clampFloat(value, 0, float64(stars))
	if half {
		return math.Round(value*2) / 2
	}
	return math.Round(value)
}
