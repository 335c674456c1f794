package traits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/bsui/internal/options"
)

func TestVariantClasses(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		context string
		want    []string
	}{
		{"solid button", Variant{Variant: "primary"}, "button", []string{"btn-primary"}},
		{"outline button", Variant{Variant: "danger", Outline: true}, "button", []string{"btn-outline-danger"}},
		{"link button ignores outline", Variant{Variant: "link", Outline: true}, "button", []string{"btn-link"}},
		{"badge", Variant{Variant: "info"}, "badge", []string{"text-bg-info"}},
		{"outline card", Variant{Variant: "success", Outline: true}, "card", []string{"border-success"}},
		{"alert", Variant{Variant: "warning"}, "alert", []string{"alert-warning"}},
		{"list group", Variant{Variant: "dark"}, "list-group", []string{"list-group-item-dark"}},
		{"custom theme colour", Variant{Variant: "brand-blue"}, "text", []string{"text-brand-blue"}},
		{"unknown context", Variant{Variant: "primary"}, "spaceship", nil},
		{"empty variant", Variant{}, "button", nil},
		{"invalid variant", Variant{Variant: "Not Valid"}, "button", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.variant.ClassesFor(tt.context))
		})
	}
}

func TestVariantPrecedence(t *testing.T) {
	bag := options.Bag{"variant": "secondary", "outline": "true"}

	v := &Variant{Variant: "primary"}
	v.Apply(options.Props{"variant": "danger", "outline": false}, bag)
	assert.Equal(t, "danger", v.Variant)
	assert.False(t, v.Outline)

	v = &Variant{Variant: "primary"}
	v.Apply(options.Props{}, bag)
	assert.Equal(t, "secondary", v.Variant)
	assert.True(t, v.Outline)

	v = &Variant{Variant: "primary"}
	v.Apply(options.Props{}, options.Bag{})
	assert.Equal(t, "primary", v.Variant)
	assert.False(t, v.Outline)
}

func TestSizeClasses(t *testing.T) {
	s := &Size{}
	s.Apply(options.Props{"size": "sm"}, nil)

	assert.Equal(t, []string{"btn-sm"}, s.ClassesFor("button"))
	assert.Equal(t, []string{"form-control-sm"}, s.ClassesFor("input"))
	assert.Equal(t, []string{"spinner-border-sm"}, s.ClassesFor("spinner"))
	assert.Nil(t, s.ClassesFor("unknown"))

	s = &Size{Size: "xl"}
	assert.Equal(t, []string{"modal-xl"}, s.ClassesFor("modal"))
	assert.Nil(t, s.ClassesFor("button"))

	s = &Size{Size: "lg"}
	assert.Nil(t, s.ClassesFor("table"))
}

func TestStateDisabledDependsOnTag(t *testing.T) {
	anchor := &State{Disabled: true, Tag: "a"}
	assert.Equal(t, []string{"disabled"}, anchor.ClassesFor("button"))
	assert.Equal(t, `aria-disabled="true" tabindex="-1"`, anchor.AttributesFor("button").String())

	button := &State{Disabled: true, Tag: "button"}
	assert.Empty(t, button.ClassesFor("button"))
	assert.Equal(t, "disabled", button.AttributesFor("button").String())

	div := &State{Disabled: true, Tag: "div"}
	assert.Equal(t, `aria-disabled="true"`, div.AttributesFor("list-group").String())

	assert.Nil(t, button.AttributesFor("spaceship"))
}

func TestStateActiveAndBlock(t *testing.T) {
	s := &State{Tag: "button"}
	s.Apply(options.Props{"active": "yes"}, options.Bag{"block": true})

	assert.Equal(t, []string{"w-100", "active"}, s.ClassesFor("button"))
	assert.Equal(t, `aria-pressed="true"`, s.AttributesFor("button").String())

	link := &State{Active: true, Tag: "a"}
	assert.Equal(t, `aria-current="page"`, link.AttributesFor("nav").String())
}

func TestIconGap(t *testing.T) {
	tests := []struct {
		name  string
		size  string
		props options.Props
		bag   options.Bag
		want  int
	}{
		{"default", "", options.Props{"icon": "bi-star"}, nil, 2},
		{"small", "sm", options.Props{"icon": "bi-star"}, nil, 1},
		{"large", "lg", options.Props{"icon": "bi-star"}, nil, 3},
		{"config gap", "lg", options.Props{"icon": "bi-star"}, options.Bag{"icon_gap": "4"}, 4},
		{"explicit zero", "lg", options.Props{"icon": "bi-star", "icon_gap": 0}, options.Bag{"icon_gap": 4}, 0},
		{"out of range", "sm", options.Props{"icon": "bi-star", "icon_gap": 9}, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon := &Icon{Size: tt.size}
			icon.Apply(tt.props, tt.bag)
			assert.Equal(t, tt.want, icon.Gap)
		})
	}
}

func TestIconStartAliasPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		props options.Props
		bag   options.Bag
		want  string
	}{
		{"fallback", nil, nil, ""},
		{"config icon", nil, options.Bag{"icon": "bi-bag"}, "bi-bag"},
		{"config icon_start beats config icon", nil, options.Bag{"icon": "bi-a", "icon_start": "bi-b"}, "bi-b"},
		{"explicit icon beats config icon_start", options.Props{"icon": "bi-explicit"}, options.Bag{"icon_start": "bi-bag"}, "bi-explicit"},
		{"explicit icon_start beats explicit icon", options.Props{"icon": "bi-a", "icon_start": "bi-b"}, nil, "bi-b"},
		{"explicit nil falls to config", options.Props{"icon": nil}, options.Bag{"icon_start": "bi-bag"}, "bi-bag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon := &Icon{}
			icon.Apply(tt.props, tt.bag)
			assert.Equal(t, tt.want, icon.Start)
		})
	}
}

func TestIconClasses(t *testing.T) {
	icon := &Icon{}
	icon.Apply(options.Props{"icon_end": "bi-arrow"}, nil)
	assert.Equal(t, []string{"d-inline-flex", "align-items-center", "gap-2"}, icon.ClassesFor("button"))
	assert.Nil(t, icon.ClassesFor("modal"))

	empty := &Icon{}
	empty.Apply(nil, nil)
	assert.Nil(t, empty.ClassesFor("button"))
}

func TestSetSyncsIconSize(t *testing.T) {
	set := &Set{Size: &Size{}, Icon: &Icon{}}
	set.Apply(options.Props{"size": "lg", "icon": "bi-x"}, nil)
	assert.Equal(t, 3, set.Icon.Gap)
	assert.Equal(t, []string{"btn-lg", "d-inline-flex", "align-items-center", "gap-3"}, set.ClassesFor("button"))
}

func TestTooltip(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(options.Props{"tooltip": "Save changes"}, nil)
		assert.Equal(t,
			`data-bs-toggle="tooltip" data-bs-title="Save changes" data-bs-placement="top" data-bs-trigger="hover focus"`,
			tip.AttributesFor("button").String())
	})

	t.Run("html auto detected", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(options.Props{"tooltip": "<b>Bold</b>"}, nil)
		assert.True(t, tip.HTML)
		v, ok := tip.AttributesFor("button").Get("data-bs-html")
		require.True(t, ok)
		assert.Equal(t, "true", v)
	})

	t.Run("html forced off", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(options.Props{"tooltip": map[string]any{"text": "<b>x</b>", "html": false}}, nil)
		assert.False(t, tip.HTML)
	})

	t.Run("config structure with explicit text", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(
			options.Props{"tooltip": "Explicit"},
			options.Bag{"tooltip": map[string]any{"text": "Configured", "placement": "bottom", "trigger": "click"}},
		)
		assert.Equal(t, "Explicit", tip.Text)
		assert.Equal(t, "bottom", tip.Placement)
		assert.Equal(t, "click", tip.Trigger)
	})

	t.Run("invalid placement keeps default", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(options.Props{"tooltip": map[string]any{"text": "x", "placement": "diagonal"}}, nil)
		assert.Equal(t, "top", tip.Placement)
	})

	t.Run("inactive without text", func(t *testing.T) {
		tip := NewTooltip()
		tip.Apply(nil, nil)
		assert.Nil(t, tip.AttributesFor("button"))
	})
}

func TestContainsHTML(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<b>Bold</b>", true},
		{"line<br/>break", true},
		{"<!-- note -->", true},
		{"<1>", true},
		{"plain text", false},
		{"a < b", false},
		{"<>", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsHTML(tt.in))
		})
	}
}

func TestPopoverOwnsToggle(t *testing.T) {
	set := &Set{Tooltip: NewTooltip(), Popover: NewPopover()}
	set.Apply(options.Props{
		"tooltip": "tip",
		"popover": map[string]any{"title": "Title", "content": "Body"},
	}, nil)

	attrs := set.AttributesFor("button")
	toggle, _ := attrs.Get("data-bs-toggle")
	assert.Equal(t, "popover", toggle)
	title, _ := attrs.Get("data-bs-title")
	assert.Equal(t, "Title", title)
	placement, _ := attrs.Get("data-bs-placement")
	assert.Equal(t, "right", placement)
}

func TestStimulus(t *testing.T) {
	s := NewStimulus("bs-rating")
	s.Apply(options.Props{
		"stimulus_values":  map[string]any{"maxStars": 5, "readonly": true},
		"stimulus_actions": "click->bs-rating#select",
	}, nil)

	assert.Equal(t,
		`data-controller="bs-rating" data-action="click-&gt;bs-rating#select" data-bs-rating-max-stars-value="5" data-bs-rating-readonly-value="true"`,
		s.AttributesFor("").String())

	disabled := NewStimulus("bs-rating")
	disabled.Apply(nil, options.Bag{"stimulus_enabled": "off"})
	assert.Nil(t, disabled.AttributesFor(""))
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "max-stars", Kebab("maxStars"))
	assert.Equal(t, "first-day", Kebab("first_day"))
	assert.Equal(t, "plain", Kebab("plain"))
}
