package traits

import (
	"regexp"

	"github.com/conneroisu/bsui/internal/options"
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^<>]+>`)
	placements     = map[string]bool{"top": true, "bottom": true, "left": true, "right": true, "auto": true}
)

// ContainsHTML reports whether s holds something that looks like a tag.
func ContainsHTML(s string) bool {
	return htmlTagPattern.MatchString(s)
}

// overlay is the state tooltips and popovers share.
type overlay struct {
	Placement string
	Trigger   string
	HTML      bool
	htmlSet   bool
}

func (o *overlay) applyFields(m map[string]any) {
	if p, ok := options.ToString(m["placement"]); ok && placements[p] {
		o.Placement = p
	}
	if t, ok := options.ToString(m["trigger"]); ok && t != "" {
		o.Trigger = t
	}
	if h, ok := options.ToBool(m["html"]); ok {
		o.HTML = h
		o.htmlSet = true
	}
}

// layers returns the configured value followed by the explicit one, so
// later layers override earlier ones field by field.
func layers(props options.Props, bag options.Bag, key string) []any {
	var out []any
	if v, ok := bag.Lookup(key); ok {
		out = append(out, v)
	}
	if v, ok := props.Lookup(key); ok {
		out = append(out, v)
	}
	return out
}

// Tooltip accepts either a plain text or {text, placement, trigger, html}.
// HTML content is detected from the text unless html is given explicitly.
type Tooltip struct {
	overlay
	Text string
}

// NewTooltip returns a tooltip with Bootstrap's defaults.
func NewTooltip() *Tooltip {
	return &Tooltip{overlay: overlay{Placement: "top", Trigger: "hover focus"}}
}

// Apply implements Trait.
func (t *Tooltip) Apply(props options.Props, bag options.Bag) {
	for _, layer := range layers(props, bag, "tooltip") {
		if s, ok := options.ToString(layer); ok {
			t.Text = s
			continue
		}
		if m, ok := options.ToMap(layer); ok {
			if s, ok := options.ToString(m["text"]); ok {
				t.Text = s
			}
			t.applyFields(m)
		}
	}
	if !t.htmlSet {
		t.HTML = ContainsHTML(t.Text)
	}
}

// Active reports whether the tooltip has text to show.
func (t *Tooltip) Active() bool { return t.Text != "" }

// ClassesFor implements Trait.
func (t *Tooltip) ClassesFor(string) []string { return nil }

// AttributesFor implements Trait.
func (t *Tooltip) AttributesFor(string) options.Attrs {
	if !t.Active() {
		return nil
	}
	attrs := options.Attrs{
		{Name: "data-bs-toggle", Value: "tooltip"},
		{Name: "data-bs-title", Value: t.Text},
		{Name: "data-bs-placement", Value: t.Placement},
		{Name: "data-bs-trigger", Value: t.Trigger},
	}
	if t.HTML {
		attrs.Set("data-bs-html", "true")
	}
	return attrs
}

// Export implements Trait.
func (t *Tooltip) Export(opts options.Options) {
	if !t.Active() {
		opts["tooltip"] = nil
		return
	}
	opts["tooltip"] = map[string]any{
		"text":      t.Text,
		"placement": t.Placement,
		"trigger":   t.Trigger,
		"html":      t.HTML,
	}
}

// Popover accepts either a plain content string or
// {title, content|text, placement, trigger, html}.
type Popover struct {
	overlay
	Title   string
	Content string
}

// NewPopover returns a popover with Bootstrap's defaults.
func NewPopover() *Popover {
	return &Popover{overlay: overlay{Placement: "right", Trigger: "click"}}
}

// Apply implements Trait.
func (p *Popover) Apply(props options.Props, bag options.Bag) {
	for _, layer := range layers(props, bag, "popover") {
		if s, ok := options.ToString(layer); ok {
			p.Content = s
			continue
		}
		if m, ok := options.ToMap(layer); ok {
			if s, ok := options.ToString(m["title"]); ok {
				p.Title = s
			}
			if s, ok := options.ToString(m["text"]); ok {
				p.Content = s
			}
			if s, ok := options.ToString(m["content"]); ok {
				p.Content = s
			}
			p.applyFields(m)
		}
	}
	if !p.htmlSet {
		p.HTML = ContainsHTML(p.Title) || ContainsHTML(p.Content)
	}
}

// Active reports whether the popover has anything to show.
func (p *Popover) Active() bool { return p.Content != "" || p.Title != "" }

// ClassesFor implements Trait.
func (p *Popover) ClassesFor(string) []string { return nil }

// AttributesFor implements Trait.
func (p *Popover) AttributesFor(string) options.Attrs {
	if !p.Active() {
		return nil
	}
	attrs := options.Attrs{{Name: "data-bs-toggle", Value: "popover"}}
	if p.Title != "" {
		attrs.Set("data-bs-title", p.Title)
	}
	attrs.Set("data-bs-content", p.Content)
	attrs.Set("data-bs-placement", p.Placement)
	attrs.Set("data-bs-trigger", p.Trigger)
	if p.HTML {
		attrs.Set("data-bs-html", "true")
	}
	return attrs
}

// Export implements Trait.
func (p *Popover) Export(opts options.Options) {
	if !p.Active() {
		opts["popover"] = nil
		return
	}
	opts["popover"] = map[string]any{
		"title":     p.Title,
		"content":   p.Content,
		"placement": p.Placement,
		"trigger":   p.Trigger,
		"html":      p.HTML,
	}
}
