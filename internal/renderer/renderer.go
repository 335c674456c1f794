// Package renderer turns resolved component options into markup.
//
// The options engine never emits HTML structure. This package is the
// template renderer collaborator used by the preview server and the CLI: it
// renders the root element of a component from its options map and wraps
// it in a Bootstrap preview page together with a dump of the options the
// element was built from.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/options"
)

// Bootstrap assets loaded by preview pages.
const (
	BootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	BootstrapJS  = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"
)

// Resolver resolves the options of a named component.
type Resolver interface {
	Render(name string, props options.Props) (options.Options, error)
	Names() []string
}

// ComponentRenderer renders components resolved by a Resolver.
type ComponentRenderer struct {
	resolver Resolver
	title    string
}

// NewComponentRenderer creates a component renderer.
func NewComponentRenderer(resolver Resolver) *ComponentRenderer {
	return &ComponentRenderer{resolver: resolver, title: "bsui"}
}

// Resolve validates name and resolves the options of one instance.
func (r *ComponentRenderer) Resolve(name string, props options.Props) (options.Options, error) {
	if err := ValidateComponentName(name); err != nil {
		return nil, err
	}
	return r.resolver.Render(name, props)
}

// RenderComponent renders the root element of a component to a string.
func (r *ComponentRenderer) RenderComponent(ctx context.Context, name string, props options.Props) (string, error) {
	opts, err := r.Resolve(name, props)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Element(opts).Render(ctx, &buf); err != nil {
		return "", errors.NewInternalError(errors.ErrCodeInternalError, "cannot render "+name, err)
	}
	return buf.String(), nil
}

// Preview resolves a component and returns its preview page.
func (r *ComponentRenderer) Preview(name string, props options.Props) (templ.Component, error) {
	opts, err := r.Resolve(name, props)
	if err != nil {
		return nil, err
	}
	return r.RenderComponentWithLayout(name, Element(opts), opts), nil
}

// Index returns the page listing every component.
func (r *ComponentRenderer) Index() templ.Component {
	names := r.resolver.Names()
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="list-group">`); err != nil {
			return err
		}
		for _, name := range names {
			escaped := templ.EscapeString(name)
			if _, err := fmt.Fprintf(w, `<a class="list-group-item list-group-item-action" href="/components/%s">%s</a>`, escaped, escaped); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return r.page("Components", fmt.Sprintf("%d components", len(names)), body)
}

// RenderComponentWithLayout wraps a rendered component in a preview page
// followed by the options it was built from.
func (r *ComponentRenderer) RenderComponentWithLayout(name string, element templ.Component, opts options.Options) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="card mb-4"><div class="card-body p-5">`); err != nil {
			return err
		}
		if err := element.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div></div><h2 class="h5">Options</h2><pre class="bg-body-tertiary p-3 rounded"><code>`); err != nil {
			return err
		}
		dump, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(string(dump))); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</code></pre>`)
		return err
	})
	return r.page("Preview: "+name, "Resolved with the configured defaults and the query string props", body)
}

func (r *ComponentRenderer) page(heading, lead string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - %s</title>
<link rel="stylesheet" href="%s">
</head>
<body class="bg-body-secondary">
<main class="container py-5">
<h1 class="display-5">%s</h1>
<p class="lead">%s</p>
`, templ.EscapeString(heading), templ.EscapeString(r.title), BootstrapCSS, templ.EscapeString(heading), templ.EscapeString(lead))
		if err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, `
</main>
<script src="%s"></script>
</body>
</html>
`, BootstrapJS)
		return err
	})
}

var voidElements = map[string]bool{
	"area": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// contentKeys are probed in order for the text of the root element.
var contentKeys = []string{"label", "text", "message", "body", "content", "title", "brand"}

// Element renders the root element of a resolved component: its tag, the
// computed classes and attributes and the first textual option.
func Element(opts options.Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tag := options.StringOr(opts["tag"], "div")
		if !tagPattern.MatchString(tag) {
			tag = "div"
		}

		var b strings.Builder
		b.WriteString("<" + tag)
		if classes := options.StringOr(opts["classes"], ""); classes != "" {
			b.WriteString(` class="` + options.EscapeAttr(classes) + `"`)
		}
		if attrs := options.StringOr(opts["attrs"], ""); attrs != "" {
			b.WriteString(" " + attrs)
		}
		b.WriteString(">")

		if !voidElements[tag] {
			for _, key := range contentKeys {
				if text := options.StringOr(opts[key], ""); text != "" {
					b.WriteString(templ.EscapeString(text))
					break
				}
			}
			b.WriteString("</" + tag + ">")
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}

var (
	tagPattern  = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// ValidateComponentName rejects names that cannot name a component, such as
// paths or markup.
func ValidateComponentName(name string) error {
	switch {
	case name == "":
		return errors.NewValidationError(errors.ErrCodeInvalidProps, "empty component name")
	case strings.Contains(name, ".."), strings.ContainsAny(name, `/\`):
		return errors.NewValidationError(errors.ErrCodeInvalidProps, "path separators not allowed in component name: "+name)
	case len(name) > 64 || !namePattern.MatchString(name):
		return errors.NewValidationError(errors.ErrCodeInvalidProps, "invalid component name: "+name)
	}
	return nil
}
