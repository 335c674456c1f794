package renderer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/bsui/internal/components"
	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/options"
)

func newRenderer() *ComponentRenderer {
	return NewComponentRenderer(components.NewEngine(nil))
}

func TestRenderComponent(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name      string
		component string
		props     options.Props
		want      string
	}{
		{
			name:      "button",
			component: "button",
			props:     options.Props{"label": "Save"},
			want:      `<button class="btn btn-primary" type="button">Save</button>`,
		},
		{
			name:      "void element",
			component: "input",
			props:     options.Props{"name": "email"},
			want:      `<input class="form-control" id="email" type="text" name="email">`,
		},
		{
			name:      "text is escaped",
			component: "badge",
			props:     options.Props{"text": "<b>new</b>"},
			want:      `<span class="badge text-bg-secondary">&lt;b&gt;new&lt;/b&gt;</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.RenderComponent(context.Background(), tt.component, tt.props)
			require.NoError(t, err)
			assert.Equal(t, tt.want, html)
		})
	}
}

func TestRenderComponentErrors(t *testing.T) {
	r := newRenderer()

	_, err := r.RenderComponent(context.Background(), "hologram", nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = r.RenderComponent(context.Background(), "../button", nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestElementRejectsUnsafeTag(t *testing.T) {
	var buf bytes.Buffer
	err := Element(options.Options{"tag": "div onclick=x", "text": "hi"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "<div>hi</div>", buf.String())
}

func TestValidateComponentName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"button", false},
		{"kanban_board", false},
		{"Button", false},
		{"", true},
		{"../etc/passwd", true},
		{"a/b", true},
		{`a\b`, true},
		{"<script>", true},
		{"1button", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComponentName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPreview(t *testing.T) {
	r := newRenderer()

	page, err := r.Preview("button", options.Props{"label": "Go", "variant": "success"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, page.Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, BootstrapCSS)
	assert.Contains(t, html, BootstrapJS)
	assert.Contains(t, html, "Preview: button")
	assert.Contains(t, html, `<button class="btn btn-success" type="button">Go</button>`)
	assert.Contains(t, html, "&#34;classes&#34;: &#34;btn btn-success&#34;")

	_, err = r.Preview("hologram", nil)
	assert.True(t, errors.IsNotFound(err))
}

func TestIndex(t *testing.T) {
	r := newRenderer()

	var buf bytes.Buffer
	require.NoError(t, r.Index().Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `href="/components/accordion"`)
	assert.Contains(t, html, `href="/components/tour"`)
	assert.Contains(t, html, "33 components")
}
